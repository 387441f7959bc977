package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/protocols-playground/internal/dice"
	"github.com/KirkDiggler/protocols-playground/internal/errors"
	"github.com/KirkDiggler/protocols-playground/internal/random"
)

// Config holds all configuration for the playground
type Config struct {
	Dice DiceConfig
}

// DiceConfig holds dice-specific configuration
type DiceConfig struct {
	Sides     int
	Generator string // one of the random variant names
	Rolls     int
	Seed      int64 // 0 seeds from the clock
	Uniform   bool
	Notation  string // Optional: an extra expression such as 2d6+3
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Dice: DiceConfig{
			Sides:     getEnvAsIntOrDefault("DICE_SIDES", 6),
			Generator: random.NormalizeName(getEnvOrDefault("DICE_GENERATOR", random.OneThroughTenName)),
			Rolls:     getEnvAsIntOrDefault("DICE_ROLLS", 5),
			Seed:      getEnvAsInt64OrDefault("DICE_SEED", 0),
			Uniform:   getEnvAsBoolOrDefault("DICE_UNIFORM", false),
			Notation:  strings.TrimSpace(os.Getenv("DICE_NOTATION")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the playground cannot run with
func (c *Config) Validate() error {
	if c.Dice.Sides < 1 {
		return errors.Validationf("DICE_SIDES must be at least 1, got %d", c.Dice.Sides).
			WithMeta("sides", c.Dice.Sides)
	}
	if c.Dice.Rolls < 1 {
		return errors.Validationf("DICE_ROLLS must be at least 1, got %d", c.Dice.Rolls).
			WithMeta("rolls", c.Dice.Rolls)
	}
	switch random.NormalizeName(c.Dice.Generator) {
	case random.OneThroughTenName, random.OneThroughHundredName:
	default:
		return errors.Validationf("DICE_GENERATOR %q is not a known generator", c.Dice.Generator).
			WithMeta("generator", c.Dice.Generator)
	}
	if c.Dice.Notation != "" {
		if _, err := dice.ParseNotation(c.Dice.Notation); err != nil {
			return errors.WrapWithCode(err, errors.CodeValidation, "DICE_NOTATION is not a dice expression")
		}
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
