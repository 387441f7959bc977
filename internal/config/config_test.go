package config_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/protocols-playground/internal/config"
	"github.com/KirkDiggler/protocols-playground/internal/errors"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) SetupTest() {
	for _, key := range []string{"DICE_SIDES", "DICE_GENERATOR", "DICE_ROLLS", "DICE_SEED", "DICE_UNIFORM", "DICE_NOTATION"} {
		s.T().Setenv(key, "")
	}
}

func (s *ConfigSuite) TestDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(6, cfg.Dice.Sides)
	s.Equal("one-through-ten", cfg.Dice.Generator)
	s.Equal(5, cfg.Dice.Rolls)
	s.Equal(int64(0), cfg.Dice.Seed)
	s.False(cfg.Dice.Uniform)
	s.Empty(cfg.Dice.Notation)
}

func (s *ConfigSuite) TestOverrides() {
	s.T().Setenv("DICE_SIDES", "20")
	s.T().Setenv("DICE_GENERATOR", "one-through-hundred")
	s.T().Setenv("DICE_ROLLS", "3")
	s.T().Setenv("DICE_SEED", "1234")
	s.T().Setenv("DICE_UNIFORM", "true")
	s.T().Setenv("DICE_NOTATION", " 2d6+3 ")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(20, cfg.Dice.Sides)
	s.Equal("one-through-hundred", cfg.Dice.Generator)
	s.Equal(3, cfg.Dice.Rolls)
	s.Equal(int64(1234), cfg.Dice.Seed)
	s.True(cfg.Dice.Uniform)
	s.Equal("2d6+3", cfg.Dice.Notation)
}

func (s *ConfigSuite) TestGeneratorNameIsNormalized() {
	s.T().Setenv("DICE_GENERATOR", " One-Through-Hundred ")

	cfg, err := config.Load()
	s.Require().NoError(err)
	s.Equal("one-through-hundred", cfg.Dice.Generator)

	cfg.Dice.Generator = "ONE-THROUGH-TEN"
	s.NoError(cfg.Validate())
}

func (s *ConfigSuite) TestUnparseableValuesFallBackToDefaults() {
	s.T().Setenv("DICE_SIDES", "six")
	s.T().Setenv("DICE_UNIFORM", "maybe")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(6, cfg.Dice.Sides)
	s.False(cfg.Dice.Uniform)
}

func (s *ConfigSuite) TestZeroSidesIsRejected() {
	s.T().Setenv("DICE_SIDES", "0")

	cfg, err := config.Load()
	s.Require().Error(err)
	s.Nil(cfg)
	s.True(errors.IsValidation(err))
	s.Equal(0, errors.GetMeta(err)["sides"])
}

func (s *ConfigSuite) TestZeroRollsIsRejected() {
	s.T().Setenv("DICE_ROLLS", "0")

	_, err := config.Load()
	s.Require().Error(err)
	s.True(errors.IsValidation(err))
}

func (s *ConfigSuite) TestMalformedNotationIsRejected() {
	s.T().Setenv("DICE_NOTATION", "2x6")

	_, err := config.Load()
	s.Require().Error(err)
	s.True(errors.IsValidation(err))
	s.Equal(errors.CodeValidation, errors.GetCode(err))
	s.Equal("2x6", errors.GetMeta(err)["notation"])
	s.Contains(err.Error(), "DICE_NOTATION is not a dice expression")
}

func (s *ConfigSuite) TestUnknownGeneratorIsRejected() {
	s.T().Setenv("DICE_GENERATOR", "one-through-six")

	_, err := config.Load()
	s.Require().Error(err)
	s.True(errors.IsValidation(err))
	s.Contains(err.Error(), "one-through-six")
}
