package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/protocols-playground/internal/config"
	"github.com/KirkDiggler/protocols-playground/internal/dice"
	"github.com/KirkDiggler/protocols-playground/internal/entities"
	"github.com/KirkDiggler/protocols-playground/internal/errors"
	"github.com/KirkDiggler/protocols-playground/internal/random"
	"github.com/KirkDiggler/protocols-playground/internal/uuid"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config (%s): %v", errors.GetCode(err), err)
	}

	showNames()

	generator, err := random.ByName(cfg.Dice.Generator, cfg.Dice.Seed)
	if err != nil {
		log.Fatalf("Failed to create generator: %v", err)
	}

	var opts []dice.Option
	if cfg.Dice.Uniform {
		opts = append(opts, dice.WithUniform())
	}

	d, err := dice.New(cfg.Dice.Sides, generator, opts...)
	if err != nil {
		log.Fatalf("Failed to create dice: %v", err)
	}

	log.Printf("Rolling a d%d backed by %s", d.Sides(), cfg.Dice.Generator)
	rollAll(d, cfg.Dice.Rolls)

	if cfg.Dice.Notation != "" {
		if err := rollNotation(cfg.Dice.Notation, generator, opts...); err != nil {
			log.Fatalf("Failed to roll %s: %v", cfg.Dice.Notation, err)
		}
	}
}

// showNames walks through the FullyNamed conformers and starship equality
func showNames() {
	named := []entities.FullyNamed{
		&entities.Person{Name: "Johnny Hicks"},
		&entities.Person{Name: "Spencer Curtis"},
	}

	yard := entities.NewShipyard(uuid.NewGoogleUUIDGenerator())
	ncc1701 := yard.Commission("Enterprise", "USS")
	fireFly := yard.Commission("Serenity", "")
	named = append(named, ncc1701, fireFly)
	log.Printf("Commissioned %s as %s", ncc1701.FullName(), ncc1701.ID)

	for _, n := range named {
		log.Printf("Full name: %s", n.FullName())
	}

	log.Println(compareShips(ncc1701, fireFly))
}

func compareShips(a, b *entities.Starship) string {
	if a.Equal(b) {
		return "The ships are the same"
	}
	return "The ships are different"
}

func rollAll(r dice.Roller, times int) []int {
	rolls := make([]int, 0, times)
	for i := 0; i < times; i++ {
		roll := r.Roll()
		log.Printf("Random dice roll is %d", roll)
		rolls = append(rolls, roll)
	}
	return rolls
}

func rollNotation(notation string, generator random.Source, opts ...dice.Option) error {
	n, err := dice.ParseNotation(notation)
	if err != nil {
		return err
	}

	result, err := n.Roll(generator, opts...)
	if err != nil {
		return err
	}

	log.Printf("%s: %s", n, result)
	return nil
}
