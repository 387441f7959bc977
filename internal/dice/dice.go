package dice

import (
	"log"

	"github.com/KirkDiggler/protocols-playground/internal/errors"
	"github.com/KirkDiggler/protocols-playground/internal/random"
)

// maxRedraws caps rejection sampling so a misbehaving source cannot stall a roll
const maxRedraws = 64

// Dice is a single die with a fixed number of sides. It draws from whatever
// random.Source it was given and never knows which variant that is.
type Dice struct {
	sides     int
	generator random.Source
	uniform   bool
}

// Option configures a Dice at construction
type Option func(*Dice)

// WithUniform redraws values from the biased tail of a bounded generator's range,
// so every face is equally likely. Generators that do not implement random.Bounded
// are used as-is.
func WithUniform() Option {
	return func(d *Dice) {
		d.uniform = true
	}
}

// New creates a die with the given number of sides backed by generator.
// sides must be at least 1.
func New(sides int, generator random.Source, opts ...Option) (*Dice, error) {
	if sides < 1 {
		return nil, errors.InvalidArgumentf("dice must have at least 1 side, got %d", sides).
			WithMeta("sides", sides)
	}
	if generator == nil {
		return nil, errors.InvalidArgument("dice generator is required")
	}

	d := &Dice{
		sides:     sides,
		generator: generator,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.uniform {
		if bounded, ok := generator.(random.Bounded); ok {
			minValue, maxValue := bounded.Range()
			if maxValue < minValue {
				return nil, errors.InvalidArgumentf("generator range [%d, %d] is inverted", minValue, maxValue).
					WithMeta("min", minValue).
					WithMeta("max", maxValue)
			}
			if span, ok := spanOf(minValue, maxValue); ok && span < uint64(sides) {
				return nil, errors.InvalidArgumentf("generator range [%d, %d] is too small for a uniform d%d", minValue, maxValue, sides).
					WithMeta("sides", sides).
					WithMeta("min", minValue).
					WithMeta("max", maxValue)
			}
		}
	}

	return d, nil
}

// Sides returns the number of faces on the die
func (d *Dice) Sides() int {
	return d.sides
}

// Roll returns a value in [1, Sides()].
//
// By default this is (generator.Next() mod sides) + 1, which is biased toward low faces
// whenever the generator's range is not a multiple of sides. See WithUniform.
func (d *Dice) Roll() int {
	return d.reduce(d.draw())
}

func (d *Dice) draw() int {
	value := d.generator.Next()
	if !d.uniform {
		return value
	}

	bounded, ok := d.generator.(random.Bounded)
	if !ok {
		return value
	}

	minValue, maxValue := bounded.Range()
	span, ok := spanOf(minValue, maxValue)
	if !ok {
		return value
	}

	// offsets at or past limit fall in the tail that favours low faces
	limit := span - span%uint64(d.sides)
	for i := 0; i < maxRedraws && uint64(value)-uint64(minValue) >= limit; i++ {
		value = d.generator.Next()
	}
	return value
}

// spanOf counts the values in [minValue, maxValue] without overflowing.
// It reports false for an inverted range or one covering every int.
func spanOf(minValue, maxValue int) (uint64, bool) {
	if maxValue < minValue {
		return 0, false
	}
	span := uint64(maxValue) - uint64(minValue) + 1
	if span == 0 {
		return 0, false
	}
	return span, true
}

func (d *Dice) reduce(value int) int {
	remainder := value % d.sides
	if remainder < 0 {
		remainder += d.sides
	}
	return remainder + 1
}

// RollMany rolls the die count times and adds bonus to the total
func (d *Dice) RollMany(count, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.InvalidArgumentf("invalid dice count %d", count).
			WithMeta("count", count)
	}

	result := &RollResult{
		Count: count,
		Sides: d.sides,
		Bonus: bonus,
		Rolls: make([]int, count),
	}

	for i := 0; i < count; i++ {
		roll := d.Roll()
		result.Rolls[i] = roll
		result.RawTotal += roll

		if i == 0 || roll < result.Lowest {
			result.Lowest = roll
		}
		if i == 0 || roll > result.Highest {
			result.Highest = roll
		}
	}
	result.Total = result.RawTotal + bonus

	log.Println("Rolling", count, "d", d.sides, ":", result.Rolls, "total:", result.Total, "min:", result.Lowest, "max:", result.Highest)
	return result, nil
}
