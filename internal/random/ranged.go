package random

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/protocols-playground/internal/errors"
)

// Ranged draws uniformly from an inclusive range
type Ranged struct {
	mu       sync.Mutex
	rng      *rand.Rand
	minValue int
	maxValue int
}

// NewRange creates a Source uniform in [minValue, maxValue].
// A zero seed seeds from the clock.
func NewRange(minValue, maxValue int, seed int64) (*Ranged, error) {
	if minValue < 0 {
		return nil, errors.InvalidArgumentf("range minimum %d must not be negative", minValue).
			WithMeta("min", minValue)
	}
	if minValue > maxValue {
		return nil, errors.InvalidArgumentf("range minimum %d is greater than maximum %d", minValue, maxValue).
			WithMeta("min", minValue).
			WithMeta("max", maxValue)
	}

	if maxValue-minValue == math.MaxInt {
		return nil, errors.InvalidArgumentf("range [%d, %d] is wider than an int can count", minValue, maxValue).
			WithMeta("min", minValue).
			WithMeta("max", maxValue)
	}

	return newRanged(minValue, maxValue, seed), nil
}

func newRanged(minValue, maxValue int, seed int64) *Ranged {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Ranged{
		rng:      rand.New(rand.NewSource(seed)),
		minValue: minValue,
		maxValue: maxValue,
	}
}

// Next implements Source.Next
func (r *Ranged) Next() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(r.maxValue-r.minValue+1) + r.minValue
}

// Range implements Bounded.Range
func (r *Ranged) Range() (minValue, maxValue int) {
	return r.minValue, r.maxValue
}
