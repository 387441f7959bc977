package random

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/protocols-playground/internal/errors"
)

// Known variant names, as used by configuration
const (
	OneThroughTenName     = "one-through-ten"
	OneThroughHundredName = "one-through-hundred"
)

// OneThroughTen generates integers uniformly in [1, 10]
type OneThroughTen struct {
	*Ranged
}

// NewOneThroughTen creates a OneThroughTen source. A zero seed seeds from the clock.
func NewOneThroughTen(seed int64) *OneThroughTen {
	return &OneThroughTen{Ranged: newRanged(1, 10, seed)}
}

// OneThroughHundred generates integers uniformly in [1, 100]
type OneThroughHundred struct {
	*Ranged
}

// NewOneThroughHundred creates a OneThroughHundred source. A zero seed seeds from the clock.
func NewOneThroughHundred(seed int64) *OneThroughHundred {
	return &OneThroughHundred{Ranged: newRanged(1, 100, seed)}
}

// NormalizeName canonicalises a variant name for lookup
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ByName returns the named variant
func ByName(name string, seed int64) (Source, error) {
	switch NormalizeName(name) {
	case OneThroughTenName:
		return NewOneThroughTen(seed), nil
	case OneThroughHundredName:
		return NewOneThroughHundred(seed), nil
	default:
		return nil, errors.InvalidArgumentf("unknown generator %q", name).
			WithMeta("known", fmt.Sprintf("%s, %s", OneThroughTenName, OneThroughHundredName))
	}
}
