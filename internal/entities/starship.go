package entities

import (
	"github.com/KirkDiggler/protocols-playground/internal/uuid"
)

// Starship is a named vessel with an optional registry prefix such as "USS"
type Starship struct {
	ID     string `json:"id"`
	Prefix string `json:"prefix,omitempty"`
	Name   string `json:"name"`
}

// Shipyard commissions starships, assigning each a registry ID from its generator
type Shipyard struct {
	ids uuid.Generator
}

// NewShipyard creates a shipyard. A nil generator falls back to random UUIDs.
func NewShipyard(ids uuid.Generator) *Shipyard {
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}
	return &Shipyard{ids: ids}
}

// Commission creates a starship with a fresh registry ID. An empty prefix means none.
func (y *Shipyard) Commission(name, prefix string) *Starship {
	return &Starship{
		ID:     y.ids.New(),
		Prefix: prefix,
		Name:   name,
	}
}

var defaultShipyard = NewShipyard(nil)

// NewStarship commissions a starship with a random registry ID
func NewStarship(name, prefix string) *Starship {
	return defaultShipyard.Commission(name, prefix)
}

// FullName implements FullyNamed. It is derived from Prefix and Name on every call,
// with a single space between them ("USS Enterprise", never "USSEnterprise").
func (s *Starship) FullName() string {
	if s.Prefix == "" {
		return s.Name
	}
	return s.Prefix + " " + s.Name
}

// Equal reports whether two starships share a full name. Registry IDs are not compared.
func (s *Starship) Equal(other *Starship) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.FullName() == other.FullName()
}
