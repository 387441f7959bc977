// Package uuid issues identifiers behind an interface so callers can swap in
// predictable IDs under test.
package uuid

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator issues identifiers
type Generator interface {
	New() string
}

// GoogleUUIDGenerator issues random v4 UUIDs
type GoogleUUIDGenerator struct{}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// New implements Generator.New
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// SequentialGenerator issues prefix-1, prefix-2, ...
type SequentialGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequentialGenerator creates a generator counting up from 1
func NewSequentialGenerator(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix, next: 1}
}

// New implements Generator.New
func (g *SequentialGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := fmt.Sprintf("%s-%d", g.prefix, g.next)
	g.next++
	return id
}
