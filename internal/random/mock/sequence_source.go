package mockrandom

import (
	"sync"
)

// SequenceSource implements random.Source by cycling through predetermined values.
// It optionally reports a range so it can stand in for a bounded variant.
type SequenceSource struct {
	mu       sync.Mutex
	values   []int
	index    int
	minValue int
	maxValue int
	bounded  bool
}

// NewSequenceSource creates a source that returns values in order and starts over when exhausted
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{
		values: values,
	}
}

// NewFixedSource creates a source that always returns the same value
func NewFixedSource(value int) *SequenceSource {
	return NewSequenceSource(value)
}

// WithRange makes the source report the given inclusive range from Range
func (s *SequenceSource) WithRange(minValue, maxValue int) *SequenceSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.minValue = minValue
	s.maxValue = maxValue
	s.bounded = true
	return s
}

// SetValues replaces the sequence and rewinds it
func (s *SequenceSource) SetValues(values ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = values
	s.index = 0
}

// Calls returns how many values have been drawn since the last rewind
func (s *SequenceSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Next implements random.Source.Next. An empty sequence always yields 0.
func (s *SequenceSource) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		s.index++
		return 0
	}

	value := s.values[s.index%len(s.values)]
	s.index++
	return value
}

// Range implements random.Bounded.Range. Sources without a configured range report the
// spread of their values.
func (s *SequenceSource) Range() (minValue, maxValue int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bounded || len(s.values) == 0 {
		return s.minValue, s.maxValue
	}

	minValue, maxValue = s.values[0], s.values[0]
	for _, v := range s.values[1:] {
		if v < minValue {
			minValue = v
		}
		if v > maxValue {
			maxValue = v
		}
	}
	return minValue, maxValue
}
