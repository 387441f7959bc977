package random

//go:generate mockgen -destination=mock/mock_source.go -package=mockrandom -source=source.go

// Source produces integers for consumers such as dice.
// Each variant decides its own output range and distribution.
type Source interface {
	// Next returns the next integer from the source
	Next() int
}

// Bounded is implemented by sources that can report the inclusive range Next draws from
type Bounded interface {
	Range() (minValue, maxValue int)
}
