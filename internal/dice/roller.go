package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller is anything that can be rolled for a single face value.
// *Dice satisfies it; callers that only roll should depend on this instead.
type Roller interface {
	// Roll returns a face value in [1, Sides()]
	Roll() int

	// Sides returns the number of faces
	Sides() int
}

var _ Roller = (*Dice)(nil)
