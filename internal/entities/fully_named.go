package entities

// FullyNamed is implemented by anything that can present a full display name
type FullyNamed interface {
	FullName() string
}

// SameName reports whether two named values present the same full name.
// Nil values are only equal to each other.
func SameName(a, b FullyNamed) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.FullName() == b.FullName()
}
