package entities

// Person is a named individual whose full name is stored as given
type Person struct {
	Name string `json:"name"`
}

// FullName implements FullyNamed
func (p *Person) FullName() string {
	return p.Name
}
