package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/protocols-playground/internal/uuid"
)

var (
	_ FullyNamed = (*Person)(nil)
	_ FullyNamed = (*Starship)(nil)
)

func TestStarship_FullName(t *testing.T) {
	tests := []struct {
		name     string
		starship *Starship
		want     string
	}{
		{
			name:     "with prefix",
			starship: NewStarship("Enterprise", "USS"),
			want:     "USS Enterprise",
		},
		{
			name:     "without prefix",
			starship: NewStarship("Serenity", ""),
			want:     "Serenity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.starship.FullName())
		})
	}
}

func TestStarship_FullNameIsComputed(t *testing.T) {
	ship := NewStarship("Serenity", "")
	assert.Equal(t, "Serenity", ship.FullName())

	ship.Prefix = "SS"
	assert.Equal(t, "SS Serenity", ship.FullName())
	assert.NotEqual(t, "SSSerenity", ship.FullName(), "prefix and name are space separated")
}

func TestStarship_Equal(t *testing.T) {
	enterprise := NewStarship("Enterprise", "USS")
	refit := NewStarship("Enterprise", "USS")
	serenity := NewStarship("Serenity", "")

	assert.NotEqual(t, enterprise.ID, refit.ID)
	assert.True(t, enterprise.Equal(refit), "ships with the same full name are equal")
	assert.False(t, enterprise.Equal(serenity))
	assert.False(t, enterprise.Equal(nil))

	var missing *Starship
	assert.True(t, missing.Equal(nil))
}

func TestPerson_FullName(t *testing.T) {
	johnny := &Person{Name: "Johnny Hicks"}
	assert.Equal(t, "Johnny Hicks", johnny.FullName())
}

func TestSameName(t *testing.T) {
	tests := []struct {
		name string
		a    FullyNamed
		b    FullyNamed
		want bool
	}{
		{
			name: "person and starship with matching names",
			a:    &Person{Name: "Serenity"},
			b:    NewStarship("Serenity", ""),
			want: true,
		},
		{
			name: "different people",
			a:    &Person{Name: "Johnny Hicks"},
			b:    &Person{Name: "Spencer Curtis"},
			want: false,
		},
		{
			name: "prefix matters",
			a:    NewStarship("Enterprise", "USS"),
			b:    NewStarship("Enterprise", ""),
			want: false,
		},
		{
			name: "one nil",
			a:    &Person{Name: "Johnny Hicks"},
			b:    nil,
			want: false,
		},
		{
			name: "both nil",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameName(tt.a, tt.b))
		})
	}
}

func TestShipyard_Commission(t *testing.T) {
	yard := NewShipyard(uuid.NewSequentialGenerator("NCC"))

	enterprise := yard.Commission("Enterprise", "USS")
	refit := yard.Commission("Enterprise", "USS")

	assert.Equal(t, "NCC-1", enterprise.ID)
	assert.Equal(t, "NCC-2", refit.ID)
	assert.True(t, enterprise.Equal(refit))
}
