package dice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/protocols-playground/internal/errors"
	"github.com/KirkDiggler/protocols-playground/internal/random"
)

// Notation is a parsed dice expression such as 2d6+3
type Notation struct {
	Count int
	Sides int
	Bonus int
}

// ParseNotation parses NdS or NdS+B. A missing count (d20) means one die.
func ParseNotation(s string) (*Notation, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	invalid := func() error {
		return errors.InvalidArgumentf("invalid dice string %q", s).WithMeta("notation", s)
	}

	n := &Notation{Count: 1}
	expr := raw
	if parts := strings.Split(raw, "+"); len(parts) == 2 {
		bonus, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, invalid()
		}
		n.Bonus = bonus
		expr = parts[0]
	} else if len(parts) > 2 {
		return nil, invalid()
	}

	diceParts := strings.Split(expr, "d")
	if len(diceParts) != 2 {
		return nil, invalid()
	}

	if diceParts[0] != "" {
		count, err := strconv.Atoi(diceParts[0])
		if err != nil || count < 1 {
			return nil, invalid()
		}
		n.Count = count
	}

	sides, err := strconv.Atoi(diceParts[1])
	if err != nil || sides < 1 {
		return nil, invalid()
	}
	n.Sides = sides

	return n, nil
}

func (n *Notation) String() string {
	if n.Bonus != 0 {
		return fmt.Sprintf("%dd%d+%d", n.Count, n.Sides, n.Bonus)
	}
	return fmt.Sprintf("%dd%d", n.Count, n.Sides)
}

// Roll rolls the expression using generator
func (n *Notation) Roll(generator random.Source, opts ...Option) (*RollResult, error) {
	d, err := New(n.Sides, generator, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", n)
	}
	return d.RollMany(n.Count, n.Bonus)
}
