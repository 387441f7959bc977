package dice

import (
	"fmt"
	"strings"
)

// RollResult holds the outcome of rolling a die several times
type RollResult struct {
	Count    int
	Sides    int
	Bonus    int
	Rolls    []int
	RawTotal int // sum of Rolls without Bonus
	Total    int
	Highest  int
	Lowest   int
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", ",")
	return fmt.Sprintf("**%d** : %s", r.Total, compact)
}
