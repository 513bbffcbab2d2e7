// Package dice tallies already-rolled damage dice. Nothing here generates numbers.
package dice

import (
	"fmt"
	"strings"

	dnderr "github.com/KirkDiggler/rpg-combat-core/internal/errors"
)

type RollResult struct {
	Total   int
	Highest int
	Lowest  int
	Rolls   []int
	Bonus   int
}

// Sum adds up a list of rolls. An empty list sums to 0.
func Sum(rolls []int) int {
	total := 0
	for _, roll := range rolls {
		total += roll
	}
	return total
}

// Tally summarizes a fixed set of rolls plus a flat bonus
func Tally(rolls []int, bonus int) (*RollResult, error) {
	if len(rolls) == 0 {
		return nil, dnderr.InvalidArgument("at least one roll is required")
	}

	maxValue, minValue := rolls[0], rolls[0]
	out := make([]int, len(rolls))
	for i, roll := range rolls {
		if minValue > roll {
			minValue = roll
		}

		if maxValue < roll {
			maxValue = roll
		}

		out[i] = roll
	}

	return &RollResult{
		Total:   Sum(out) + bonus,
		Highest: maxValue,
		Lowest:  minValue,
		Rolls:   out,
		Bonus:   bonus,
	}, nil
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", ",")
	if r.Bonus != 0 {
		return fmt.Sprintf("%d : %s%+d", r.Total, compact, r.Bonus)
	}
	return fmt.Sprintf("%d : %s", r.Total, compact)
}
