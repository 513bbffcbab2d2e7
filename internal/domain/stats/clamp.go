// Package stats holds the numeric range rules shared by every stat
package stats

import (
	dnderr "github.com/KirkDiggler/rpg-combat-core/internal/errors"
)

// Clamp returns min if value is below it, max if value is above it,
// otherwise value unchanged.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	} else if value > max {
		return max
	}

	return value
}

// Range is a closed interval [Min, Max]
type Range struct {
	Min int
	Max int
}

// NewRange builds a range, rejecting Min > Max
func NewRange(min, max int) (Range, error) {
	if min > max {
		return Range{}, dnderr.InvalidConfigf("range min %d is greater than max %d", min, max).
			WithMeta("min", min).
			WithMeta("max", max)
	}

	return Range{Min: min, Max: max}, nil
}

// Clamp constrains value into the range
func (r Range) Clamp(value int) int {
	return Clamp(value, r.Min, r.Max)
}

// Contains reports whether value already lies inside the range
func (r Range) Contains(value int) bool {
	return value >= r.Min && value <= r.Max
}
