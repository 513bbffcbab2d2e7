package entity

import "sort"

// StatusEffect is a named flag on an entity. Only presence matters.
type StatusEffect string

const (
	StatusPoisoned StatusEffect = "poisoned"
	StatusStunned  StatusEffect = "stunned"
	StatusBlinded  StatusEffect = "blinded"
	StatusProne    StatusEffect = "prone"
)

// SetStatus adds or removes a flag. Returns true when membership changed.
func (e *Entity) SetStatus(flag StatusEffect, present bool) bool {
	if e.statuses == nil {
		e.statuses = make(map[StatusEffect]struct{})
	}

	_, had := e.statuses[flag]
	if present {
		e.statuses[flag] = struct{}{}
	} else {
		delete(e.statuses, flag)
	}

	return had != present
}

// HasStatus checks for a flag
func (e *Entity) HasStatus(flag StatusEffect) bool {
	_, ok := e.statuses[flag]
	return ok
}

// Statuses returns the active flags in name order
func (e *Entity) Statuses() []StatusEffect {
	out := make([]StatusEffect, 0, len(e.statuses))
	for flag := range e.statuses {
		out = append(out, flag)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i] < out[j]
	})

	return out
}
