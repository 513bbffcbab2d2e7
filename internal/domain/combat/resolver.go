// Package combat applies the attack-versus-defense damage rule
package combat

import (
	"github.com/KirkDiggler/rpg-combat-core/internal/domain/entity"
)

// Resolver computes and applies damage between two entities. It holds no state.
type Resolver struct{}

// NewResolver creates a resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// RawDamage is attack minus defense, possibly negative
func RawDamage(attack, defense int) int {
	return attack - defense
}

// Resolve applies attacker.AttackPower - defender.Defense to the defender when
// positive and returns it. A non-positive difference means the defense absorbed
// the blow: nothing changes and 0 is returned. Overdefense never heals.
// Both entities are required; a nil attacker or defender panics.
func (r *Resolver) Resolve(attacker, defender *entity.Entity) int {
	raw := RawDamage(attacker.AttackPower, defender.Defense)
	if raw <= 0 {
		return 0
	}

	defender.ApplyDamage(raw)

	return raw
}

// Resolve is shorthand for a zero-value Resolver. Both entities are required.
func Resolve(attacker, defender *entity.Entity) int {
	var r Resolver
	return r.Resolve(attacker, defender)
}
