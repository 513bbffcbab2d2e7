package events

import (
	"github.com/KirkDiggler/rpg-combat-core/internal/domain/economy"
	"github.com/KirkDiggler/rpg-combat-core/internal/domain/entity"
)

// DamageDealtEvent is emitted after an attack gets through the defender's defense
type DamageDealtEvent struct {
	BaseEvent
	Damage      int
	HealthAfter int
	Tier        entity.Tier
}

// AttackAbsorbedEvent is emitted when defense meets or exceeds attack
type AttackAbsorbedEvent struct {
	BaseEvent
	RawDamage int // attack - defense, zero or negative
}

// HealedEvent is emitted after a heal request. Restored may be less than
// Amount when the target was already near full health.
type HealedEvent struct {
	BaseEvent
	Amount      int
	Restored    int
	HealthAfter int
}

// EntityDefeatedEvent is emitted when an entity's health reaches zero
type EntityDefeatedEvent struct {
	BaseEvent
}

// StatusChangedEvent is emitted when a status flag is added or removed
type StatusChangedEvent struct {
	BaseEvent
	Status  entity.StatusEffect
	Present bool
}

// ItemPurchasedEvent is emitted after a successful shop purchase. Actor is nil
// because purses are not tied to an entity.
type ItemPurchasedEvent struct {
	BaseEvent
	Item     economy.Item
	GoldLeft int
}
