package entity

import (
	"math/bits"

	"github.com/KirkDiggler/rpg-combat-core/internal/domain/stats"
	dnderr "github.com/KirkDiggler/rpg-combat-core/internal/errors"
)

// Entity is a player or monster taking part in combat.
// Health is kept inside [0, MaxHealth] by every mutating method.
type Entity struct {
	ID          string
	Name        string
	Symbol      rune
	Position    *Position
	MaxHealth   int
	AttackPower int
	Defense     int

	health   int
	statuses map[StatusEffect]struct{}
}

// Config holds the initial stats for a new entity
type Config struct {
	ID          string
	Name        string
	Symbol      rune
	Position    *Position
	Health      int
	MaxHealth   int
	AttackPower int
	Defense     int
}

// New validates the config and builds an entity. The seed health is clamped
// into [0, MaxHealth] rather than rejected.
func New(cfg *Config) (*Entity, error) {
	if cfg == nil {
		return nil, dnderr.InvalidConfig("entity config is required")
	}
	if cfg.MaxHealth < 0 {
		return nil, dnderr.InvalidConfigf("max health cannot be negative: %d", cfg.MaxHealth).
			WithMeta("max_health", cfg.MaxHealth)
	}
	if cfg.AttackPower < 0 {
		return nil, dnderr.InvalidConfigf("attack power cannot be negative: %d", cfg.AttackPower).
			WithMeta("attack_power", cfg.AttackPower)
	}
	if cfg.Defense < 0 {
		return nil, dnderr.InvalidConfigf("defense cannot be negative: %d", cfg.Defense).
			WithMeta("defense", cfg.Defense)
	}

	var pos *Position
	if cfg.Position != nil {
		p := *cfg.Position
		pos = &p
	}

	return &Entity{
		ID:          cfg.ID,
		Name:        cfg.Name,
		Symbol:      cfg.Symbol,
		Position:    pos,
		MaxHealth:   cfg.MaxHealth,
		AttackPower: cfg.AttackPower,
		Defense:     cfg.Defense,
		health:      stats.Clamp(cfg.Health, 0, cfg.MaxHealth),
		statuses:    make(map[StatusEffect]struct{}),
	}, nil
}

// Health returns current hit points
func (e *Entity) Health() int {
	return e.health
}

// IsAlive reports whether the entity has any health left
func (e *Entity) IsAlive() bool {
	return e.health > 0
}

// ApplyDamage removes health, never dropping below zero.
// Non-positive amounts are ignored. Returns the health actually lost.
func (e *Entity) ApplyDamage(amount int) int {
	if amount <= 0 {
		return 0
	}

	before := e.health
	e.health = stats.Clamp(e.health-amount, 0, e.MaxHealth)

	return before - e.health
}

// Heal restores health up to MaxHealth.
// Non-positive amounts are ignored. Returns the health actually restored.
func (e *Entity) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}

	headroom := e.MaxHealth - e.health
	if amount >= headroom {
		e.health = e.MaxHealth
		return headroom
	}

	e.health += amount

	return amount
}

// HealthPercent returns health as a truncated percentage of MaxHealth.
// Multiplies before dividing so 75/100 reports 75 rather than 0. The product
// is taken in 128 bits so very large MaxHealth values do not wrap.
func (e *Entity) HealthPercent() (int, error) {
	if e.MaxHealth == 0 {
		return 0, dnderr.DivisionUndefined("health percent is undefined when max health is zero").
			WithMeta("entity_id", e.ID)
	}

	hi, lo := bits.Mul64(uint64(e.health), 100)
	percent, _ := bits.Div64(hi, lo, uint64(e.MaxHealth))

	return int(percent), nil
}
