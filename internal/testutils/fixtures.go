package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-combat-core/internal/domain/economy"
	"github.com/KirkDiggler/rpg-combat-core/internal/domain/entity"
)

// NewPlayer creates a full-health player with 10 attack and no defense
func NewPlayer(t testing.TB) *entity.Entity {
	t.Helper()
	return NewEntity(t, &entity.Config{
		Name:        "Player",
		Symbol:      '@',
		Health:      100,
		MaxHealth:   100,
		AttackPower: 10,
	})
}

// NewMonster creates a half-health monster with the given attack power
func NewMonster(t testing.TB, name string, attackPower int) *entity.Entity {
	t.Helper()
	return NewEntity(t, &entity.Config{
		Name:        name,
		Symbol:      'g',
		Position:    &entity.Position{X: 5, Y: 10},
		Health:      50,
		MaxHealth:   100,
		AttackPower: attackPower,
	})
}

// NewArmoredEnemy creates an enemy whose defense is one higher than the default player attack
func NewArmoredEnemy(t testing.TB) *entity.Entity {
	t.Helper()
	return NewEntity(t, &entity.Config{
		Name:      "Enemy",
		Symbol:    'E',
		Health:    100,
		MaxHealth: 100,
		Defense:   11,
	})
}

// NewEntity builds an entity and fails the test on bad config
func NewEntity(t testing.TB, cfg *entity.Config) *entity.Entity {
	t.Helper()
	e, err := entity.New(cfg)
	require.NoError(t, err)
	return e
}

// NewPurse creates a gold purse holding the given amount
func NewPurse(t testing.TB, gold int) *economy.Purse {
	t.Helper()
	p, err := economy.NewPurse("gold", gold)
	require.NoError(t, err)
	return p
}
