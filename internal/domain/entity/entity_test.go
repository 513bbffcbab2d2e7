package entity_test

import (
	"math"
	"testing"

	"github.com/KirkDiggler/rpg-combat-core/internal/domain/entity"
	dnderr "github.com/KirkDiggler/rpg-combat-core/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntity(t *testing.T, health, maxHealth int) *entity.Entity {
	t.Helper()
	e, err := entity.New(&entity.Config{
		Name:        "Goblin",
		Symbol:      'g',
		Health:      health,
		MaxHealth:   maxHealth,
		AttackPower: 10,
	})
	require.NoError(t, err)
	return e
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *entity.Config
		metaKey string
	}{
		{name: "nil config", cfg: nil},
		{name: "negative max health", cfg: &entity.Config{MaxHealth: -1}, metaKey: "max_health"},
		{name: "negative attack", cfg: &entity.Config{MaxHealth: 10, AttackPower: -2}, metaKey: "attack_power"},
		{name: "negative defense", cfg: &entity.Config{MaxHealth: 10, Defense: -3}, metaKey: "defense"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := entity.New(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, e)
			assert.True(t, dnderr.IsInvalidConfig(err))
			if tt.metaKey != "" {
				assert.Contains(t, dnderr.GetMeta(err), tt.metaKey)
			}
		})
	}
}

func TestNew_ClampsSeedHealth(t *testing.T) {
	assert.Equal(t, 0, newEntity(t, -10, 100).Health())
	assert.Equal(t, 100, newEntity(t, 110, 100).Health())
	assert.Equal(t, 50, newEntity(t, 50, 100).Health())
}

func TestNew_CopiesPosition(t *testing.T) {
	pos := &entity.Position{X: 5, Y: 10}
	e, err := entity.New(&entity.Config{Health: 50, MaxHealth: 50, Position: pos})
	require.NoError(t, err)

	pos.X = 99
	require.NotNil(t, e.Position)
	assert.Equal(t, 5, e.Position.X)
	assert.Equal(t, "(5, 10)", e.Position.String())
}

func TestApplyDamage(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		amount     int
		wantHealth int
		wantLost   int
	}{
		{name: "goblin hit", health: 100, amount: 12, wantHealth: 88, wantLost: 12},
		{name: "overkill stops at zero", health: 5, amount: 20, wantHealth: 0, wantLost: 5},
		{name: "zero is a no-op", health: 40, amount: 0, wantHealth: 40, wantLost: 0},
		{name: "negative does not heal", health: 40, amount: -15, wantHealth: 40, wantLost: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEntity(t, tt.health, 100)
			assert.Equal(t, tt.wantLost, e.ApplyDamage(tt.amount))
			assert.Equal(t, tt.wantHealth, e.Health())
		})
	}
}

func TestHeal(t *testing.T) {
	t.Run("heal stops at max", func(t *testing.T) {
		goblin := newEntity(t, 50, 100)

		assert.Equal(t, 30, goblin.Heal(30))
		assert.Equal(t, 80, goblin.Health())

		assert.Equal(t, 20, goblin.Heal(30))
		assert.Equal(t, 100, goblin.Health())

		for i := 0; i < 5; i++ {
			goblin.Heal(30)
		}
		assert.Equal(t, 100, goblin.Health())
	})

	t.Run("negative does not damage", func(t *testing.T) {
		e := newEntity(t, 60, 100)
		assert.Equal(t, 0, e.Heal(-10))
		assert.Equal(t, 60, e.Health())
	})

	t.Run("huge amount fills to max", func(t *testing.T) {
		e := newEntity(t, 50, 100)
		assert.Equal(t, 50, e.Heal(math.MaxInt))
		assert.Equal(t, 100, e.Health())
		assert.Equal(t, entity.TierHealthy, e.StatusTier())
	})

	t.Run("huge amount on a huge pool", func(t *testing.T) {
		e := newEntity(t, 1, math.MaxInt)
		assert.Equal(t, math.MaxInt-1, e.Heal(math.MaxInt))
		assert.Equal(t, math.MaxInt, e.Health())
	})
}

func TestHealthStaysInRange(t *testing.T) {
	e := newEntity(t, 70, 90)
	ops := []int{12, -18, 200, 35, -1000, 7, 90, -90, 0, 45, 3,
		math.MaxInt, math.MaxInt, math.MinInt, math.MinInt, 1, math.MaxInt, math.MaxInt, math.MinInt}

	for i, amount := range ops {
		if i%2 == 0 {
			e.ApplyDamage(amount)
		} else {
			e.Heal(amount)
		}
		require.GreaterOrEqual(t, e.Health(), 0)
		require.LessOrEqual(t, e.Health(), e.MaxHealth)
	}

	for _, amount := range []int{math.MaxInt, math.MinInt, 0, -1, 1} {
		healed := newEntity(t, 45, 90)
		restored := healed.Heal(amount)
		assert.GreaterOrEqual(t, restored, 0)
		assert.GreaterOrEqual(t, healed.Health(), 45)
		assert.LessOrEqual(t, healed.Health(), 90)

		damaged := newEntity(t, 45, 90)
		lost := damaged.ApplyDamage(amount)
		assert.GreaterOrEqual(t, lost, 0)
		assert.LessOrEqual(t, damaged.Health(), 45)
		assert.GreaterOrEqual(t, damaged.Health(), 0)
	}
}

func TestHealthPercent(t *testing.T) {
	t.Run("truncates", func(t *testing.T) {
		pct, err := newEntity(t, 75, 100).HealthPercent()
		require.NoError(t, err)
		assert.Equal(t, 75, pct)

		pct, err = newEntity(t, 2, 3).HealthPercent()
		require.NoError(t, err)
		assert.Equal(t, 66, pct)
	})

	t.Run("large max health does not wrap", func(t *testing.T) {
		big := math.MaxInt / 50

		pct, err := newEntity(t, big, big).HealthPercent()
		require.NoError(t, err)
		assert.Equal(t, 100, pct)

		pct, err = newEntity(t, math.MaxInt/2, math.MaxInt).HealthPercent()
		require.NoError(t, err)
		assert.Equal(t, 49, pct)
	})

	t.Run("zero max health", func(t *testing.T) {
		_, err := newEntity(t, 0, 0).HealthPercent()
		require.Error(t, err)
		assert.True(t, dnderr.IsDivisionUndefined(err))
	})
}

func TestIsAlive(t *testing.T) {
	e := newEntity(t, 10, 100)
	assert.True(t, e.IsAlive())
	e.ApplyDamage(10)
	assert.False(t, e.IsAlive())
}
