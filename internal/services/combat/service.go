package combat

import (
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/rpg-combat-core/internal/domain/combat"
	"github.com/KirkDiggler/rpg-combat-core/internal/domain/entity"
	dnderr "github.com/KirkDiggler/rpg-combat-core/internal/errors"
	"github.com/KirkDiggler/rpg-combat-core/internal/events"
	"github.com/KirkDiggler/rpg-combat-core/internal/uuid"
)

// Service defines the combat service interface
type Service interface {
	// Spawn creates an entity and assigns it an ID
	Spawn(input *SpawnInput) (*entity.Entity, error)

	// Attack resolves one attack from attacker against defender
	Attack(attacker, defender *entity.Entity) (*AttackResult, error)

	// Heal restores health to target
	Heal(target *entity.Entity, amount int) (*HealResult, error)

	// SetStatus toggles a status flag on target
	SetStatus(target *entity.Entity, flag entity.StatusEffect, present bool) error
}

// SpawnInput contains data for creating an entity. ID is optional; when set it must be a UUID.
type SpawnInput struct {
	ID          string
	Name        string
	Symbol      rune
	Position    *entity.Position
	Health      int
	MaxHealth   int
	AttackPower int
	Defense     int
}

// AttackResult describes the outcome of a single attack
type AttackResult struct {
	Damage         int
	RawDamage      int
	Absorbed       bool
	DefenderHealth int
	DefenderTier   entity.Tier
	Defeated       bool
}

// HealResult describes the outcome of a heal
type HealResult struct {
	Requested int
	Restored  int
	Health    int
	Tier      entity.Tier
}

type service struct {
	resolver      *combat.Resolver
	publisher     events.Publisher
	uuidGenerator uuid.Generator
	logger        logrus.FieldLogger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Resolver      *combat.Resolver
	Publisher     events.Publisher
	UUIDGenerator uuid.Generator
	Logger        logrus.FieldLogger
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Logger == nil {
		panic("logger is required")
	}

	svc := &service{
		resolver:  cfg.Resolver,
		publisher: cfg.Publisher,
		logger:    cfg.Logger.WithField("service", "combat"),
	}

	if svc.resolver == nil {
		svc.resolver = combat.NewResolver()
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

func (s *service) Spawn(input *SpawnInput) (*entity.Entity, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}

	id := input.ID
	if id == "" {
		id = s.uuidGenerator.New()
	} else if !uuid.Valid(id) {
		return nil, dnderr.InvalidArgumentf("entity id %q is not a UUID", id)
	}

	e, err := entity.New(&entity.Config{
		ID:          id,
		Name:        input.Name,
		Symbol:      input.Symbol,
		Position:    input.Position,
		Health:      input.Health,
		MaxHealth:   input.MaxHealth,
		AttackPower: input.AttackPower,
		Defense:     input.Defense,
	})
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to spawn %s", input.Name)
	}

	s.logger.WithFields(logrus.Fields{
		"entity_id":  e.ID,
		"name":       e.Name,
		"health":     e.Health(),
		"max_health": e.MaxHealth,
	}).Debug("spawned entity")

	return e, nil
}

func (s *service) Attack(attacker, defender *entity.Entity) (*AttackResult, error) {
	if attacker == nil || defender == nil {
		return nil, dnderr.InvalidArgument("attacker and defender are required")
	}

	wasAlive := defender.IsAlive()
	raw := combat.RawDamage(attacker.AttackPower, defender.Defense)
	dealt := s.resolver.Resolve(attacker, defender)

	result := &AttackResult{
		Damage:         dealt,
		RawDamage:      raw,
		Absorbed:       dealt == 0,
		DefenderHealth: defender.Health(),
		DefenderTier:   defender.StatusTier(),
		Defeated:       wasAlive && !defender.IsAlive(),
	}

	log := s.logger.WithFields(logrus.Fields{
		"attacker": attacker.Name,
		"defender": defender.Name,
		"damage":   dealt,
		"health":   result.DefenderHealth,
	})

	base := events.BaseEvent{Actor: attacker, Target: defender}
	if result.Absorbed {
		log.Info("attack absorbed by defense")
		base.Type = events.EventTypeAttackAbsorbed
		s.emit(&events.AttackAbsorbedEvent{BaseEvent: base, RawDamage: raw})
		return result, nil
	}

	log.Info("attack hit")
	base.Type = events.EventTypeDamageDealt
	s.emit(&events.DamageDealtEvent{
		BaseEvent:   base,
		Damage:      dealt,
		HealthAfter: result.DefenderHealth,
		Tier:        result.DefenderTier,
	})

	if result.Defeated {
		log.Info("defender defeated")
		base.Type = events.EventTypeEntityDefeated
		s.emit(&events.EntityDefeatedEvent{BaseEvent: base})
	}

	return result, nil
}

func (s *service) Heal(target *entity.Entity, amount int) (*HealResult, error) {
	if target == nil {
		return nil, dnderr.InvalidArgument("target is required")
	}

	restored := target.Heal(amount)
	result := &HealResult{
		Requested: amount,
		Restored:  restored,
		Health:    target.Health(),
		Tier:      target.StatusTier(),
	}

	s.logger.WithFields(logrus.Fields{
		"target":    target.Name,
		"requested": amount,
		"restored":  restored,
		"health":    result.Health,
	}).Info("healed")

	s.emit(&events.HealedEvent{
		BaseEvent:   events.BaseEvent{Type: events.EventTypeHealed, Target: target},
		Amount:      amount,
		Restored:    restored,
		HealthAfter: result.Health,
	})

	return result, nil
}

func (s *service) SetStatus(target *entity.Entity, flag entity.StatusEffect, present bool) error {
	if target == nil {
		return dnderr.InvalidArgument("target is required")
	}
	if flag == "" {
		return dnderr.InvalidArgument("status flag is required")
	}

	if !target.SetStatus(flag, present) {
		return nil
	}

	s.logger.WithFields(logrus.Fields{
		"target":  target.Name,
		"status":  flag,
		"present": present,
	}).Info("status changed")

	s.emit(&events.StatusChangedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeStatusChanged, Target: target},
		Status:    flag,
		Present:   present,
	})

	return nil
}

// emit publishes an event. Listener failures are logged only; the entity has
// already changed by the time events go out.
func (s *service) emit(event events.Event) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.Emit(event); err != nil {
		s.logger.WithError(err).WithField("event", event.GetType()).Warn("event listener failed")
	}
}
