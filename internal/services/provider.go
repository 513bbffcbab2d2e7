package services

import (
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/rpg-combat-core/internal/domain/economy"
	"github.com/KirkDiggler/rpg-combat-core/internal/events"
	combatService "github.com/KirkDiggler/rpg-combat-core/internal/services/combat"
	shopService "github.com/KirkDiggler/rpg-combat-core/internal/services/shop"
	"github.com/KirkDiggler/rpg-combat-core/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	EventBus      *events.Bus
	CombatService combatService.Service
	ShopService   shopService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Logger        logrus.FieldLogger
	EventBus      *events.Bus
	UUIDGenerator uuid.Generator
	Catalog       map[string]economy.Item
}

// NewProvider creates a new service provider with all services sharing one event bus
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg.Logger == nil {
		panic("logger is required")
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus(cfg.Logger)
	}

	return &Provider{
		EventBus: bus,
		CombatService: combatService.NewService(&combatService.ServiceConfig{
			Publisher:     bus,
			UUIDGenerator: cfg.UUIDGenerator,
			Logger:        cfg.Logger,
		}),
		ShopService: shopService.NewService(&shopService.ServiceConfig{
			Catalog:   cfg.Catalog,
			Publisher: bus,
			Logger:    cfg.Logger,
		}),
	}
}
