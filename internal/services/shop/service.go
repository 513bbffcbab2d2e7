package shop

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/rpg-combat-core/internal/domain/economy"
	dnderr "github.com/KirkDiggler/rpg-combat-core/internal/errors"
	"github.com/KirkDiggler/rpg-combat-core/internal/events"
)

// Service sells catalog items against a purse
type Service interface {
	// Items lists the catalog, cheapest first
	Items() []economy.Item

	// Purchase buys the item with the given key
	Purchase(purse *economy.Purse, key string) (*economy.Item, error)
}

type service struct {
	catalog   map[string]economy.Item
	publisher events.Publisher
	logger    logrus.FieldLogger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog   map[string]economy.Item // defaults to economy.DefaultCatalog
	Publisher events.Publisher
	Logger    logrus.FieldLogger
}

// NewService creates a new shop service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Logger == nil {
		panic("logger is required")
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = economy.DefaultCatalog()
	}

	return &service{
		catalog:   catalog,
		publisher: cfg.Publisher,
		logger:    cfg.Logger.WithField("service", "shop"),
	}
}

func (s *service) Items() []economy.Item {
	items := make([]economy.Item, 0, len(s.catalog))
	for _, item := range s.catalog {
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Price != items[j].Price {
			return items[i].Price < items[j].Price
		}
		return items[i].Key < items[j].Key
	})

	return items
}

func (s *service) Purchase(purse *economy.Purse, key string) (*economy.Item, error) {
	if purse == nil {
		return nil, dnderr.InvalidArgument("purse is required")
	}

	item, ok := s.catalog[key]
	if !ok {
		return nil, dnderr.NotFoundf("item %s not found", key)
	}

	log := s.logger.WithFields(logrus.Fields{
		"item":  item.Key,
		"price": item.Price,
		"gold":  purse.Gold,
	})

	if err := purse.Spend(item); err != nil {
		log.WithError(err).Info("purchase declined")
		return nil, dnderr.Wrapf(err, "failed to purchase %s", item.Name)
	}

	log.WithField("gold_left", purse.Gold).Info("purchase complete")

	if s.publisher != nil {
		event := &events.ItemPurchasedEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypeItemPurchased},
			Item:      item,
			GoldLeft:  purse.Gold,
		}
		if err := s.publisher.Emit(event); err != nil {
			log.WithError(err).Warn("event listener failed")
		}
	}

	return &item, nil
}
