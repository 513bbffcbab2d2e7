package shop_test

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-combat-core/internal/domain/economy"
	dnderr "github.com/KirkDiggler/rpg-combat-core/internal/errors"
	"github.com/KirkDiggler/rpg-combat-core/internal/events"
	mockevents "github.com/KirkDiggler/rpg-combat-core/internal/events/mock"
	"github.com/KirkDiggler/rpg-combat-core/internal/services/shop"
	"github.com/KirkDiggler/rpg-combat-core/internal/testutils"
)

func newService(t *testing.T) (shop.Service, *mockevents.MockPublisher, *test.Hook) {
	ctrl := gomock.NewController(t)
	publisher := mockevents.NewMockPublisher(ctrl)
	logger, hook := test.NewNullLogger()

	svc := shop.NewService(&shop.ServiceConfig{
		Publisher: publisher,
		Logger:    logger,
	})
	return svc, publisher, hook
}

func TestItems_SortedByPrice(t *testing.T) {
	svc, _, _ := newService(t)

	items := svc.Items()
	require.Len(t, items, 4)

	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = item.Key
	}
	assert.Equal(t, []string{"simple-potion", "small-potion", "steel-sword", "large-potion"}, keys)
}

func TestPurchase_Success(t *testing.T) {
	svc, publisher, hook := newService(t)
	purse := testutils.NewPurse(t, 75)

	publisher.EXPECT().
		Emit(gomock.AssignableToTypeOf(&events.ItemPurchasedEvent{})).
		DoAndReturn(func(e events.Event) error {
			bought := e.(*events.ItemPurchasedEvent)
			assert.Equal(t, "simple-potion", bought.Item.Key)
			assert.Equal(t, 45, bought.GoldLeft)
			return nil
		})

	item, err := svc.Purchase(purse, "simple-potion")
	require.NoError(t, err)
	assert.Equal(t, economy.SimplePotion.Item, *item)
	assert.Equal(t, 45, purse.Gold)
	assert.Equal(t, "purchase complete", hook.LastEntry().Message)
}

func TestPurchase_NotEnoughGold(t *testing.T) {
	svc, _, hook := newService(t)
	purse := testutils.NewPurse(t, 75)

	item, err := svc.Purchase(purse, "steel-sword")
	require.Error(t, err)
	assert.Nil(t, item)

	assert.True(t, dnderr.IsInsufficientFunds(err))
	assert.Equal(t, 25, dnderr.GetMeta(err)["missing"])
	assert.Equal(t, 75, purse.Gold)
	assert.Equal(t, "purchase declined", hook.LastEntry().Message)
}

func TestPurchase_UnknownItem(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Purchase(testutils.NewPurse(t, 500), "dragon-egg")
	assert.True(t, dnderr.IsNotFound(err))
}

func TestPurchase_NilPurse(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Purchase(nil, "simple-potion")
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestNewService_CustomCatalogWithoutPublisher(t *testing.T) {
	logger, _ := test.NewNullLogger()
	svc := shop.NewService(&shop.ServiceConfig{
		Catalog: map[string]economy.Item{
			"torch": {Key: "torch", Name: "Torch", Price: 1},
		},
		Logger: logger,
	})

	item, err := svc.Purchase(testutils.NewPurse(t, 1), "torch")
	require.NoError(t, err)
	assert.Equal(t, "Torch", item.Name)
	assert.Len(t, svc.Items(), 1)
}

func TestNewService_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		shop.NewService(&shop.ServiceConfig{})
	})
}
