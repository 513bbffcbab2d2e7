package economy

import (
	"github.com/KirkDiggler/rpg-combat-core/internal/domain/entity"
)

// Item is something a shop sells
type Item struct {
	Key   string
	Name  string
	Price int
}

// Potion is an item that restores health when drunk
type Potion struct {
	Item
	HealAmount int
}

// Drink heals e by the potion's amount and returns what was actually restored
func (p Potion) Drink(e *entity.Entity) int {
	return e.Heal(p.HealAmount)
}

// Chest is a treasure chest holding a fixed bounty
type Chest struct {
	Name   string
	Bounty int
}

var (
	SimplePotion = Potion{Item: Item{Key: "simple-potion", Name: "Simple Potion", Price: 30}, HealAmount: 20}
	SmallPotion  = Potion{Item: Item{Key: "small-potion", Name: "Small Potion", Price: 50}, HealAmount: 20}
	LargePotion  = Potion{Item: Item{Key: "large-potion", Name: "Large Potion", Price: 120}, HealAmount: 50}
	SteelSword   = Item{Key: "steel-sword", Name: "Steel Sword", Price: 100}
)

// DefaultCatalog returns the starting shop stock keyed by item key
func DefaultCatalog() map[string]Item {
	return map[string]Item{
		SimplePotion.Key: SimplePotion.Item,
		SmallPotion.Key:  SmallPotion.Item,
		LargePotion.Key:  LargePotion.Item,
		SteelSword.Key:   SteelSword,
	}
}

// Potions lists the potions in the default catalog
func Potions() []Potion {
	return []Potion{SimplePotion, SmallPotion, LargePotion}
}
