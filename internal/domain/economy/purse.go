package economy

import (
	dnderr "github.com/KirkDiggler/rpg-combat-core/internal/errors"
)

// DefaultCurrency is used when a purse is created without a currency name
const DefaultCurrency = "gold"

// Purse holds a non-negative amount of currency
type Purse struct {
	Gold     int
	Currency string
}

// NewPurse creates a purse with a starting balance
func NewPurse(currency string, gold int) (*Purse, error) {
	if gold < 0 {
		return nil, dnderr.InvalidConfigf("starting %s cannot be negative: %d", currency, gold)
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Purse{Gold: gold, Currency: currency}, nil
}

// Deposit adds currency. Non-positive amounts are ignored. Returns the new balance.
func (p *Purse) Deposit(amount int) int {
	if amount > 0 {
		p.Gold += amount
	}
	return p.Gold
}

// Loot empties a chest's bounty into the purse
func (p *Purse) Loot(chest Chest) int {
	return p.Deposit(chest.Bounty)
}

// CanAfford checks whether the balance covers price
func (p *Purse) CanAfford(price int) bool {
	return p.Gold >= price
}

// Shortfall is how much more currency is needed for price, or 0
func (p *Purse) Shortfall(price int) int {
	if p.Gold >= price {
		return 0
	}
	return price - p.Gold
}

// Spend pays for an item
func (p *Purse) Spend(item Item) error {
	if item.Price < 0 {
		return dnderr.InvalidArgumentf("item %s has a negative price", item.Key)
	}

	if missing := p.Shortfall(item.Price); missing > 0 {
		return dnderr.InsufficientFundsf("not enough %s to buy %s: missing %d", p.Currency, item.Name, missing).
			WithMeta("item", item.Key).
			WithMeta("missing", missing)
	}

	p.Gold -= item.Price
	return nil
}
