package main

import (
	"fmt"
	"io"

	"github.com/KirkDiggler/rpg-combat-core/internal/events"
)

// narrator prints combat and shop events as they happen
type narrator struct {
	out io.Writer
}

func (n *narrator) ID() string    { return "narrator" }
func (n *narrator) Priority() int { return events.PriorityNarration }

func (n *narrator) Subscriptions() []events.EventType {
	return []events.EventType{
		events.EventTypeDamageDealt,
		events.EventTypeAttackAbsorbed,
		events.EventTypeHealed,
		events.EventTypeEntityDefeated,
		events.EventTypeStatusChanged,
		events.EventTypeItemPurchased,
	}
}

func (n *narrator) HandleEvent(event events.Event) error {
	var err error

	switch e := event.(type) {
	case *events.DamageDealtEvent:
		_, err = fmt.Fprintf(n.out, "%s hits %s for %d damage\n", e.Actor.Name, e.Target.Name, e.Damage)
	case *events.AttackAbsorbedEvent:
		_, err = fmt.Fprintf(n.out, "%s doesn't do enough damage to get through %s's defense!\n", e.Actor.Name, e.Target.Name)
	case *events.HealedEvent:
		_, err = fmt.Fprintf(n.out, "%s heals for %d health\n", e.Target.Name, e.Restored)
	case *events.EntityDefeatedEvent:
		_, err = fmt.Fprintf(n.out, "%s has been defeated!\n", e.Target.Name)
	case *events.StatusChangedEvent:
		if e.Present {
			_, err = fmt.Fprintf(n.out, "%s is now %s\n", e.Target.Name, e.Status)
		} else {
			_, err = fmt.Fprintf(n.out, "%s is no longer %s\n", e.Target.Name, e.Status)
		}
	case *events.ItemPurchasedEvent:
		_, err = fmt.Fprintf(n.out, "You buy the %s for %d\n", e.Item.Name, e.Item.Price)
	}

	return err
}
