package events

import (
	"github.com/KirkDiggler/rpg-combat-core/internal/domain/entity"
)

// EventType represents the type of game event
type EventType string

// Event is the base interface for all game events
type Event interface {
	GetType() EventType
	GetActor() *entity.Entity
	GetTarget() *entity.Entity
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	Actor     *entity.Entity
	Target    *entity.Entity
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType        { return e.Type }
func (e *BaseEvent) GetActor() *entity.Entity  { return e.Actor }
func (e *BaseEvent) GetTarget() *entity.Entity { return e.Target }
func (e *BaseEvent) IsCancelled() bool         { return e.Cancelled }
func (e *BaseEvent) Cancel()                   { e.Cancelled = true }
