package events

//go:generate mockgen -destination=mock/mock_publisher.go -package=mockevents -source=bus.go

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// Publisher emits events to whoever is listening
type Publisher interface {
	Emit(event Event) error
}

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
	logger    logrus.FieldLogger
}

// NewBus creates a new event bus. A nil logger falls back to the logrus standard logger.
func NewBus(logger logrus.FieldLogger) *Bus {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Bus{
		listeners: make(map[EventType][]EventListener),
		logger:    logger.WithField("component", "event_bus"),
	}
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)

	// Stable so equal priorities keep subscription order
	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})

	b.logger.WithFields(logrus.Fields{
		"listener": listener.ID(),
		"event":    eventType,
		"priority": listener.Priority(),
	}).Debug("subscribed listener")
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}

		b.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)

		b.logger.WithFields(logrus.Fields{
			"listener": listenerID,
			"event":    eventType,
		}).Debug("unsubscribed listener")
		return
	}
}

// Emit sends an event to all registered listeners in priority order
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	log := b.logger.WithField("event", event.GetType())
	log.WithField("listeners", len(listeners)).Debug("emitting event")

	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Debug("event cancelled, stopping propagation")
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

// ListenerCount returns how many listeners are subscribed to an event type
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.listeners[eventType])
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
	b.logger.Debug("cleared all listeners")
}
