package events

// Event type constants
const (
	// Combat Events
	EventTypeDamageDealt    EventType = "damage_dealt"
	EventTypeAttackAbsorbed EventType = "attack_absorbed"
	EventTypeHealed         EventType = "healed"
	EventTypeEntityDefeated EventType = "entity_defeated"
	EventTypeStatusChanged  EventType = "status_changed"

	// Shop Events
	EventTypeItemPurchased EventType = "item_purchased"
)

// Priority levels for listener ordering
const (
	PriorityRules     = 100 // Game rules reacting to the event
	PriorityNarration = 300 // Text output
	PriorityAudit     = 500 // Logging, counters
)
