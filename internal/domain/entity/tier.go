package entity

// Tier is a qualitative health bucket
type Tier string

const (
	TierDead     Tier = "dead"
	TierCritical Tier = "critical"
	TierWounded  Tier = "wounded"
	TierHurt     Tier = "hurt"
	TierHealthy  Tier = "healthy"
)

// Absolute thresholds; they do not scale with MaxHealth.
const (
	criticalThreshold = 25
	woundedThreshold  = 50
)

// StatusTier buckets current health. Checks run in order so the first match wins.
func (e *Entity) StatusTier() Tier {
	switch {
	case e.health <= 0:
		return TierDead
	case e.health < criticalThreshold:
		return TierCritical
	case e.health < woundedThreshold:
		return TierWounded
	case e.health < e.MaxHealth:
		return TierHurt
	default:
		return TierHealthy
	}
}

// Advice is the one-line hint shown next to the tier
func (t Tier) Advice() string {
	switch t {
	case TierDead:
		return "Game Over!"
	case TierCritical:
		return "Find healing immediately!"
	case TierWounded:
		return "Be careful!"
	case TierHurt:
		return "You've taken some damage."
	case TierHealthy:
		return "You're in perfect health!"
	default:
		return ""
	}
}
