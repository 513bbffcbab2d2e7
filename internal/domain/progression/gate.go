// Package progression checks whether a character meets an area's entry requirements
package progression

// AccessReason explains a gate decision
type AccessReason string

const (
	ReasonGranted            AccessReason = "granted"
	ReasonMissingKey         AccessReason = "missing_key"
	ReasonMissingLevel       AccessReason = "missing_level"
	ReasonMissingLevelAndKey AccessReason = "missing_level_and_key"
)

// Gate requires a minimum level and optionally a key
type Gate struct {
	Name          string
	RequiredLevel int
	RequiresKey   bool
}

// Access is the outcome of Evaluate
type Access struct {
	Granted       bool
	Reason        AccessReason
	LevelsMissing int
}

// Evaluate checks a character's level and key against the gate
func (g Gate) Evaluate(level int, hasKey bool) Access {
	levelOK := level >= g.RequiredLevel
	keyOK := hasKey || !g.RequiresKey

	access := Access{Reason: ReasonGranted}
	if !levelOK {
		access.LevelsMissing = g.RequiredLevel - level
	}

	switch {
	case levelOK && keyOK:
		access.Granted = true
	case levelOK:
		access.Reason = ReasonMissingKey
	case keyOK:
		access.Reason = ReasonMissingLevel
	default:
		access.Reason = ReasonMissingLevelAndKey
	}

	return access
}

// LevelWord picks "level" or "levels" for a count
func LevelWord(n int) string {
	if n == 1 {
		return "level"
	}
	return "levels"
}
