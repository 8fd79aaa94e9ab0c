// Package skills provides the validated-skill registry that gates which
// job posting keywords may be added to a resume.
package skills

import "strings"

// Level orders skill proficiency from lowest to highest.
type Level int

const (
	LevelLearning Level = iota
	LevelFamiliar
	LevelProficient
	LevelExpert
)

var levelNames = [...]string{"learning", "familiar", "proficient", "expert"}

// String returns the config-file name of the level.
func (l Level) String() string {
	if l < LevelLearning || l > LevelExpert {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLevel parses a config-file level name. ok is false for anything
// that is not one of the four levels.
func ParseLevel(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "learning":
		return LevelLearning, true
	case "familiar":
		return LevelFamiliar, true
	case "proficient":
		return LevelProficient, true
	case "expert":
		return LevelExpert, true
	default:
		return 0, false
	}
}

// Levels returns all levels from lowest to highest.
func Levels() []Level {
	return []Level{LevelLearning, LevelFamiliar, LevelProficient, LevelExpert}
}
