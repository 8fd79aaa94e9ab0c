package skills

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kapabl/resumata/internal/keywords"
)

// Registry holds the user's validated skills grouped by proficiency
// level. Lookups are case-insensitive.
type Registry struct {
	levels   map[Level]map[string]bool
	neverAdd map[string]bool
}

// Default returns an empty registry: nothing validated, nothing blocked.
func Default() *Registry {
	return NewRegistry(Config{})
}

// NewRegistry builds a registry from a config. Names are lowercased.
func NewRegistry(cfg Config) *Registry {
	registry := &Registry{
		levels:   make(map[Level]map[string]bool, len(levelNames)),
		neverAdd: toSet(cfg.NeverAdd),
	}
	for _, level := range Levels() {
		registry.levels[level] = toSet(cfg.levelEntries(level))
	}
	return registry
}

// Load reads a skills config file. A missing file is not an error: the
// returned registry is simply empty. A file that exists but cannot be
// parsed or validated yields a ConfigError alongside the empty registry
// so callers can warn and continue.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), &ConfigError{Path: path, Message: "failed to read skills config", Cause: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ConfigError{Path: path, Message: "failed to parse skills config", Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return Default(), &ConfigError{Path: path, Message: "invalid skills config", Cause: err}
	}

	return NewRegistry(cfg), nil
}

// IsValidated reports whether keyword may be used at the given minimum
// level: it must be registered at min or any higher level. Names on the
// never_add list are always rejected.
func (r *Registry) IsValidated(keyword string, min Level) bool {
	name := strings.ToLower(keyword)
	if r.neverAdd[name] {
		return false
	}
	for level := min; level <= LevelExpert; level++ {
		if r.levels[level][name] {
			return true
		}
	}
	return false
}

// LevelOf returns the highest level at which keyword is registered.
// ok is false when the keyword is not registered at all.
func (r *Registry) LevelOf(keyword string) (Level, bool) {
	name := strings.ToLower(keyword)
	for level := LevelExpert; level >= LevelLearning; level-- {
		if r.levels[level][name] {
			return level, true
		}
	}
	return 0, false
}

// FilterSafe splits keyword counts into those validated at min or higher
// and the rejected remainder. Rejected names come back sorted so reports
// are stable across runs.
func (r *Registry) FilterSafe(counts keywords.Count, min Level) (keywords.Count, []string) {
	safe := make(keywords.Count)
	var rejected []string
	for keyword, count := range counts {
		if r.IsValidated(keyword, min) {
			safe[keyword] = count
		} else {
			rejected = append(rejected, keyword)
		}
	}
	sort.Strings(rejected)
	return safe, rejected
}

// toSet lowercases names into a membership set.
func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = true
	}
	return set
}
