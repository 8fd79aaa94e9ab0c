package skills

import (
	"github.com/go-playground/validator/v10"
)

// Config mirrors the skills YAML file: one list of technology names per
// proficiency level, plus the never_add blocklist. Missing keys decode
// to empty lists.
type Config struct {
	Expert     []string `yaml:"expert" validate:"omitempty,dive,required"`
	Proficient []string `yaml:"proficient" validate:"omitempty,dive,required"`
	Familiar   []string `yaml:"familiar" validate:"omitempty,dive,required"`
	Learning   []string `yaml:"learning" validate:"omitempty,dive,required"`
	NeverAdd   []string `yaml:"never_add" validate:"omitempty,dive,required"`
}

// Validate validates the Config using the validator.
func (c *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// levelEntries returns the configured names for a level.
func (c *Config) levelEntries(level Level) []string {
	switch level {
	case LevelExpert:
		return c.Expert
	case LevelProficient:
		return c.Proficient
	case LevelFamiliar:
		return c.Familiar
	case LevelLearning:
		return c.Learning
	default:
		return nil
	}
}

// StarterYAML is the commented starter file written by `resumata init`.
const StarterYAML = `# resumata skills config
#
# List the technologies you can defend in an interview, grouped by how
# comfortable you are with them. Keywords found in a job posting are only
# added to your resume when they appear here at familiar or above.
# Names are matched case-insensitively.

# Technologies you could teach.
expert: []

# Technologies you use daily without looking things up.
proficient: []

# Technologies you have shipped something real with.
familiar: []

# Technologies you are still picking up. Never added automatically.
learning: []

# Technologies to leave out even when the posting asks for them.
never_add: []
`
