package skills

import "fmt"

// ConfigError represents a skills config file that exists but cannot be
// used. Callers are expected to report it and continue with defaults.
type ConfigError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skills config %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("skills config %s: %s", e.Path, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
