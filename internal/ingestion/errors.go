package ingestion

import "fmt"

// LoadError represents a job posting that cannot be read. Runs abort on
// it: without the posting there is nothing to extract.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job posting %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("job posting %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
