// Package resume loads, edits, and saves RenderCV-style resume documents.
package resume

import "fmt"

// LoadError represents a resume file that is missing, unreadable, or not
// shaped like a resume. Runs abort on it: there is nothing to optimize.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("resume %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SaveError represents a failure to persist the optimized resume.
type SaveError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SaveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("resume %s: %s", e.Path, e.Message)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}
