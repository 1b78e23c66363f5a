package importer

import "fmt"

// ValidationError indicates an imported resume that violates the struct or schema rules.
type ValidationError struct {
	Source string
	Cause  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("resume from %s failed validation: %v", e.Source, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
