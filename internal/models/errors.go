package models

import "fmt"

// ValidationError reports a request field that failed validation. The
// operation is aborted before any write when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ErrEmptyField builds the ValidationError for a required field that was
// left empty or explicitly cleared.
func ErrEmptyField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "field cannot be empty"}
}
