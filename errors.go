package cppent

import (
	"fmt"
	"strings"
)

// EntityError wraps the failure of one entity with its name.
type EntityError struct {
	Entity string
	Err    error
}

// Error returns the error string.
func (e *EntityError) Error() string {
	return fmt.Sprintf("cppent: entity %s: %v", e.Entity, e.Err)
}

// Unwrap returns the underlying error.
func (e *EntityError) Unwrap() error {
	return e.Err
}

// NewEntityError returns a new EntityError.
func NewEntityError(entity string, err error) *EntityError {
	return &EntityError{Entity: entity, Err: err}
}

// AggregateError represents multiple errors collected during an operation.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "cppent: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("cppent: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors, so errors.Is and errors.As look
// into every one of them.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
