// Package cli provides shared configuration and utilities for the cppent CLI.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/syssam/cppent/compiler/gen"
)

// Exit codes.
const (
	ExitSuccess     = 0
	ExitGeneral     = 1
	ExitConfig      = 2
	ExitSchemaParse = 3
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code of err. Errors that are not an ExitError
// are classified by their generator error kind.
func ExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case gen.IsConfigError(err):
		return ExitConfig
	case gen.IsSchemaError(err):
		return ExitSchemaParse
	default:
		return ExitGeneral
	}
}

// PrintError writes err to w in the form used by ExitWithError.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, "Error:", err)
}

// ExitWithError prints the error and exits with the appropriate code.
func ExitWithError(err error) {
	PrintError(os.Stderr, err)
	os.Exit(ExitCode(err))
}

// ConfigError creates an ExitError with ExitConfig code.
func ConfigError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitConfig, Message: msg, Err: err}
}

// SchemaParseError creates an ExitError with ExitSchemaParse code.
func SchemaParseError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitSchemaParse, Message: msg, Err: err}
}

// GeneralError creates an ExitError with ExitGeneral code.
func GeneralError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitGeneral, Message: msg, Err: err}
}

// Classify wraps err in the ExitError matching its kind, with msg as the
// message. Errors that already are an ExitError are returned unchanged.
func Classify(msg string, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: ExitCode(err), Message: msg, Err: err}
}
