package gen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/cppent/compiler/load"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidSchema indicates a structurally invalid schema.
	ErrInvalidSchema = errors.New("cppent: invalid schema")
	// ErrInvalidConfig indicates a configuration error.
	ErrInvalidConfig = errors.New("cppent: invalid configuration")
	// ErrGenerationFailed indicates a template failed to execute.
	ErrGenerationFailed = errors.New("cppent: code generation failed")
)

// SchemaError reports a schema that cannot be generated: no name, no
// fields, or an empty or duplicate field name. Incomplete schemas are not
// errors; they produce warnings.
type SchemaError struct {
	// Entity is the schema name, empty when the schema has none.
	Entity string
	// Pos is the file the schema was loaded from.
	Pos string
	// Index is the 1-based position of the offending field, 0 when the
	// error is not about a field.
	Index int
	// Field is the name of the offending field, if it has one.
	Field   string
	Message string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("cppent: ")
	if e.Pos != "" {
		b.WriteString(e.Pos)
		b.WriteString(": ")
	}
	if e.Entity != "" {
		b.WriteString("entity ")
		b.WriteString(e.Entity)
		b.WriteString(": ")
	}
	if e.Index > 0 {
		b.WriteString("field #")
		b.WriteString(strconv.Itoa(e.Index))
		if e.Field != "" {
			b.WriteString(" ")
			b.WriteString(e.Field)
		}
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	return b.String()
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a SchemaError for s, which may be nil.
func NewSchemaError(s *load.Schema, message string) *SchemaError {
	e := &SchemaError{Message: message}
	if s != nil {
		e.Entity = strings.TrimSpace(s.Name)
		e.Pos = s.Pos
	}
	return e
}

// AtField returns a copy of e pointing at the i-th field (0-based).
func (e *SchemaError) AtField(i int, name string) *SchemaError {
	c := *e
	c.Index, c.Field = i+1, name
	return &c
}

// ConfigError reports an option that was given an invalid value.
type ConfigError struct {
	Option  string
	Value   any
	Message string
	// Allowed lists the accepted values of enumerated options.
	Allowed []string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := e.Message
	if len(e.Allowed) > 0 {
		msg += "; use " + strings.Join(e.Allowed, " or ")
	}
	if e.Value != nil {
		return fmt.Sprintf("cppent: option %s = %q: %s", e.Option, fmt.Sprint(e.Value), msg)
	}
	return fmt.Sprintf("cppent: option %s: %s", e.Option, msg)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError reports a section whose template failed to render.
type GenerationError struct {
	Entity string
	// Section is the artifact being rendered and Document the file it
	// belongs to.
	Section  SectionKind
	Document string
	// Field is set for the per-field sections.
	Field string
	Cause error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("cppent: rendering ")
	b.WriteString(string(e.Section))
	if e.Field != "" {
		b.WriteString(" of field ")
		b.WriteString(e.Field)
	}
	if e.Document != "" {
		b.WriteString(" in ")
		b.WriteString(e.Document)
	}
	if e.Entity != "" {
		b.WriteString(" (entity ")
		b.WriteString(e.Entity)
		b.WriteString(")")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
