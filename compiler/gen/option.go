package gen

import (
	"errors"
	"strings"

	"github.com/syssam/cppent/schema/field"
)

// Config holds the engine-wide generation settings. Per-entity settings
// (identity field, messages, procedures) live in the schema itself.
type Config struct {
	// Profile is the name of the type table in use.
	Profile string
	// Types maps field types to their C++ rendering.
	Types field.Table
	// BaseType is the class every entity derives from and the first
	// initializer of every constructor.
	BaseType string
	// ClassSuffix is appended to the entity name to form the class name.
	ClassSuffix string
	// BindPrefix is prepended to every query placeholder name.
	BindPrefix string
	// Header is written at the top of every generated document.
	Header string
	// Includes are extra includes of the implementation document.
	Includes []string
	// Library renders the artifacts. Defaults to the built-in templates.
	Library TemplateLibrary
}

// Defaults.
const (
	DefaultBaseType    = "BaseEntity"
	DefaultClassSuffix = "Entity"
	DefaultBindPrefix  = "v"
)

// Option configures code generation.
type Option func(*Config) error

// WithProfile selects one of the built-in type tables ("std" or "vcl").
func WithProfile(name string) Option {
	return func(c *Config) error {
		t, ok := field.Profile(name)
		if !ok {
			e := NewConfigError("Profile", name, "unknown profile")
			e.Allowed = field.Profiles()
			return e
		}
		c.Profile, c.Types = name, t
		return nil
	}
}

// WithTypeTable sets a custom type table. Types missing from the table
// resolve to the placeholder.
func WithTypeTable(t field.Table) Option {
	return func(c *Config) error {
		if t == nil {
			return NewConfigError("Types", nil, "type table cannot be nil")
		}
		c.Profile, c.Types = "custom", t.Clone()
		return nil
	}
}

// WithBaseType sets the base class of the generated entities.
func WithBaseType(name string) Option {
	return func(c *Config) error {
		if strings.TrimSpace(name) == "" {
			return NewConfigError("BaseType", nil, "base type cannot be empty")
		}
		c.BaseType = name
		return nil
	}
}

// WithClassSuffix sets the suffix appended to entity names. An empty suffix
// uses the entity name as the class name.
func WithClassSuffix(suffix string) Option {
	return func(c *Config) error {
		c.ClassSuffix = suffix
		return nil
	}
}

// WithBindPrefix sets the prefix of query placeholder names.
func WithBindPrefix(prefix string) Option {
	return func(c *Config) error {
		if strings.ContainsAny(prefix, " :;\t\n") {
			return NewConfigError("BindPrefix", prefix, "bind prefix must be a plain identifier")
		}
		c.BindPrefix = prefix
		return nil
	}
}

// WithHeader sets the comment written at the top of each document.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithIncludes adds includes to the implementation document. Entries
// written as <file> are system includes, all others are quoted.
func WithIncludes(includes ...string) Option {
	return func(c *Config) error {
		for _, inc := range includes {
			if strings.TrimSpace(inc) == "" {
				return NewConfigError("Includes", nil, "include cannot be empty")
			}
		}
		c.Includes = append(c.Includes, includes...)
		return nil
	}
}

// WithLibrary replaces the built-in templates.
func WithLibrary(l TemplateLibrary) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Library", nil, "library cannot be nil")
		}
		c.Library = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() *Config {
	return &Config{
		Profile:     field.ProfileStd,
		Types:       field.StdTable(),
		BaseType:    DefaultBaseType,
		ClassSuffix: DefaultClassSuffix,
		BindPrefix:  DefaultBindPrefix,
	}
}

// NewConfig creates a new Config with the given options applied on top of
// the defaults.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}
