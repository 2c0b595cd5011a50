// Package load holds the schema shapes consumed by the generator and the
// decoders that build them from compact text, YAML and JSON.
package load

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/cppent/schema/field"
)

// Schema represents one entity description. Only Name and Fields are
// required; every other key is per-entity configuration and defaults to a
// value derived from Name.
type Schema struct {
	Name   string   `json:"name,omitempty" yaml:"name,omitempty"`
	Fields []*Field `json:"fields,omitempty" yaml:"fields,omitempty"`
	// Identity is the name of the primary-key field. Defaults to "id<Name>".
	Identity string `json:"identity,omitempty" yaml:"identity,omitempty"`
	// Table is the table passed to the query helpers. Defaults to lower(Name).
	Table string `json:"table,omitempty" yaml:"table,omitempty"`
	// LastUpdate is the timestamp field re-read after an insert.
	// Defaults to "timeUpdate".
	LastUpdate string      `json:"last_update,omitempty" yaml:"last_update,omitempty"`
	Audit      *Audit      `json:"audit,omitempty" yaml:"audit,omitempty"`
	Hydrate    []*Pair     `json:"hydrate,omitempty" yaml:"hydrate,omitempty"`
	Procedures *Procedures `json:"procedures,omitempty" yaml:"procedures,omitempty"`
	Messages   *Messages   `json:"messages,omitempty" yaml:"messages,omitempty"`
	// Pos records where the schema was loaded from.
	Pos string `json:"-" yaml:"-"`
}

// Field represents one schema field.
type Field struct {
	Name string     `json:"name,omitempty" yaml:"name,omitempty"`
	Type field.Type `json:"type" yaml:"type"`
	// Required enables the empty check of string fields.
	// Nil means required for string fields that are not the identity.
	Required *bool `json:"required,omitempty" yaml:"required,omitempty"`
	// Unique enables the duplicate lookup in the field validator.
	Unique bool `json:"unique,omitempty" yaml:"unique,omitempty"`
	// Label is the human readable name used in validation messages.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	// Source holds the raw "name:type" text the field was parsed from.
	Source string `json:"-" yaml:"-"`
	// Malformed is set when Source did not have the "name:type" shape.
	Malformed bool `json:"-" yaml:"-"`
}

// Audit describes the "last updated by" member assigned at the end of hydrate.
type Audit struct {
	Member string `json:"member,omitempty" yaml:"member,omitempty"`
	Key    string `json:"key,omitempty" yaml:"key,omitempty"`
}

// Pair maps a member to the key it is read from in a structured object.
type Pair struct {
	Member string `json:"member" yaml:"member"`
	Key    string `json:"key" yaml:"key"`
}

// Procedures holds the stored procedure names of the write operations.
type Procedures struct {
	Insert string `json:"insert,omitempty" yaml:"insert,omitempty"`
	Update string `json:"update,omitempty" yaml:"update,omitempty"`
	Delete string `json:"delete,omitempty" yaml:"delete,omitempty"`
}

// Messages holds the error messages baked into the generated code.
// The placeholders {entity}, {field}, {label} and {value} are substituted
// by the generator. Empty messages fall back to the defaults.
type Messages struct {
	LoadByID        string `json:"load_by_id,omitempty" yaml:"load_by_id,omitempty"`
	LoadFromDataset string `json:"load_from_dataset,omitempty" yaml:"load_from_dataset,omitempty"`
	Insert          string `json:"insert,omitempty" yaml:"insert,omitempty"`
	Update          string `json:"update,omitempty" yaml:"update,omitempty"`
	Delete          string `json:"delete,omitempty" yaml:"delete,omitempty"`
	Required        string `json:"required,omitempty" yaml:"required,omitempty"`
	Duplicate       string `json:"duplicate,omitempty" yaml:"duplicate,omitempty"`
	NotFound        string `json:"not_found,omitempty" yaml:"not_found,omitempty"`
}

// NewField returns a field with the given name and type tag.
func NewField(name, tag string) *Field {
	return &Field{Name: strings.TrimSpace(name), Type: field.ParseType(tag)}
}

// Bool returns a pointer to b, for the optional Required flag.
func Bool(b bool) *bool { return &b }

// String returns the compact form of the field.
func (f *Field) String() string {
	return f.Name + ":" + f.Type.String()
}

// UnmarshalYAML accepts both the mapping form and the compact "name:type"
// scalar form of a field.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*f = *ParseField(node.Value)
		return nil
	}
	type plain Field
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*f = Field(p)
	return nil
}

// MarshalYAML writes fields that carry nothing but a name and a type in
// the compact "name:type" form.
func (f *Field) MarshalYAML() (any, error) {
	if f.Required == nil && !f.Unique && f.Label == "" {
		return f.String(), nil
	}
	type plain Field
	return (*plain)(f), nil
}

// UnmarshalJSON accepts both the object form and the compact "name:type"
// string form of a field.
func (f *Field) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = *ParseField(s)
		return nil
	}
	type plain Field
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("load: decode field: %w", err)
	}
	*f = Field(p)
	return nil
}
