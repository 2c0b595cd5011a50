package field

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// A Type represents a field type.
type Type uint8

// List of field types.
const (
	TypeUnknown Type = iota
	TypeInt
	TypeString
	TypeDateTime
	TypeFloat
	endTypes
)

// Placeholder is emitted for every part of a type that could not be resolved.
const Placeholder = "TBD"

var typeNames = [...]string{
	TypeUnknown:  "unknown",
	TypeInt:      "int",
	TypeString:   "string",
	TypeDateTime: "datetime",
	TypeFloat:    "float",
}

// String returns the string representation of a type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeUnknown]
}

// Known reports if the type is one of the recognized field types.
func (t Type) Known() bool { return t > TypeUnknown && t < endTypes }

// Types returns all known types in declaration order.
func Types() []Type {
	return []Type{TypeInt, TypeString, TypeDateTime, TypeFloat}
}

// ParseType returns the type for the given tag. The tag is matched case
// insensitively and surrounding whitespace is ignored. Unrecognized tags
// return TypeUnknown; ParseType never fails.
func ParseType(tag string) Type {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, t := range Types() {
		if typeNames[t] == tag {
			return t
		}
	}
	return TypeUnknown
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Unknown tags decode to TypeUnknown.
func (t *Type) UnmarshalText(text []byte) error {
	*t = ParseType(string(text))
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (t Type) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
// Unknown tags decode to TypeUnknown.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	*t = ParseType(node.Value)
	return nil
}
