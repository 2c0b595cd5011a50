package field

import (
	"maps"
	"sort"
)

// TypeInfo holds the C++ rendering of a field type.
type TypeInfo struct {
	Type Type
	// Decl is the declaration type of the member.
	Decl string
	// Default is the expression used in the constructor initializer list.
	Default string
	// Accessor is the suffix of the TField accessor (AsInteger, AsString...).
	Accessor string
}

// Unresolved reports if the info is the placeholder triple.
func (i TypeInfo) Unresolved() bool {
	return i.Decl == Placeholder && i.Default == Placeholder && i.Accessor == Placeholder
}

// Table maps field types to their C++ rendering.
type Table map[Type]TypeInfo

// Profile names.
const (
	ProfileStd = "std"
	ProfileVCL = "vcl"
)

// StdTable returns the standard library type table.
func StdTable() Table {
	return Table{
		TypeInt:      {Type: TypeInt, Decl: "int", Default: "0", Accessor: "Integer"},
		TypeString:   {Type: TypeString, Decl: "std::string", Default: `""`, Accessor: "String"},
		TypeDateTime: {Type: TypeDateTime, Decl: "std::tm", Default: "std::tm{}", Accessor: "DateTime"},
		TypeFloat:    {Type: TypeFloat, Decl: "double", Default: "0.0", Accessor: "Float"},
	}
}

// VCLTable returns the type table for the native VCL types.
func VCLTable() Table {
	return Table{
		TypeInt:      {Type: TypeInt, Decl: "int", Default: "0", Accessor: "Integer"},
		TypeString:   {Type: TypeString, Decl: "AnsiString", Default: `""`, Accessor: "String"},
		TypeDateTime: {Type: TypeDateTime, Decl: "TDateTime", Default: "TDateTime()", Accessor: "DateTime"},
		TypeFloat:    {Type: TypeFloat, Decl: "double", Default: "0.0", Accessor: "Float"},
	}
}

var profiles = map[string]func() Table{
	ProfileStd: StdTable,
	ProfileVCL: VCLTable,
}

// Profile returns a fresh copy of the named type table.
func Profile(name string) (Table, bool) {
	f, ok := profiles[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Profiles returns the sorted list of profile names.
func Profiles() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the rendering of t. Resolve is total: unknown types, and
// known types missing from the table, resolve to the placeholder triple.
func (tb Table) Resolve(t Type) TypeInfo {
	if info, ok := tb[t]; ok && t.Known() {
		info.Type = t
		return info
	}
	return TypeInfo{
		Type:     t,
		Decl:     Placeholder,
		Default:  Placeholder,
		Accessor: Placeholder,
	}
}

// Clone returns a copy of the table.
func (tb Table) Clone() Table {
	return maps.Clone(tb)
}
