// Package field defines the abstract field types of an entity schema and the
// tables that map them onto C++ declarations.
//
// A schema field carries one of a fixed set of type tags:
//
//	int       whole numbers
//	string    text
//	datetime  calendar time
//	float     floating point numbers
//
// Any other tag is kept as TypeUnknown. Unknown types are never an error:
// they resolve to the Placeholder token ("TBD") so the generated code is
// visibly incomplete instead of missing.
//
// # Type Tables
//
// A Table maps every type to a TypeInfo, the triple used by the templates:
//
//	Decl      the C++ declaration type      (int, std::string, std::tm, double)
//	Default   the initializer expression    (0, "", std::tm{}, 0.0)
//	Accessor  the TField accessor suffix    (Integer, String, DateTime, Float)
//
// Two profiles are provided. StdTable uses the standard library types and is
// the default; VCLTable uses the native VCL types (AnsiString, TDateTime):
//
//	info := field.StdTable().Resolve(field.TypeString)
//	info.Decl     // std::string
//	info.Default  // ""
//	info.Accessor // String
//
// Tables are plain values. Callers that need a custom mapping copy one of the
// profiles and override entries:
//
//	t := field.StdTable()
//	t[field.TypeString] = field.TypeInfo{Type: field.TypeString, Decl: "UnicodeString", Default: `""`, Accessor: "String"}
package field
