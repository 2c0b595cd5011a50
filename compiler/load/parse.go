package load

import (
	"strings"

	"github.com/syssam/cppent/schema/field"
)

// ParseField parses one "name:type" spec. A spec without the separator, or
// with more than one, keeps its name and gets the unknown type; it is marked
// Malformed so the generator can report it.
func ParseField(spec string) *Field {
	parts := strings.Split(spec, ":")
	f := &Field{
		Name:   strings.TrimSpace(parts[0]),
		Source: spec,
	}
	if len(parts) == 2 {
		f.Type = field.ParseType(parts[1])
	} else {
		f.Type = field.TypeUnknown
		f.Malformed = true
	}
	return f
}

// ParseFields parses a field list in the compact form:
//
//	idMSupplier:int;kodeSupplier:string;timeUpdate:datetime
//
// Blank segments are skipped. ParseFields never fails; see ParseField.
func ParseFields(text string) []*Field {
	var fields []*Field
	for _, spec := range strings.Split(text, ";") {
		if strings.TrimSpace(spec) == "" {
			continue
		}
		fields = append(fields, ParseField(spec))
	}
	return fields
}

// ParseSchema returns the schema of the named entity with the compact field list.
func ParseSchema(name, fields string) *Schema {
	return &Schema{
		Name:   strings.TrimSpace(name),
		Fields: ParseFields(fields),
	}
}

// ParseHydrate parses a hydrate mapping in the compact form, one pair per
// line or per ';' separated segment:
//
//	kodeSupplier => KodeSupplier;
//	namaSupplier => NamaSupplier;
//
// Segments that do not hold a member and a key are ignored.
func ParseHydrate(text string) []*Pair {
	var pairs []*Pair
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ';'
	})
	for _, seg := range segments {
		var parts []string
		for _, p := range strings.FieldsFunc(seg, func(r rune) bool {
			return r == '=' || r == '>' || r == '(' || r == ')'
		}) {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) < 2 {
			continue
		}
		pairs = append(pairs, &Pair{Member: parts[0], Key: parts[1]})
	}
	return pairs
}
