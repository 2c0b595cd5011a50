package gen

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"text/template"

	"github.com/syssam/cppent/schema/field"
)

//go:embed template/*.tmpl
var templateFS embed.FS

// Delimiter separates generated method bodies.
const Delimiter = "//-------------------------------------------------------------------------"

// Library is the built-in TemplateLibrary, one named text/template per
// artifact kind. It is immutable after parsing and safe for concurrent use.
type Library struct {
	tmpl *template.Template
}

var _ TemplateLibrary = (*Library)(nil)

// fieldScope is the data of the per-field templates.
type fieldScope struct {
	T *Type
	F *Field
}

// NewLibrary parses the built-in templates. Templates found in the
// optional overrides (matching *.tmpl) redefine the built-in ones with the
// same name.
func NewLibrary(overrides ...fs.FS) (*Library, error) {
	l := &Library{}
	l.tmpl = template.New("cppent").Funcs(l.funcs())
	if _, err := l.tmpl.ParseFS(templateFS, "template/*.tmpl"); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	for _, fsys := range overrides {
		if _, err := l.tmpl.ParseFS(fsys, "*.tmpl"); err != nil {
			return nil, fmt.Errorf("parse template overrides: %w", err)
		}
	}
	return l, nil
}

var defaultLibrary = sync.OnceValue(func() *Library {
	l, err := NewLibrary()
	if err != nil {
		panic(err)
	}
	return l
})

// DefaultLibrary returns the shared built-in library.
func DefaultLibrary() *Library {
	return defaultLibrary()
}

func (l *Library) funcs() template.FuncMap {
	return template.FuncMap{
		"quote":       quote,
		"chain":       chain,
		"procCall":    procCall,
		"includePath": includePath,
		"indent":      indent,
		"list":        func(fields ...*Field) []*Field { return fields },
		"delimiter":   func() string { return Delimiter },
		"placeholder": func() string { return field.Placeholder },
		"include": func(name string, data any) (string, error) {
			var b strings.Builder
			if err := l.tmpl.ExecuteTemplate(&b, name, data); err != nil {
				return "", err
			}
			return b.String(), nil
		},
	}
}

// exec executes the named template. The output never starts with a blank
// line and always ends with exactly one newline.
func (l *Library) exec(name string, data any) (string, error) {
	var b strings.Builder
	if err := l.tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("execute template %q: %w", name, err)
	}
	return strings.Trim(b.String(), "\n") + "\n", nil
}

// HeaderPrelude renders the include guard and the base class include.
func (l *Library) HeaderPrelude(t *Type) (string, error) { return l.exec("header/prelude", t) }

// Declaration renders the class body: members, constructor and prototypes.
func (l *Library) Declaration(t *Type) (string, error) { return l.exec("header/declaration", t) }

// HeaderEpilogue closes the include guard.
func (l *Library) HeaderEpilogue(t *Type) (string, error) { return l.exec("header/epilogue", t) }

// Accessors renders the inline getter and setter of f.
func (l *Library) Accessors(t *Type, f *Field) (string, error) {
	return l.exec("header/accessors", fieldScope{T: t, F: f})
}

// SourcePrelude renders the includes of the implementation document.
func (l *Library) SourcePrelude(t *Type) (string, error) { return l.exec("source/prelude", t) }

// Comparison renders both operator== overloads.
func (l *Library) Comparison(t *Type) (string, error) { return l.exec("crud/comparison", t) }

// MapValues renders getAllMapValue.
func (l *Library) MapValues(t *Type) (string, error) { return l.exec("crud/mapvalues", t) }

// SetAndLoad renders the setter that loads the entity by its identity.
func (l *Library) SetAndLoad(t *Type) (string, error) { return l.exec("crud/setandload", t) }

// Insert renders tambahRecord.
func (l *Library) Insert(t *Type) (string, error) { return l.exec("crud/insert", t) }

// Update renders editRecord.
func (l *Library) Update(t *Type) (string, error) { return l.exec("crud/update", t) }

// Delete renders deleteRecord.
func (l *Library) Delete(t *Type) (string, error) { return l.exec("crud/delete", t) }

// LoadByID renders loadById.
func (l *Library) LoadByID(t *Type) (string, error) { return l.exec("crud/loadbyid", t) }

// LoadFromDataset renders loadDataFromDataset.
func (l *Library) LoadFromDataset(t *Type) (string, error) {
	return l.exec("crud/loadfromdataset", t)
}

// IsNew renders isNew.
func (l *Library) IsNew(t *Type) (string, error) { return l.exec("crud/isnew", t) }

// MarkAsNew renders markAsNew.
func (l *Library) MarkAsNew(t *Type) (string, error) { return l.exec("crud/markasnew", t) }

// PrimaryKey renders primaryKey.
func (l *Library) PrimaryKey(t *Type) (string, error) { return l.exec("crud/primarykey", t) }

// Validate renders isValidToPersist, the conjunction of the field validators.
func (l *Library) Validate(t *Type) (string, error) { return l.exec("validate/aggregate", t) }

// FieldValidator renders the validator of f.
func (l *Library) FieldValidator(t *Type, f *Field) (string, error) {
	return l.exec("validate/field", fieldScope{T: t, F: f})
}

// Hydrate renders the assignment of the members from a JSON object.
func (l *Library) Hydrate(t *Type) (string, error) { return l.exec("hydrate", t) }

// chainIndent aligns the continuation lines of the aggregate validator
// under its first call ("   bool isValid = ").
const chainIndent = "                  "

// chain joins the validator calls of the fields into a short-circuit
// conjunction.
func chain(fields []*Field) string {
	calls := make([]string, len(fields))
	for i, f := range fields {
		calls[i] = f.Validator + "()"
	}
	return strings.Join(calls, " &&\n"+chainIndent)
}

// procCall renders a stored-procedure call with one placeholder per field.
func procCall(proc string, fields []*Field) string {
	params := make([]string, len(fields))
	for i, f := range fields {
		params[i] = ":" + f.Param
	}
	return "CALL " + proc + "(" + strings.Join(params, ", ") + ");"
}

// includePath keeps <system> includes and quotes all others.
func includePath(inc string) string {
	if strings.HasPrefix(inc, "<") && strings.HasSuffix(inc, ">") {
		return inc
	}
	return quote(strings.Trim(inc, `"`))
}

// indent prefixes every non-empty line of s with n spaces.
func indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
