package gen

import (
	"fmt"
	"strings"

	"github.com/syssam/cppent/compiler/load"
	"github.com/syssam/cppent/schema/field"
)

// The following types and their exported fields are used by the templates.
// They hold fully resolved data: templates never derive names themselves.
type (
	// Type represents one entity and the per-entity configuration that
	// was supplied with its schema.
	Type struct {
		// Name holds the entity name as written in the schema.
		Name string
		// Class is the generated class name.
		Class string
		// Base is the base class, always initialized first.
		Base string
		// Table is passed to the query helpers.
		Table string
		// Fields holds the resolved fields in schema order.
		Fields []*Field
		// ID is the identity field, nil when the schema has none.
		ID *Field
		// IDName is the expected name of the identity field.
		IDName string
		// Key is ID, or a placeholder field when ID is nil.
		Key *Field
		// LastUpdate is the timestamp member re-read after an insert.
		LastUpdate *Field
		// Audit is the member assigned last by hydrate.
		Audit load.Audit
		// Hydrate holds the member/key pairs read by hydrate.
		Hydrate []*load.Pair
		// Procedures holds the stored procedures of the write operations.
		Procedures load.Procedures
		// Messages holds the expanded error messages.
		Messages Messages
		// SetAndLoad is the name of the load-by-identity setter.
		SetAndLoad string
		// BindPrefix is prepended to every placeholder.
		BindPrefix string
		// Includes of the implementation document.
		Includes []string
		// Warnings collected while resolving the schema.
		Warnings []Warning
	}

	// Field holds the resolved information of one schema field.
	Field struct {
		// Name is the field name in the schema and in the data set.
		Name string
		// Type is the abstract field type.
		Type field.Type
		// DeclType, Default and Accessor come from the type table.
		DeclType string
		Default  string
		Accessor string
		// Member, Getter, Setter and Validator are the C++ names.
		Member    string
		Getter    string
		Setter    string
		Validator string
		// BindParam is the placeholder name without the bind prefix.
		BindParam string
		// Param is the full placeholder name (prefix + BindParam).
		Param string
		// LookupParam is the placeholder of the duplicate lookup.
		LookupParam string
		// Label is the human readable name.
		Label string
		// Identity marks the primary-key field.
		Identity bool
		// Required enables the empty check.
		Required bool
		// Unique enables the duplicate lookup.
		Unique bool
		// Unresolved marks placeholder output.
		Unresolved bool
		// RequiredMessage is the message of a failed empty check.
		RequiredMessage string
		// DuplicateExpr is the C++ expression of the duplicate message.
		DuplicateExpr string
	}

	// Messages holds the error phrases of one entity after placeholder expansion.
	Messages struct {
		LoadByID        string
		LoadFromDataset string
		Insert          string
		Update          string
		Delete          string
		NotFound        string
	}
)

// DefaultMessages returns the messages used when a schema does not
// override them.
func DefaultMessages() load.Messages {
	return load.Messages{
		LoadByID:        "error find by id {entity} entity ",
		LoadFromDataset: "Gagal load {entity} dari dataset ",
		Insert:          "Gagal isi {entity} ",
		Update:          "Gagal ubah {entity} ",
		Delete:          "Gagal hapus {entity} ",
		Required:        "{label} tidak boleh kosong",
		Duplicate:       "{label} {value} sudah ada",
		NotFound:        "{field} tidak ditemukan",
	}
}

// Defaults of the per-entity configuration.
const (
	DefaultLastUpdate  = "timeUpdate"
	DefaultAuditMember = "idMUserUpdate"
	DefaultAuditKey    = "IdMUserUpdate"
)

// ValidateSchema checks the structural invariants of a schema: a name,
// at least one field, and unique non-empty field names. These are the only
// conditions that fail generation.
func ValidateSchema(s *load.Schema) error {
	if s == nil {
		return NewSchemaError(nil, "schema cannot be nil")
	}
	if strings.TrimSpace(s.Name) == "" {
		return NewSchemaError(s, "entity name cannot be empty")
	}
	if len(s.Fields) == 0 {
		return NewSchemaError(s, "entity must have at least one field")
	}
	seen := make(map[string]int, len(s.Fields))
	for i, f := range s.Fields {
		if f == nil || strings.TrimSpace(f.Name) == "" {
			return NewSchemaError(s, "field name cannot be empty").AtField(i, "")
		}
		key := strings.ToLower(strings.TrimSpace(f.Name))
		if prev, ok := seen[key]; ok {
			msg := fmt.Sprintf("field redeclared (conflicts with field #%d %s)", prev+1, s.Fields[prev].Name)
			return NewSchemaError(s, msg).AtField(i, f.Name)
		}
		seen[key] = i
	}
	return nil
}

// NewType resolves the schema with the given config. Every field is resolved
// once, before any template runs.
func NewType(c *Config, s *load.Schema) (*Type, error) {
	if err := ValidateSchema(s); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(s.Name)
	t := &Type{
		Name:       name,
		Class:      className(name, c.ClassSuffix),
		Base:       c.BaseType,
		Table:      s.Table,
		IDName:     s.Identity,
		BindPrefix: c.BindPrefix,
		Includes:   c.Includes,
	}
	if t.Table == "" {
		t.Table = strings.ToLower(name)
	}
	if t.IDName == "" {
		t.IDName = "id" + name
	}
	msgs := mergeMessages(DefaultMessages(), s.Messages)
	for _, sf := range s.Fields {
		f := t.resolveField(c, sf, msgs)
		if f.Identity {
			t.ID = f
		}
		t.Fields = append(t.Fields, f)
	}
	t.resolveKey()
	t.resolveLastUpdate(s.LastUpdate)
	t.resolveAudit(s.Audit)
	t.resolveHydrate(s.Hydrate)
	t.resolveProcedures(s.Procedures)
	vars := map[string]string{"entity": name, "field": t.IDName}
	t.Messages = Messages{
		LoadByID:        expand(msgs.LoadByID, vars),
		LoadFromDataset: expand(msgs.LoadFromDataset, vars),
		Insert:          expand(msgs.Insert, vars),
		Update:          expand(msgs.Update, vars),
		Delete:          expand(msgs.Delete, vars),
		NotFound:        expand(msgs.NotFound, vars),
	}
	t.SetAndLoad = "Set" + methodSuffix(t.IDName) + "AndLoadDB"
	return t, nil
}

func (t *Type) resolveField(c *Config, sf *load.Field, msgs load.Messages) *Field {
	name := strings.TrimSpace(sf.Name)
	info := c.Types.Resolve(sf.Type)
	f := &Field{
		Name:        name,
		Type:        sf.Type,
		DeclType:    info.Decl,
		Default:     info.Default,
		Accessor:    info.Accessor,
		Member:      memberName(name),
		Getter:      getterName(name),
		Setter:      setterName(name),
		Validator:   validatorName(name),
		BindParam:   BindParamName(name),
		LookupParam: lookupParam(name),
		Label:       sf.Label,
		Identity:    strings.EqualFold(name, t.IDName),
		Unique:      sf.Unique,
		Unresolved:  info.Unresolved(),
	}
	f.Param = t.BindPrefix + f.BindParam
	if f.Label == "" {
		f.Label = humanize(name)
	}
	switch {
	case sf.Required != nil:
		f.Required = *sf.Required && sf.Type == field.TypeString
	default:
		f.Required = sf.Type == field.TypeString && !f.Identity
	}
	vars := map[string]string{"entity": t.Name, "field": name, "label": f.Label}
	f.RequiredMessage = expand(msgs.Required, vars)
	f.DuplicateExpr = duplicateExpr(expand(msgs.Duplicate, vars), f.Member)
	switch {
	case sf.Malformed:
		t.warnf(name, "malformed field spec %q; emitted %s placeholders", sf.Source, field.Placeholder)
	case f.Unresolved:
		t.warnf(name, "type %q has no C++ mapping; emitted %s placeholders", sf.Type, field.Placeholder)
	}
	return f
}

// resolveKey sets the field used by the identity emissions.
func (t *Type) resolveKey() {
	if t.ID != nil {
		t.Key = t.ID
		return
	}
	t.Key = &Field{
		Name:       field.Placeholder,
		Type:       field.TypeUnknown,
		DeclType:   field.Placeholder,
		Default:    field.Placeholder,
		Accessor:   field.Placeholder,
		Member:     field.Placeholder,
		BindParam:  field.Placeholder,
		Param:      t.BindPrefix + field.Placeholder,
		Identity:   true,
		Unresolved: true,
	}
	t.warnf("", "identity field %q not found; identity methods use %s placeholders", t.IDName, field.Placeholder)
}

func (t *Type) resolveLastUpdate(name string) {
	if name == "" {
		name = DefaultLastUpdate
	}
	if f := t.lookup(name); f != nil {
		t.LastUpdate = f
		return
	}
	// The default member is declared by the base class.
	if name != DefaultLastUpdate {
		t.warnf(name, "last-update member is not a field of %s; assumed inherited from %s", t.Name, t.Base)
	}
	t.LastUpdate = &Field{
		Name:     name,
		Type:     field.TypeDateTime,
		Member:   name,
		Accessor: "DateTime",
	}
}

func (t *Type) resolveAudit(a *load.Audit) {
	t.Audit = load.Audit{Member: DefaultAuditMember, Key: DefaultAuditKey}
	if a == nil {
		return
	}
	if a.Member != "" {
		t.Audit.Member = a.Member
	}
	if a.Key != "" {
		t.Audit.Key = a.Key
	}
	if t.Audit.Member != DefaultAuditMember && t.lookup(t.Audit.Member) == nil {
		t.warnf(t.Audit.Member, "audit member is not a field of %s; assumed inherited from %s", t.Name, t.Base)
	}
}

// resolveHydrate uses the explicit mapping of the schema, or maps every field
// that is not the identity, the last-update or the audit member to a key
// of the same name in pascal case.
func (t *Type) resolveHydrate(pairs []*load.Pair) {
	if len(pairs) > 0 {
		for _, p := range pairs {
			if p == nil || p.Member == "" || p.Key == "" {
				continue
			}
			if t.lookup(p.Member) == nil {
				t.warnf(p.Member, "hydrate member is not a field of %s", t.Name)
			}
			t.Hydrate = append(t.Hydrate, &load.Pair{Member: p.Member, Key: p.Key})
		}
		return
	}
	for _, f := range t.Fields {
		if f.Identity || f.Member == t.LastUpdate.Member || strings.EqualFold(f.Name, t.Audit.Member) {
			continue
		}
		t.Hydrate = append(t.Hydrate, &load.Pair{Member: f.Member, Key: pascal(f.Name)})
	}
}

func (t *Type) resolveProcedures(p *load.Procedures) {
	t.Procedures = load.Procedures{
		Insert: "Isi" + t.Name,
		Update: "Ubah" + t.Name,
		Delete: "Hapus" + t.Name,
	}
	if p == nil {
		return
	}
	if p.Insert != "" {
		t.Procedures.Insert = p.Insert
	}
	if p.Update != "" {
		t.Procedures.Update = p.Update
	}
	if p.Delete != "" {
		t.Procedures.Delete = p.Delete
	}
}

// lookup returns the field with the given name (case-insensitive).
func (t *Type) lookup(name string) *Field {
	for _, f := range t.Fields {
		if strings.EqualFold(f.Name, name) {
			return f
		}
	}
	return nil
}

func (t *Type) warnf(fieldName, format string, args ...any) {
	t.Warnings = append(t.Warnings, Warning{
		Entity:  t.Name,
		Field:   fieldName,
		Message: fmt.Sprintf(format, args...),
	})
}

func className(name, suffix string) string {
	if suffix == "" || strings.HasSuffix(name, suffix) {
		return name
	}
	return name + suffix
}

func mergeMessages(m load.Messages, o *load.Messages) load.Messages {
	if o == nil {
		return m
	}
	for _, p := range []struct{ dst *string; src string }{
		{&m.LoadByID, o.LoadByID},
		{&m.LoadFromDataset, o.LoadFromDataset},
		{&m.Insert, o.Insert},
		{&m.Update, o.Update},
		{&m.Delete, o.Delete},
		{&m.Required, o.Required},
		{&m.Duplicate, o.Duplicate},
		{&m.NotFound, o.NotFound},
	} {
		if p.src != "" {
			*p.dst = p.src
		}
	}
	return m
}

// duplicateExpr renders the duplicate message as a C++ expression in which
// {value} is replaced by the member.
func duplicateExpr(msg, member string) string {
	before, after, found := strings.Cut(msg, "{value}")
	if !found {
		return quote(msg)
	}
	expr := quote(before) + " + " + member
	if after != "" {
		expr += " + " + quote(after)
	}
	return expr
}
