package gen

import (
	"bytes"
	"strings"
)

// SectionKind identifies the artifact a section was rendered from.
type SectionKind string

// Section kinds in emission order.
const (
	KindHeaderPrelude   SectionKind = "header-prelude"
	KindDeclaration     SectionKind = "declaration"
	KindAccessors       SectionKind = "accessors"
	KindHeaderEpilogue  SectionKind = "header-epilogue"
	KindSourcePrelude   SectionKind = "source-prelude"
	KindComparison      SectionKind = "comparison"
	KindMapValues       SectionKind = "map-values"
	KindSetAndLoad      SectionKind = "set-and-load"
	KindInsert          SectionKind = "insert"
	KindUpdate          SectionKind = "update"
	KindDelete          SectionKind = "delete"
	KindLoadByID        SectionKind = "load-by-id"
	KindLoadFromDataset SectionKind = "load-from-dataset"
	KindIsNew           SectionKind = "is-new"
	KindMarkAsNew       SectionKind = "mark-as-new"
	KindPrimaryKey      SectionKind = "primary-key"
	KindValidate        SectionKind = "validate"
	KindFieldValidator  SectionKind = "field-validator"
	KindHydrate         SectionKind = "hydrate"
)

// delimited reports whether the section is a method body that is followed
// by the Delimiter line. Preludes and epilogues are not.
func (k SectionKind) delimited() bool {
	switch k {
	case KindHeaderPrelude, KindHeaderEpilogue, KindSourcePrelude:
		return false
	default:
		return true
	}
}

// Section is one rendered text block of a document.
type Section struct {
	Kind SectionKind
	// Field is set for the per-field sections.
	Field string
	Text  string
}

// Document extensions.
const (
	HeaderExt = ".h"
	SourceExt = ".cpp"
)

// Document is one generated output file.
type Document struct {
	// Name is the file name, e.g. "MSupplierEntity.h".
	Name string
	// Header is an optional comment written before the first section.
	Header   string
	Sections []Section
}

// Bytes renders the document. Consecutive method sections are separated by
// the Delimiter line followed by a blank line.
func (d *Document) Bytes() []byte {
	var b bytes.Buffer
	if d.Header != "" {
		b.WriteString(commentBlock(d.Header))
		b.WriteByte('\n')
	}
	for i, s := range d.Sections {
		if i > 0 {
			if prev := d.Sections[i-1]; prev.Kind.delimited() && s.Kind.delimited() {
				b.WriteString(Delimiter)
				b.WriteByte('\n')
			}
			b.WriteByte('\n')
		}
		b.WriteString(s.Text)
	}
	return b.Bytes()
}

// String implements fmt.Stringer.
func (d *Document) String() string {
	return string(d.Bytes())
}

// Find returns the sections of the given kind.
func (d *Document) Find(kind SectionKind) []Section {
	var sections []Section
	for _, s := range d.Sections {
		if s.Kind == kind {
			sections = append(sections, s)
		}
	}
	return sections
}

func (d *Document) add(kind SectionKind, fieldName, text string) {
	d.Sections = append(d.Sections, Section{Kind: kind, Field: fieldName, Text: text})
}

// commentBlock turns free text into a line comment block. Lines that already
// are comments are kept as they are.
func commentBlock(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(strings.TrimSpace(line), "//"):
			b.WriteString(line)
		case strings.TrimSpace(line) == "":
			b.WriteString("//")
		default:
			b.WriteString("// " + line)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Warning reports a placeholder emitted for an incomplete schema.
type Warning struct {
	Entity  string
	Field   string
	Message string
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	if w.Field != "" {
		return w.Entity + "." + w.Field + ": " + w.Message
	}
	return w.Entity + ": " + w.Message
}

// Result holds the documents generated for one entity.
type Result struct {
	// Entity is the schema name and Class the generated class name.
	Entity string
	Class  string
	// Header is the declaration document (<Class>.h) and Source the
	// implementation document (<Class>.cpp).
	Header *Document
	Source *Document
	// Warnings lists the placeholders emitted for the entity.
	Warnings []Warning
}

// Documents returns the documents in write order.
func (r *Result) Documents() []*Document {
	return []*Document{r.Header, r.Source}
}
