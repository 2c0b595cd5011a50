package gen

import (
	"github.com/syssam/cppent/compiler/load"
)

// Engine generates the C++ documents of entity schemas.
// It is immutable after construction and safe for concurrent use; batch
// parallelism is left to the caller.
//
// Example:
//
//	eng, err := gen.New(gen.WithProfile("vcl"))
//	if err != nil {
//		return err
//	}
//	res, err := eng.Generate(load.ParseSchema("MSupplier", "idMSupplier:int;kodeSupplier:string"))
type Engine struct {
	config *Config
}

// New creates an engine with the given options applied on top of the
// defaults.
func New(opts ...Option) (*Engine, error) {
	c, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	if c.Library == nil {
		c.Library = DefaultLibrary()
	}
	return &Engine{config: c}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

// Generate generates the documents of a single schema with a new engine.
func Generate(s *load.Schema, opts ...Option) (*Result, error) {
	e, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return e.Generate(s)
}

// Generate resolves the schema and renders its two documents. Sections are
// emitted in a fixed order:
//
//	header: prelude, declaration, accessors (per field), epilogue
//	source: prelude, comparison, map values, set-and-load, insert, update,
//	        delete, load-by-id, load-from-dataset, isNew, markAsNew,
//	        primaryKey, aggregate validator, field validators, hydrate
//
// Unknown types, malformed fields, a missing identity field and named
// last-update or audit members that are not fields are reported as warnings. Only a structurally invalid schema fails the call.
func (e *Engine) Generate(s *load.Schema) (*Result, error) {
	t, err := NewType(e.config, s)
	if err != nil {
		return nil, err
	}
	lib := e.config.Library
	g := &generator{t: t}

	header := &Document{Name: t.Class + HeaderExt, Header: e.config.Header}
	g.emit(header, KindHeaderPrelude, lib.HeaderPrelude)
	g.emit(header, KindDeclaration, lib.Declaration)
	g.emitFields(header, KindAccessors, lib.Accessors)
	g.emit(header, KindHeaderEpilogue, lib.HeaderEpilogue)

	source := &Document{Name: t.Class + SourceExt, Header: e.config.Header}
	g.emit(source, KindSourcePrelude, lib.SourcePrelude)
	g.emit(source, KindComparison, lib.Comparison)
	g.emit(source, KindMapValues, lib.MapValues)
	if t.ID != nil {
		g.emit(source, KindSetAndLoad, lib.SetAndLoad)
	}
	g.emit(source, KindInsert, lib.Insert)
	g.emit(source, KindUpdate, lib.Update)
	g.emit(source, KindDelete, lib.Delete)
	g.emit(source, KindLoadByID, lib.LoadByID)
	g.emit(source, KindLoadFromDataset, lib.LoadFromDataset)
	g.emit(source, KindIsNew, lib.IsNew)
	g.emit(source, KindMarkAsNew, lib.MarkAsNew)
	g.emit(source, KindPrimaryKey, lib.PrimaryKey)
	g.emit(source, KindValidate, lib.Validate)
	g.emitFields(source, KindFieldValidator, lib.FieldValidator)
	g.emit(source, KindHydrate, lib.Hydrate)
	if g.err != nil {
		return nil, g.err
	}
	return &Result{
		Entity:   t.Name,
		Class:    t.Class,
		Header:   header,
		Source:   source,
		Warnings: t.Warnings,
	}, nil
}

// generator appends rendered sections and keeps the first error.
type generator struct {
	t   *Type
	err error
}

func (g *generator) emit(d *Document, kind SectionKind, render func(*Type) (string, error)) {
	if g.err != nil {
		return
	}
	text, err := render(g.t)
	if err != nil {
		g.err = &GenerationError{Entity: g.t.Name, Section: kind, Document: d.Name, Cause: err}
		return
	}
	d.add(kind, "", text)
}

func (g *generator) emitFields(d *Document, kind SectionKind, render func(*Type, *Field) (string, error)) {
	for _, f := range g.t.Fields {
		if g.err != nil {
			return
		}
		text, err := render(g.t, f)
		if err != nil {
			g.err = &GenerationError{Entity: g.t.Name, Section: kind, Document: d.Name, Field: f.Name, Cause: err}
			return
		}
		d.add(kind, f.Name, text)
	}
}
