package gen

// =============================================================================
// Interface Segregation: the template library is split by artifact family
// =============================================================================

// DeclarationTemplates render the header document of an entity.
type DeclarationTemplates interface {
	// HeaderPrelude renders the include guard and the base include.
	HeaderPrelude(t *Type) (string, error)
	// Declaration renders the class: members, constructor and prototypes.
	Declaration(t *Type) (string, error)
	// Accessors renders the getter/setter pair of one field.
	Accessors(t *Type, f *Field) (string, error)
	// HeaderEpilogue closes the include guard.
	HeaderEpilogue(t *Type) (string, error)
}

// PersistenceTemplates render the CRUD and identity methods.
type PersistenceTemplates interface {
	// SourcePrelude renders the includes of the implementation document.
	SourcePrelude(t *Type) (string, error)
	// Comparison renders the operator== pair.
	Comparison(t *Type) (string, error)
	// MapValues renders getAllMapValue.
	MapValues(t *Type) (string, error)
	// SetAndLoad renders Set<Id>AndLoadDB. Only called when t.ID is set.
	SetAndLoad(t *Type) (string, error)
	// Insert renders tambahRecord.
	Insert(t *Type) (string, error)
	// Update renders editRecord.
	Update(t *Type) (string, error)
	// Delete renders deleteRecord.
	Delete(t *Type) (string, error)
	// LoadByID renders loadById.
	LoadByID(t *Type) (string, error)
	// LoadFromDataset renders loadDataFromDataset.
	LoadFromDataset(t *Type) (string, error)
	// IsNew renders isNew.
	IsNew(t *Type) (string, error)
	// MarkAsNew renders markAsNew.
	MarkAsNew(t *Type) (string, error)
	// PrimaryKey renders primaryKey.
	PrimaryKey(t *Type) (string, error)
}

// ValidationTemplates render the validators.
type ValidationTemplates interface {
	// Validate renders the aggregate validator isValidToPersist.
	Validate(t *Type) (string, error)
	// FieldValidator renders the validator of one field.
	FieldValidator(t *Type, f *Field) (string, error)
}

// HydrationTemplates render the JSON hydration.
type HydrationTemplates interface {
	// Hydrate renders hydrate.
	Hydrate(t *Type) (string, error)
}

// TemplateLibrary defines the full set of emission templates.
// Every method is a pure function of its arguments: the same resolved input
// yields the same text.
//
// The built-in implementation is *Library, backed by text/template. A custom
// library can embed *Library and override single artifacts:
//
//	type library struct{ *gen.Library }
//
//	func (library) Hydrate(t *gen.Type) (string, error) { ... }
//
//	eng, err := gen.New(gen.WithLibrary(library{gen.DefaultLibrary()}))
type TemplateLibrary interface {
	DeclarationTemplates
	PersistenceTemplates
	ValidationTemplates
	HydrationTemplates
}
