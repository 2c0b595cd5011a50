// Package gen generates C++ entity classes from cppent schemas.
//
// The generation pipeline follows this flow:
//
//	load.Schema (name + ordered fields + per-entity configuration)
//	        ↓
//	   NewType (single resolution pass: type table + naming rules)
//	        ↓
//	   TemplateLibrary (one template per artifact)
//	        ↓
//	   Result{Header: <Class>.h, Source: <Class>.cpp}
//
// # Key Types
//
//   - Type: a resolved entity, the data every template runs on
//   - Field: a resolved field (declaration type, default, accessor and names)
//   - TemplateLibrary: the emission templates, split into DeclarationTemplates,
//     PersistenceTemplates, ValidationTemplates and HydrationTemplates
//   - Library: the built-in text/template implementation
//   - Engine: resolves a schema and assembles its documents
//   - Writer: writes documents to disk in parallel
//
// # Soft Failures
//
// Unknown field types, malformed field specs and a missing identity field
// never fail generation. They produce the field.Placeholder token ("TBD")
// in the output and a Warning in the Result. Generation fails only on a
// structurally invalid schema (empty name, no fields, empty or duplicate
// field names), reported as a *SchemaError.
//
// # Example
//
//	res, err := gen.Generate(load.ParseSchema("Foo", "idFoo:int;bar:string"))
//	if err != nil {
//		return err
//	}
//	for _, w := range res.Warnings {
//		log.Println(w)
//	}
//	_, err = gen.NewWriter("out").Write(ctx, res)
package gen
