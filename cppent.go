// Package cppent generates C++ entity classes from an entity name and a
// list of typed fields. It is a thin layer over compiler/gen for callers
// that work with the compact "name:type;..." form.
//
//	res, err := cppent.Generate("MSupplier", "idMSupplier:int;kodeSupplier:string")
//	if err != nil {
//		return err
//	}
//	os.WriteFile(res.Header.Name, res.Header.Bytes(), 0o644)
package cppent

import (
	"strconv"

	"github.com/syssam/cppent/compiler/gen"
	"github.com/syssam/cppent/compiler/load"
)

// Generate generates the documents of the entity whose fields are given in
// the compact form. Malformed field specs and unknown types do not fail:
// they produce placeholders and are listed in Result.Warnings.
func Generate(entity, fields string, opts ...gen.Option) (*gen.Result, error) {
	return gen.Generate(load.ParseSchema(entity, fields), opts...)
}

// GenerateAll generates every schema with one engine. Unlike a single
// Generate call it keeps going after a failing entity: the results of the
// valid schemas are returned together with an error wrapping one
// EntityError per failure.
func GenerateAll(schemas []*load.Schema, opts ...gen.Option) ([]*gen.Result, error) {
	eng, err := gen.New(opts...)
	if err != nil {
		return nil, err
	}
	var (
		results []*gen.Result
		errs    []error
	)
	for i, s := range schemas {
		res, err := eng.Generate(s)
		if err != nil {
			errs = append(errs, NewEntityError(entityName(i, s), err))
			continue
		}
		results = append(results, res)
	}
	return results, NewAggregateError(errs...)
}

func entityName(i int, s *load.Schema) string {
	if s == nil || s.Name == "" {
		return "#" + strconv.Itoa(i+1)
	}
	return s.Name
}
