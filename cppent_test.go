package cppent_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/cppent"
	"github.com/syssam/cppent/compiler/gen"
	"github.com/syssam/cppent/compiler/load"
)

func TestGenerate(t *testing.T) {
	res, err := cppent.Generate("MKota", "idMKota:int;nama:string;broken", gen.WithProfile("vcl"))
	require.NoError(t, err)
	assert.Equal(t, "MKotaEntity", res.Class)
	assert.Equal(t, "MKotaEntity.h", res.Header.Name)
	assert.Equal(t, "MKotaEntity.cpp", res.Source.Name)
	assert.Contains(t, res.Header.String(), "AnsiString nama;")
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "broken", res.Warnings[0].Field)

	_, err = cppent.Generate("", "id:int")
	require.Error(t, err)
	assert.True(t, gen.IsSchemaError(err))
}

func TestGenerateAll(t *testing.T) {
	bad := &load.Schema{Name: "Empty", Pos: "empty.yaml"}
	results, err := cppent.GenerateAll([]*load.Schema{
		load.ParseSchema("MKota", "idMKota:int"),
		bad,
		nil,
		gen.MSupplierSchema(),
	})
	require.Error(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "MKota", results[0].Entity)
	assert.Equal(t, "MSupplier", results[1].Entity)

	var agg *cppent.AggregateError
	require.ErrorAs(t, err, &agg)
	require.Len(t, agg.Errors, 2)
	var ee *cppent.EntityError
	require.ErrorAs(t, agg.Errors[0], &ee)
	assert.Equal(t, "Empty", ee.Entity)
	assert.True(t, strings.Contains(ee.Err.Error(), "empty.yaml: entity Empty"))
	assert.True(t, strings.Contains(agg.Errors[1].Error(), "entity #3"))
	assert.True(t, gen.IsSchemaError(err))

	_, err = cppent.GenerateAll(nil, gen.WithBaseType(""))
	assert.True(t, gen.IsConfigError(err))
}
