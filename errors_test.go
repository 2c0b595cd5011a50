package cppent_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/cppent"
	"github.com/syssam/cppent/compiler/gen"
	"github.com/syssam/cppent/compiler/load"
)

func TestEntityError(t *testing.T) {
	cause := gen.NewSchemaError(&load.Schema{Name: "Foo"}, "entity must have at least one field")
	err := cppent.NewEntityError("Foo", cause)
	assert.Equal(t, "cppent: entity Foo: "+cause.Error(), err.Error())
	assert.True(t, errors.Is(err, gen.ErrInvalidSchema))
	assert.True(t, gen.IsSchemaError(err))

	var ee *cppent.EntityError
	require.ErrorAs(t, fmt.Errorf("wrapper: %w", err), &ee)
	assert.Equal(t, "Foo", ee.Entity)
}

func TestAggregateError(t *testing.T) {
	t.Run("NoErrors", func(t *testing.T) {
		err := cppent.NewAggregateError()
		assert.Nil(t, err)
	})

	t.Run("NilErrors", func(t *testing.T) {
		err := cppent.NewAggregateError(nil, nil, nil)
		assert.Nil(t, err)
	})

	t.Run("SingleError", func(t *testing.T) {
		single := errors.New("single error")
		err := cppent.NewAggregateError(single)
		assert.Equal(t, single, err)
	})

	t.Run("MultipleErrors", func(t *testing.T) {
		err1 := errors.New("error 1")
		err2 := errors.New("error 2")
		err := cppent.NewAggregateError(err1, err2)

		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "multiple errors")
		assert.Contains(t, err.Error(), "error 1")
		assert.Contains(t, err.Error(), "error 2")
		assert.ErrorIs(t, err, err2)
	})

	t.Run("MixedNilAndErrors", func(t *testing.T) {
		err1 := errors.New("error 1")
		err := cppent.NewAggregateError(nil, err1, nil)

		require.NotNil(t, err)
		assert.Equal(t, err1, err) // Single non-nil error returned directly
	})
}

func BenchmarkErrors(b *testing.B) {
	b.Run("NewAggregateError_multiple", func(b *testing.B) {
		err1 := errors.New("err1")
		err2 := errors.New("err2")
		err3 := errors.New("err3")
		for b.Loop() {
			_ = cppent.NewAggregateError(err1, err2, err3)
		}
	})
}
