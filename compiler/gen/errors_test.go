package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/cppent/compiler/load"
)

func TestSchemaError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		s := &load.Schema{Name: " MSupplier ", Pos: "supplier.yaml"}
		err := NewSchemaError(s, "field name cannot be empty").AtField(1, "kodeSupplier")
		assert.Equal(t, "cppent: supplier.yaml: entity MSupplier: field #2 kodeSupplier: field name cannot be empty", err.Error())
	})

	t.Run("Error message without schema", func(t *testing.T) {
		err := NewSchemaError(nil, "schema cannot be nil")
		assert.Equal(t, "cppent: schema cannot be nil", err.Error())
		assert.Empty(t, err.Entity)
	})

	t.Run("AtField leaves the receiver untouched", func(t *testing.T) {
		base := NewSchemaError(&load.Schema{Name: "Foo"}, "x")
		at := base.AtField(0, "")
		assert.Equal(t, 1, at.Index)
		assert.Zero(t, base.Index)
		assert.Equal(t, "cppent: entity Foo: field #1: x", at.Error())
	})

	t.Run("Is matches ErrInvalidSchema", func(t *testing.T) {
		err := NewSchemaError(nil, "x")
		assert.True(t, err.Is(ErrInvalidSchema))
		assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), ErrInvalidSchema)
	})

	t.Run("IsSchemaError helper", func(t *testing.T) {
		assert.True(t, IsSchemaError(NewSchemaError(nil, "x")))
		assert.False(t, IsSchemaError(errors.New("other")))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("BindPrefix", "a b", "bind prefix must be a plain identifier")
		assert.Equal(t, `cppent: option BindPrefix = "a b": bind prefix must be a plain identifier`, err.Error())
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("BaseType", nil, "base type cannot be empty")
		assert.Equal(t, "cppent: option BaseType: base type cannot be empty", err.Error())
	})

	t.Run("Allowed values", func(t *testing.T) {
		err := WithProfile("qt")(DefaultConfig())
		var ce *ConfigError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, []string{"std", "vcl"}, ce.Allowed)
		assert.Equal(t, `cppent: option Profile = "qt": unknown profile; use std or vcl`, err.Error())
	})

	t.Run("Is matches ErrInvalidConfig", func(t *testing.T) {
		err := NewConfigError("Library", nil, "library cannot be nil")
		assert.True(t, err.Is(ErrInvalidConfig))
		assert.False(t, err.Is(ErrInvalidSchema))
	})

	t.Run("IsConfigError helper", func(t *testing.T) {
		assert.True(t, IsConfigError(NewConfigError("Library", nil, "x")))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &GenerationError{
			Entity:   "MSupplier",
			Section:  KindFieldValidator,
			Document: "MSupplierEntity.cpp",
			Field:    "kodeSupplier",
			Cause:    errors.New("template error"),
		}
		assert.Equal(t, "cppent: rendering field-validator of field kodeSupplier in MSupplierEntity.cpp (entity MSupplier): template error", err.Error())
	})

	t.Run("Unwrap and Is", func(t *testing.T) {
		cause := errors.New("root")
		err := &GenerationError{Section: KindHydrate, Cause: cause}

		assert.Equal(t, "cppent: rendering hydrate: root", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.True(t, IsGenerationError(err))
		assert.False(t, IsGenerationError(cause))
	})
}
