package load

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/syssam/cppent/schema/field"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		spec      string
		name      string
		typ       field.Type
		malformed bool
	}{
		{"bar:int", "bar", field.TypeInt, false},
		{" baz : String ", "baz", field.TypeString, false},
		{"at:datetime", "at", field.TypeDateTime, false},
		{"price:float", "price", field.TypeFloat, false},
		{"blob:bytes", "blob", field.TypeUnknown, false},
		{"nosep", "nosep", field.TypeUnknown, true},
		{"a:int:extra", "a", field.TypeUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			f := ParseField(tt.spec)
			assert.Equal(t, tt.name, f.Name)
			assert.Equal(t, tt.typ, f.Type)
			assert.Equal(t, tt.malformed, f.Malformed)
			assert.Equal(t, tt.spec, f.Source)
		})
	}
}

func TestParseFields(t *testing.T) {
	fields := ParseFields("id:int;name:string;;  ;broken;")
	require.Len(t, fields, 3)
	assert.Equal(t, "id:int", fields[0].String())
	assert.Equal(t, "name:string", fields[1].String())
	assert.Equal(t, "broken:unknown", fields[2].String())
	assert.True(t, fields[2].Malformed)

	assert.Empty(t, ParseFields(""))

	s := ParseSchema(" Foo ", "bar:int;baz:string")
	assert.Equal(t, "Foo", s.Name)
	require.Len(t, s.Fields, 2)
	assert.Equal(t, "bar", s.Fields[0].Name)
	assert.Equal(t, "baz", s.Fields[1].Name)
}

func TestParseHydrate(t *testing.T) {
	pairs := ParseHydrate("kodeSupplier => KodeSupplier;\nnamaSupplier=>NamaSupplier\n\ngarbage\nalamat => (Alamat); kota => Kota;")
	require.Len(t, pairs, 4)
	assert.Equal(t, &Pair{Member: "kodeSupplier", Key: "KodeSupplier"}, pairs[0])
	assert.Equal(t, &Pair{Member: "namaSupplier", Key: "NamaSupplier"}, pairs[1])
	assert.Equal(t, &Pair{Member: "alamat", Key: "Alamat"}, pairs[2])
	assert.Equal(t, &Pair{Member: "kota", Key: "Kota"}, pairs[3])

	assert.Empty(t, ParseHydrate(""))
	assert.Empty(t, ParseHydrate("a => "))
}

func TestField_Decode(t *testing.T) {
	t.Run("yaml compact and mapping forms", func(t *testing.T) {
		var fields []*Field
		require.NoError(t, yaml.Unmarshal([]byte("- id:int\n- name: kode\n  type: string\n  unique: true\n  required: false\n- oops\n"), &fields))
		require.Len(t, fields, 3)
		assert.Equal(t, "id:int", fields[0].String())
		assert.Equal(t, "kode", fields[1].Name)
		assert.True(t, fields[1].Unique)
		require.NotNil(t, fields[1].Required)
		assert.False(t, *fields[1].Required)
		assert.True(t, fields[2].Malformed)
	})

	t.Run("json compact and object forms", func(t *testing.T) {
		var fields []*Field
		require.NoError(t, json.Unmarshal([]byte(`["id:int", {"name": "price", "type": "float", "label": "Harga"}]`), &fields))
		require.Len(t, fields, 2)
		assert.Equal(t, field.TypeInt, fields[0].Type)
		assert.Equal(t, field.TypeFloat, fields[1].Type)
		assert.Equal(t, "Harga", fields[1].Label)
	})

	t.Run("json invalid field", func(t *testing.T) {
		var fields []*Field
		require.Error(t, json.Unmarshal([]byte(`[42]`), &fields))
	})
}

func TestLoad(t *testing.T) {
	t.Run("yaml file", func(t *testing.T) {
		schemas, err := LoadFile("testdata/schemas/supplier.yaml")
		require.NoError(t, err)
		require.Len(t, schemas, 1)
		s := schemas[0]
		assert.Equal(t, "MSupplier", s.Name)
		assert.Equal(t, "msupplier", s.Table)
		assert.Equal(t, "testdata/schemas/supplier.yaml", s.Pos)
		require.Len(t, s.Fields, 5)
		assert.Equal(t, "idMSupplier:int", s.Fields[0].String())
		assert.True(t, s.Fields[1].Unique)
		assert.Equal(t, field.TypeUnknown, s.Fields[3].Type)
		assert.Equal(t, field.TypeDateTime, s.Fields[4].Type)
		require.Len(t, s.Hydrate, 1)
		assert.Equal(t, "KodeSupplier", s.Hydrate[0].Key)
		require.NotNil(t, s.Messages)
		assert.Equal(t, "Failed to insert {entity} ", s.Messages.Insert)
	})

	t.Run("json file with entities", func(t *testing.T) {
		schemas, err := LoadFile("testdata/schemas/catalog.json")
		require.NoError(t, err)
		require.Len(t, schemas, 2)
		assert.Equal(t, "MBarang", schemas[0].Name)
		assert.Equal(t, "MKota", schemas[1].Name)
		assert.Equal(t, "kodeKota", schemas[1].Identity)
	})

	t.Run("directory", func(t *testing.T) {
		schemas, err := Load("testdata/schemas")
		require.NoError(t, err)
		require.Len(t, schemas, 3)
		// catalog.json sorts before supplier.yaml.
		assert.Equal(t, "MBarang", schemas[0].Name)
		assert.Equal(t, "MSupplier", schemas[2].Name)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := Load("testdata/nope")
		require.Error(t, err)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := LoadFile("testdata/schemas/notes.txt")
		require.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("\n"), 0o644))
		_, err := LoadFile(path)
		require.Error(t, err)
	})
}

func TestField_MarshalYAML(t *testing.T) {
	s := &Schema{
		Name: "MKota",
		Fields: []*Field{
			NewField("idMKota", "int"),
			{Name: "kode", Type: field.TypeString, Unique: true},
		},
	}
	buf, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(buf), "- idMKota:int\n")
	assert.Contains(t, string(buf), "unique: true")

	back, err := Decode(buf, ".yaml")
	require.NoError(t, err)
	require.Len(t, back, 1)
	require.Len(t, back[0].Fields, 2)
	assert.Equal(t, "idMKota:int", back[0].Fields[0].String())
	assert.Equal(t, field.TypeString, back[0].Fields[1].Type)
	assert.True(t, back[0].Fields[1].Unique)
}
