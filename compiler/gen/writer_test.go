package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/syssam/cppent/compiler/load"
)

func generateAll(t *testing.T, schemas ...*load.Schema) []*Result {
	t.Helper()
	eng, err := New()
	require.NoError(t, err)
	results := make([]*Result, len(schemas))
	for i, s := range schemas {
		results[i], err = eng.Generate(s)
		require.NoError(t, err)
	}
	return results
}

func TestWriter_Write(t *testing.T) {
	results := generateAll(t,
		MSupplierSchema(),
		load.ParseSchema("MKota", "idMKota:int;nama:string"),
	)
	dir := filepath.Join(t.TempDir(), "out")
	w := NewWriter(dir).WithWorkers(2)

	paths, err := w.Write(context.Background(), results...)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "MKotaEntity.h"),
		filepath.Join(dir, "MKotaEntity.cpp"),
		filepath.Join(dir, "MSupplierEntity.h"),
		filepath.Join(dir, "MSupplierEntity.cpp"),
	}, paths)

	buf, err := os.ReadFile(filepath.Join(dir, "MSupplierEntity.cpp"))
	require.NoError(t, err)
	assert.Equal(t, results[0].Source.Bytes(), buf)

	m := w.Metrics()
	assert.Equal(t, 4, m.FilesWritten)
	assert.Positive(t, m.TotalBytes)
}

func TestWriter_Errors(t *testing.T) {
	results := generateAll(t, load.ParseSchema("Foo", "idFoo:int"))

	t.Run("missing output", func(t *testing.T) {
		_, err := NewWriter("").Write(context.Background(), results...)
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewWriter(t.TempDir()).Write(ctx, results...)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("output is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		_, err := NewWriter(file).Write(context.Background(), results...)
		require.Error(t, err)
	})
}

func TestArchive(t *testing.T) {
	results := generateAll(t,
		load.ParseSchema("Foo", "idFoo:int;name:string"),
		load.ParseSchema("Bar", "idBar:int"),
	)
	a := Archive(results...)
	require.Len(t, a.Files, 4)
	assert.Equal(t, "BarEntity.h", a.Files[0].Name)
	assert.Equal(t, "BarEntity.cpp", a.Files[1].Name)
	assert.Equal(t, "FooEntity.h", a.Files[2].Name)

	parsed := txtar.Parse(txtar.Format(a))
	require.Len(t, parsed.Files, 4)
	for i, f := range parsed.Files {
		assert.Equal(t, a.Files[i].Name, f.Name)
		assert.Equal(t, string(a.Files[i].Data), string(f.Data))
	}
	assert.Equal(t, results[0].Header.Bytes(), parsed.Files[2].Data)
	assert.Empty(t, Archive().Files)
}
