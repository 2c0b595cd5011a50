package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for schema files that are not YAML or JSON.
var ErrUnsupportedFormat = errors.New("load: unsupported schema format")

// document is the file layout. A file holds either one entity at the top
// level or a list of entities under "entities".
type document struct {
	Entities []*Schema `json:"entities,omitempty" yaml:"entities,omitempty"`
}

// Extensions lists the file extensions recognized by Load.
var Extensions = []string{".yaml", ".yml", ".json"}

// Load reads the schemas from the given files and directories. Directories
// are scanned (non-recursively) for files with one of the Extensions, in
// lexical order.
func Load(paths ...string) ([]*Schema, error) {
	files, err := Files(paths...)
	if err != nil {
		return nil, err
	}
	var schemas []*Schema
	for _, path := range files {
		s, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s...)
	}
	return schemas, nil
}

// Files expands the given paths into the list of schema files.
func Files(paths ...string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("load: read dir %s: %w", path, err)
		}
		var found []string
		for _, e := range entries {
			if e.Type()&fs.ModeType == 0 && Supported(e.Name()) {
				found = append(found, filepath.Join(path, e.Name()))
			}
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}

// LoadFile reads the schemas of one file.
func LoadFile(path string) ([]*Schema, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	schemas, err := Decode(buf, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("load: %s: %w", path, err)
	}
	for _, s := range schemas {
		s.Pos = path
	}
	return schemas, nil
}

// Decode decodes the schemas held in buf. The format is selected by the
// file extension (".yaml", ".yml" or ".json").
func Decode(buf []byte, ext string) ([]*Schema, error) {
	unmarshal, err := decoder(ext)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(buf)) == 0 {
		return nil, errors.New("empty schema file")
	}
	var doc document
	if err := unmarshal(buf, &doc); err != nil {
		return nil, err
	}
	if len(doc.Entities) > 0 {
		return doc.Entities, nil
	}
	var s Schema
	if err := unmarshal(buf, &s); err != nil {
		return nil, err
	}
	return []*Schema{&s}, nil
}

func decoder(ext string) (func([]byte, any) error, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Unmarshal, nil
	case ".json":
		return json.Unmarshal, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Supported reports whether name has one of the Extensions.
func Supported(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}
