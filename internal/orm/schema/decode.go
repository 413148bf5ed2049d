package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// Decode builds a Property from a descriptor map of the form
//
//	{description, type, required, guarded, relation: {model, method, local, return}}
//
// Scalar fields are weakly typed so "true" and 1 are accepted as booleans.
func Decode(name string, raw map[string]any) (Property, error) {
	var p Property

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Property{}, err
	}

	if err := decoder.Decode(raw); err != nil {
		return Property{}, fmt.Errorf("%w %q: %v", ErrInvalidDescriptor, name, err)
	}

	p.Name = name
	return p, nil
}

// DecodeAll decodes a name -> descriptor map into a Schema. Maps carry no
// order, so properties are added sorted by name.
func DecodeAll(raw map[string]any) (*Schema, error) {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	s, _ := New()
	for _, name := range names {
		descriptor, ok := raw[name].(map[string]any)
		if !ok {
			if raw[name] != nil {
				return nil, fmt.Errorf("%w %q: expected a map, got %T", ErrInvalidDescriptor, name, raw[name])
			}
			descriptor = map[string]any{}
		}

		p, err := Decode(name, descriptor)
		if err != nil {
			return nil, err
		}
		if err := s.Add(p, false); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// schemaFile is the on-disk layout of a schema definition
type schemaFile struct {
	Name       string         `yaml:"name" json:"name"`
	Properties map[string]any `yaml:"properties" json:"properties"`
}

// LoadFile reads a YAML or JSON schema definition with a top-level
// properties map. The file name extension selects the format.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var file schemaFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &file)
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("unsupported schema file extension: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema file %s: %w", path, err)
	}

	return DecodeAll(file.Properties)
}
