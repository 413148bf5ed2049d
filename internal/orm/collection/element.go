package collection

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// PropertyReader is implemented by schema-aware items such as models
type PropertyReader interface {
	IsProperty(name string) bool
	Get(name string) (any, error)
}

// Kind classifies collection items for property extraction
type Kind int

const (
	// KindScalar items are compared as a whole
	KindScalar Kind = iota
	// KindModel items expose their properties through PropertyReader
	KindModel
	// KindRecord items are string-keyed maps or structs
	KindRecord
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindRecord:
		return "record"
	default:
		return "scalar"
	}
}

// KindOf classifies item
func KindOf(item any) Kind {
	if _, ok := item.(PropertyReader); ok {
		return KindModel
	}

	v := reflect.ValueOf(item)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			return KindRecord
		}
	case reflect.Struct:
		return KindRecord
	}
	return KindScalar
}

// field extracts the named property from item. Models answer through their
// schema, records by key, scalars are returned whole.
func field(item any, name string) (any, bool) {
	switch KindOf(item) {
	case KindModel:
		m := item.(PropertyReader)
		if !m.IsProperty(name) {
			return nil, false
		}
		v, err := m.Get(name)
		if err != nil {
			return nil, false
		}
		return v, true

	case KindRecord:
		return recordField(item, name)

	default:
		return item, true
	}
}

func recordField(item any, name string) (any, bool) {
	if m, ok := item.(map[string]any); ok {
		v, found := m[name]
		return v, found
	}

	v := reflect.ValueOf(item)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	if v.Kind() == reflect.Map {
		entry := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if !entry.IsValid() {
			return nil, false
		}
		return entry.Interface(), true
	}

	var fields map[string]any
	if err := mapstructure.Decode(v.Interface(), &fields); err != nil {
		return nil, false
	}

	if val, ok := fields[name]; ok {
		return val, true
	}
	for key, val := range fields {
		if strings.EqualFold(key, name) {
			return val, true
		}
	}
	return nil, false
}
