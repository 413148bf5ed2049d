// Package model implements schema-declared records with guarded writes,
// validation hooks, load transforms and lazy relation resolution.
//
// A Definition plays the role of a model class: it declares the properties
// and the per-property hooks once. Every Model built from it gets its own copy
// of the property table and its own values.
//
//	var Post = model.NewDefinition("Post").
//		Property(schema.Property{Name: "title", Required: true}).
//		Validator("title", validation.Hook(&validation.MinValidator{Min: 3}))
//
//	post := Post.New(map[string]any{"title": "Hello"})
//	if err := post.Verify(); err != nil { ... }
package model

import (
	"fmt"

	"github.com/conduit-lang/modler/internal/orm/relationships"
	"github.com/conduit-lang/modler/internal/orm/schema"
)

// LoadFunc transforms an incoming value before Load stores it
type LoadFunc func(value any) any

// ValidateFunc reports whether a stored value is acceptable
type ValidateFunc func(value any) bool

// MethodFunc is an operation relations can invoke on a model
type MethodFunc func(m *Model, local any) any

// Definition declares a model type
type Definition struct {
	name       string
	properties *schema.Schema
	loaders    map[string]LoadFunc
	validators map[string]ValidateFunc
	methods    map[string]MethodFunc
	relations  *relationships.Registry
	typeChecks bool
}

// NewDefinition creates an empty definition
func NewDefinition(name string) *Definition {
	props, _ := schema.New()
	return &Definition{
		name:       name,
		properties: props,
		loaders:    make(map[string]LoadFunc),
		validators: make(map[string]ValidateFunc),
		methods:    make(map[string]MethodFunc),
	}
}

// Name returns the definition name
func (d *Definition) Name() string {
	return d.name
}

// Property declares a property. Definitions are static program text, so a
// duplicate name panics.
func (d *Definition) Property(p schema.Property) *Definition {
	if err := d.properties.Add(p, false); err != nil {
		panic(fmt.Sprintf("model %s: %v", d.name, err))
	}
	return d
}

// Properties declares every property in s, in order
func (d *Definition) Properties(s *schema.Schema) *Definition {
	for _, p := range s.All() {
		d.Property(p)
	}
	return d
}

// Loader registers the load transform for a property
func (d *Definition) Loader(name string, fn LoadFunc) *Definition {
	d.loaders[name] = fn
	return d
}

// Validator registers the validation hook for a property
func (d *Definition) Validator(name string, fn ValidateFunc) *Definition {
	d.validators[name] = fn
	return d
}

// Method registers an operation callable through relations
func (d *Definition) Method(name string, fn MethodFunc) *Definition {
	d.methods[name] = fn
	return d
}

// Relations sets the registry used to resolve relation properties.
// Without one, relationships.Default is used.
func (d *Definition) Relations(r *relationships.Registry) *Definition {
	d.relations = r
	return d
}

// TypeChecks makes Verify also apply the built-in validator of each
// property's type hint (email, url, phone, uuid).
func (d *Definition) TypeChecks(enabled bool) *Definition {
	d.typeChecks = enabled
	return d
}

// Schema returns a copy of the declared properties
func (d *Definition) Schema() *schema.Schema {
	return d.properties.Clone()
}

// New builds a model and loads data into it with guards enforced
func (d *Definition) New(data map[string]any) *Model {
	m := &Model{
		def:        d,
		properties: d.properties.Clone(),
		values:     make(map[string]any),
		messages:   make(map[string]string),
	}
	if len(data) > 0 {
		m.Load(data, true)
	}
	return m
}

// Factory returns a relation factory producing empty models
func (d *Definition) Factory() relationships.Factory {
	return func() relationships.Target {
		return d.New(nil)
	}
}

// Register adds the definition to r under its name
func (d *Definition) Register(r *relationships.Registry) error {
	return r.Register(d.name, d.Factory())
}

func (d *Definition) registry() *relationships.Registry {
	if d.relations != nil {
		return d.relations
	}
	return relationships.Default
}
