package model

import (
	"strings"

	"github.com/conduit-lang/modler/internal/orm/relationships"
	"github.com/conduit-lang/modler/internal/orm/schema"
	"github.com/conduit-lang/modler/internal/orm/validation"
)

// Model is a single record of a Definition
type Model struct {
	def        *Definition
	properties *schema.Schema
	values     map[string]any
	messages   map[string]string
}

// Definition returns the definition the model was built from
func (m *Model) Definition() *Definition {
	return m.def
}

// AddProperty declares a property on this instance only
func (m *Model) AddProperty(name string, p schema.Property, override bool) error {
	p.Name = name
	if err := m.properties.Add(p, override); err != nil {
		return &PropertyError{Op: "add", Name: name, Err: err}
	}
	return nil
}

// IsProperty reports whether name is a declared property
func (m *Model) IsProperty(name string) bool {
	return m.properties.Has(name)
}

// Property returns the descriptor for name, or nil when it is not declared
func (m *Model) Property(name string) *schema.Property {
	p, ok := m.properties.Get(name)
	if !ok {
		return nil
	}
	return &p
}

// Properties returns every descriptor in declaration order
func (m *Model) Properties() []schema.Property {
	return m.properties.All()
}

// Set writes a declared, unguarded property. Writes to guarded properties
// are silently dropped.
func (m *Model) Set(name string, value any) error {
	p, ok := m.properties.Get(name)
	if !ok {
		return &PropertyError{Op: "set", Name: name, Err: ErrUnknownProperty}
	}
	if !p.Guarded {
		m.values[name] = value
	}
	return nil
}

// Get reads a declared property. Relation properties are resolved on every
// read; other properties return their stored value or nil.
func (m *Model) Get(name string) (any, error) {
	p, ok := m.properties.Get(name)
	if !ok {
		return nil, &PropertyError{Op: "get", Name: name, Err: ErrUnknownProperty}
	}

	if p.IsRelation() {
		return m.ResolveRelation(p)
	}

	return m.values[name], nil
}

// SetValue stores a value without schema or guard checks
func (m *Model) SetValue(name string, value any) {
	m.values[name] = value
}

// Value returns a stored value, or nil when none is stored
func (m *Model) Value(name string) any {
	return m.values[name]
}

// Load copies the declared keys of data into the model in declaration order,
// passing each value through the property's loader first. Unknown keys are
// ignored. With enforceGuard, guarded properties are skipped.
func (m *Model) Load(data map[string]any, enforceGuard bool) {
	for _, p := range m.properties.All() {
		value, ok := data[p.Name]
		if !ok {
			continue
		}

		if loader, ok := m.def.loaders[p.Name]; ok && loader != nil {
			value = loader(value)
		}

		if enforceGuard && p.Guarded {
			continue
		}
		m.values[p.Name] = value
	}
}

// Verify checks required properties and runs validation hooks on every
// property with a stored value. Properties named in ignore are skipped.
// The first failure is returned.
func (m *Model) Verify(ignore ...string) error {
	skip := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		skip[name] = true
	}

	for _, p := range m.properties.All() {
		if skip[p.Name] {
			continue
		}

		value := m.values[p.Name]
		if p.Required && value == nil {
			return &PropertyError{Op: "verify", Name: p.Name, Err: ErrRequiredProperty}
		}
		if value == nil {
			continue
		}

		if hook, ok := m.def.validators[p.Name]; ok && hook != nil {
			if !hook(value) {
				return m.validationError(p.Name)
			}
		}

		if m.def.typeChecks {
			if v, ok := validation.ForType(p.Type); ok {
				if err := v.Validate(value); err != nil {
					return m.validationError(p.Name)
				}
			}
		}
	}

	return nil
}

func (m *Model) validationError(field string) error {
	msg, ok := m.messages[field]
	if !ok {
		msg = defaultMessage(field)
	}
	return &ValidationError{Field: field, Message: msg}
}

// SetMessage registers a custom Verify failure message for field
func (m *Model) SetMessage(field, message string) {
	m.messages[field] = message
}

// Message returns the custom message for field
func (m *Model) Message(field string) (string, bool) {
	msg, ok := m.messages[field]
	return msg, ok
}

// Messages returns a copy of all custom messages
func (m *Model) Messages() map[string]string {
	result := make(map[string]string, len(m.messages))
	for k, v := range m.messages {
		result[k] = v
	}
	return result
}

// ToMap returns a copy of the stored values without the excluded names
func (m *Model) ToMap(exclude ...string) map[string]any {
	result := make(map[string]any, len(m.values))
	for k, v := range m.values {
		result[k] = v
	}
	for _, name := range exclude {
		delete(result, name)
	}
	return result
}

// ResolveRelation materializes the relation described by p, passing the
// current value of the relation's local property to the target method.
func (m *Model) ResolveRelation(p schema.Property) (any, error) {
	if p.Relation == nil {
		return nil, &PropertyError{Op: "relation", Name: p.Name, Err: relationships.ErrInvalidRelation}
	}

	result, err := m.def.registry().Resolve(p.Relation, m.values[p.Relation.Local])
	if err != nil {
		return nil, &PropertyError{Op: "relation", Name: p.Name, Err: err}
	}
	return result, nil
}

// Call dispatches get<Name> accessor calls: the lower-cased remainder after
// "get" must name a declared property, otherwise nil is returned.
func (m *Model) Call(method string) any {
	if !strings.HasPrefix(method, "get") {
		return nil
	}

	name := strings.ToLower(strings.TrimPrefix(method, "get"))
	if !m.IsProperty(name) {
		return nil
	}
	return m.Value(name)
}

// Method implements relationships.Target
func (m *Model) Method(name string) (relationships.Method, bool) {
	fn, ok := m.def.methods[name]
	if !ok || fn == nil {
		return nil, false
	}
	return func(local any) any {
		return fn(m, local)
	}, true
}
