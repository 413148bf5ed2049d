package schema

import (
	"fmt"
)

// Schema is an ordered table of property descriptors. Order is the order in
// which properties were first added; overriding a property keeps its slot.
type Schema struct {
	names []string
	props map[string]Property
}

// New creates a schema holding the given properties
func New(props ...Property) (*Schema, error) {
	s := &Schema{
		props: make(map[string]Property, len(props)),
	}
	for _, p := range props {
		if err := s.Add(p, false); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add registers a property. Re-adding an existing name fails with
// ErrDuplicateProperty unless override is set.
func (s *Schema) Add(p Property, override bool) error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if s.props == nil {
		s.props = make(map[string]Property)
	}

	if _, exists := s.props[p.Name]; exists {
		if !override {
			return fmt.Errorf("%w: %q", ErrDuplicateProperty, p.Name)
		}
	} else {
		s.names = append(s.names, p.Name)
	}

	s.props[p.Name] = p.clone()
	return nil
}

// Get returns the descriptor for name
func (s *Schema) Get(name string) (Property, bool) {
	if s == nil {
		return Property{}, false
	}
	p, ok := s.props[name]
	if !ok {
		return Property{}, false
	}
	return p.clone(), true
}

// Has reports whether name is declared
func (s *Schema) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.props[name]
	return ok
}

// Names returns the declared property names in order
func (s *Schema) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// All returns copies of every descriptor in order
func (s *Schema) All() []Property {
	if s == nil {
		return nil
	}
	result := make([]Property, 0, len(s.names))
	for _, name := range s.names {
		result = append(result, s.props[name].clone())
	}
	return result
}

// Len returns the number of declared properties
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Clone returns an independent copy of the schema
func (s *Schema) Clone() *Schema {
	c := &Schema{
		props: make(map[string]Property, s.Len()),
	}
	if s == nil {
		return c
	}
	c.names = s.Names()
	for name, p := range s.props {
		c.props[name] = p.clone()
	}
	return c
}
