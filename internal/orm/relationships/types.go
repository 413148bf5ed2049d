// Package relationships resolves the relation properties declared on models.
// Relation targets are looked up by name in a Registry of factories instead of
// being instantiated from a type name at runtime.
package relationships

// Method is a named operation on a relation target. It receives the current
// value of the relation's local property.
type Method func(local any) any

// Target is anything a relation can point at
type Target interface {
	Method(name string) (Method, bool)
}

// Factory builds a fresh relation target
type Factory func() Target

// MethodSet is a Target backed by a plain map of methods
type MethodSet map[string]Method

// Method implements Target
func (s MethodSet) Method(name string) (Method, bool) {
	m, ok := s[name]
	return m, ok && m != nil
}
