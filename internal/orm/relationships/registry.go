package relationships

import (
	"fmt"
	"sort"
	"sync"

	"github.com/conduit-lang/modler/internal/orm/schema"
)

// Default is the registry used by models that were not given one
var Default = NewRegistry()

// Registry maps model names to factories
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under name
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" || factory == nil {
		return fmt.Errorf("%w: name and factory are required", ErrInvalidRelation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	r.factories[name] = factory
	return nil
}

// MustRegister is Register for package initialization; it panics on error
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// Lookup returns the factory registered under name
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[name]
	return f, ok
}

// Exists reports whether name is registered
func (r *Registry) Exists(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered models
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// Resolve materializes a relation: it builds the target named by rel.Model,
// calls rel.Method with local and returns the method result when the
// relation asks for the value, otherwise the target itself.
func (r *Registry) Resolve(rel *schema.Relation, local any) (any, error) {
	if rel == nil {
		return nil, fmt.Errorf("%w: no relation descriptor", ErrInvalidRelation)
	}

	factory, ok := r.Lookup(rel.Model)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, rel.Model)
	}

	instance := factory()
	if instance == nil {
		return nil, fmt.Errorf("%w: factory for %q returned nil", ErrUnknownModel, rel.Model)
	}

	method, ok := instance.Method(rel.Method)
	if !ok {
		return nil, fmt.Errorf("%w: %q on model %s", ErrUnknownMethod, rel.Method, rel.Model)
	}

	result := method(local)
	if rel.ReturnsValue() {
		return result, nil
	}
	return instance, nil
}
