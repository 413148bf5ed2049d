package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateProperty is returned when a property is added twice without override
	ErrDuplicateProperty = errors.New("property already exists")

	// ErrEmptyName is returned when a property has no name
	ErrEmptyName = errors.New("property name is empty")

	// ErrInvalidDescriptor is returned when a descriptor cannot be decoded
	ErrInvalidDescriptor = errors.New("invalid property descriptor")
)

// ValidationError collects the structural problems found in a schema
type ValidationError struct {
	Problems []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("invalid schema: %s", e.Problems[0])
	}
	return fmt.Sprintf("invalid schema:\n  - %s", strings.Join(e.Problems, "\n  - "))
}

// Validate checks the descriptors for problems that would only surface at
// read time, such as relation properties without a target.
func Validate(s *Schema) error {
	var problems []string

	for _, p := range s.All() {
		if !p.IsRelation() {
			if p.Relation != nil {
				problems = append(problems, fmt.Sprintf("%s: relation configured but type is %q", p.Name, p.Type))
			}
			continue
		}

		if p.Relation == nil {
			problems = append(problems, fmt.Sprintf("%s: relation type without relation descriptor", p.Name))
			continue
		}
		if p.Relation.Model == "" {
			problems = append(problems, fmt.Sprintf("%s: relation model is empty", p.Name))
		}
		if p.Relation.Method == "" {
			problems = append(problems, fmt.Sprintf("%s: relation method is empty", p.Name))
		}
		if p.Relation.Return != "" && p.Relation.Return != ReturnValue {
			problems = append(problems, fmt.Sprintf("%s: unsupported relation return %q", p.Name, p.Relation.Return))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
