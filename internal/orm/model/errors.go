package model

import (
	"errors"
	"fmt"

	"github.com/conduit-lang/modler/internal/orm/relationships"
	"github.com/conduit-lang/modler/internal/orm/schema"
)

var (
	// ErrUnknownProperty is returned when reading or writing an undeclared property
	ErrUnknownProperty = errors.New("property not found")

	// ErrDuplicateProperty is returned when a property is added twice without override
	ErrDuplicateProperty = schema.ErrDuplicateProperty

	// ErrRequiredProperty is returned by Verify when a required property has no value
	ErrRequiredProperty = errors.New("property is required")

	// ErrValidation is returned by Verify when a validation hook rejects a value
	ErrValidation = errors.New("invalid property value")

	// ErrUnknownModel is returned when a relation names an unregistered model
	ErrUnknownModel = relationships.ErrUnknownModel

	// ErrUnknownMethod is returned when a relation target lacks the named method
	ErrUnknownMethod = relationships.ErrUnknownMethod
)

// PropertyError records the operation and property that failed
type PropertyError struct {
	Op   string
	Name string
	Err  error
}

// Error implements the error interface
func (e *PropertyError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
}

// Unwrap returns the underlying error
func (e *PropertyError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when a validation hook rejects a stored value
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrValidation) match
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// defaultMessage is used when no custom message is registered for a field
func defaultMessage(field string) string {
	return fmt.Sprintf("Invalid value for property %q!", field)
}

// IsUnknownProperty returns true if the error is ErrUnknownProperty
func IsUnknownProperty(err error) bool {
	return errors.Is(err, ErrUnknownProperty)
}

// IsRequired returns true if the error is ErrRequiredProperty
func IsRequired(err error) bool {
	return errors.Is(err, ErrRequiredProperty)
}

// IsValidation returns true if the error is a validation failure
func IsValidation(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
