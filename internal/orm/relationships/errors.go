package relationships

import "errors"

var (
	// ErrUnknownModel is returned when a relation names an unregistered model
	ErrUnknownModel = errors.New("model does not exist")

	// ErrUnknownMethod is returned when the relation target lacks the named method
	ErrUnknownMethod = errors.New("method does not exist")

	// ErrAlreadyRegistered is returned when a model name is registered twice
	ErrAlreadyRegistered = errors.New("model is already registered")

	// ErrInvalidRelation is returned when a relation descriptor is missing
	ErrInvalidRelation = errors.New("invalid relation")
)
