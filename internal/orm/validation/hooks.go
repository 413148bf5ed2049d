package validation

import (
	"github.com/conduit-lang/modler/internal/orm/schema"
)

// Hook adapts a Validator to the boolean hook shape models use. The hook
// reports false whenever the validator returns an error.
func Hook(v Validator) func(any) bool {
	return func(value any) bool {
		return v.Validate(value) == nil
	}
}

// All combines validators; the first failure wins
func All(validators ...Validator) Validator {
	return chain(validators)
}

type chain []Validator

func (c chain) Validate(value any) error {
	for _, v := range c {
		if err := v.Validate(value); err != nil {
			return err
		}
	}
	return nil
}

// ForType returns the built-in validator for a type hint. Hints without
// built-in validation report false.
func ForType(hint string) (Validator, bool) {
	switch (schema.Property{Type: hint}).Hint() {
	case schema.TypeEmail:
		return &EmailValidator{}, true
	case schema.TypeURL:
		return &URLValidator{}, true
	case schema.TypePhone:
		return &PhoneValidator{}, true
	case schema.TypeUUID:
		return &UUIDValidator{}, true
	default:
		return nil, false
	}
}
