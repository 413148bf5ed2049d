// Package validation provides reusable value validators for model properties.
// Validators can be attached to a model as validation hooks through Hook, or
// applied automatically from a property's type hint through ForType.
package validation

import (
	"fmt"
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/conduit-lang/modler/internal/orm/schema"
)

// Pre-compiled regex patterns for validators
var (
	e164Pattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
)

// Validator defines the interface for value validators
type Validator interface {
	Validate(value any) error
}

// MinValidator validates minimum values for numeric hints and string lengths
// for everything else
type MinValidator struct {
	Min       any
	FieldType string
}

// Validate implements the Validator interface
func (v *MinValidator) Validate(value any) error {
	if value == nil {
		return nil
	}

	switch strings.ToLower(v.FieldType) {
	case schema.TypeInteger, schema.TypeInt:
		intVal, err := cast.ToInt64E(value)
		if err != nil {
			return fmt.Errorf("expected integer value")
		}
		minVal, err := cast.ToInt64E(v.Min)
		if err != nil {
			return fmt.Errorf("invalid min constraint")
		}
		if intVal < minVal {
			return fmt.Errorf("must be at least %d", minVal)
		}

	case schema.TypeFloat:
		floatVal, err := cast.ToFloat64E(value)
		if err != nil {
			return fmt.Errorf("expected numeric value")
		}
		minVal, err := cast.ToFloat64E(v.Min)
		if err != nil {
			return fmt.Errorf("invalid min constraint")
		}
		if floatVal < minVal {
			return fmt.Errorf("must be at least %v", minVal)
		}

	default:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string value")
		}
		minLen, err := cast.ToInt64E(v.Min)
		if err != nil {
			return fmt.Errorf("invalid min constraint")
		}
		if int64(utf8.RuneCountInString(strVal)) < minLen {
			return fmt.Errorf("must be at least %d characters", minLen)
		}
	}

	return nil
}

// MaxValidator validates maximum values for numeric hints and string lengths
// for everything else
type MaxValidator struct {
	Max       any
	FieldType string
}

// Validate implements the Validator interface
func (v *MaxValidator) Validate(value any) error {
	if value == nil {
		return nil
	}

	switch strings.ToLower(v.FieldType) {
	case schema.TypeInteger, schema.TypeInt:
		intVal, err := cast.ToInt64E(value)
		if err != nil {
			return fmt.Errorf("expected integer value")
		}
		maxVal, err := cast.ToInt64E(v.Max)
		if err != nil {
			return fmt.Errorf("invalid max constraint")
		}
		if intVal > maxVal {
			return fmt.Errorf("must be at most %d", maxVal)
		}

	case schema.TypeFloat:
		floatVal, err := cast.ToFloat64E(value)
		if err != nil {
			return fmt.Errorf("expected numeric value")
		}
		maxVal, err := cast.ToFloat64E(v.Max)
		if err != nil {
			return fmt.Errorf("invalid max constraint")
		}
		if floatVal > maxVal {
			return fmt.Errorf("must be at most %v", maxVal)
		}

	default:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string value")
		}
		maxLen, err := cast.ToInt64E(v.Max)
		if err != nil {
			return fmt.Errorf("invalid max constraint")
		}
		if int64(utf8.RuneCountInString(strVal)) > maxLen {
			return fmt.Errorf("must be at most %d characters", maxLen)
		}
	}

	return nil
}

// PatternValidator validates string values against a regex pattern
type PatternValidator struct {
	Pattern *regexp.Regexp
}

// Validate implements the Validator interface
func (v *PatternValidator) Validate(value any) error {
	if value == nil {
		return nil
	}

	strVal, ok := value.(string)
	if !ok {
		return fmt.Errorf("pattern validation requires string value")
	}

	if !v.Pattern.MatchString(strVal) {
		return fmt.Errorf("does not match required pattern")
	}

	return nil
}

// EmailValidator validates email addresses
type EmailValidator struct{}

// Validate implements the Validator interface
func (v *EmailValidator) Validate(value any) error {
	if value == nil {
		return nil
	}

	strVal, ok := value.(string)
	if !ok {
		return fmt.Errorf("email validation requires string value")
	}

	if strings.TrimSpace(strVal) == "" {
		return fmt.Errorf("email address cannot be empty")
	}

	if _, err := mail.ParseAddress(strVal); err != nil {
		return fmt.Errorf("must be a valid email address")
	}

	return nil
}

// URLValidator validates absolute URLs
type URLValidator struct{}

// Validate implements the Validator interface
func (v *URLValidator) Validate(value any) error {
	if value == nil {
		return nil
	}

	strVal, ok := value.(string)
	if !ok {
		return fmt.Errorf("URL validation requires string value")
	}

	if strings.TrimSpace(strVal) == "" {
		return fmt.Errorf("URL cannot be empty")
	}

	parsedURL, err := url.Parse(strVal)
	if err != nil {
		return fmt.Errorf("must be a valid URL")
	}
	if parsedURL.Scheme == "" {
		return fmt.Errorf("URL must include a scheme (http, https, etc.)")
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("URL must include a host")
	}

	return nil
}

// PhoneValidator validates phone numbers in E.164 format
type PhoneValidator struct{}

// Validate implements the Validator interface
func (v *PhoneValidator) Validate(value any) error {
	if value == nil {
		return nil
	}

	strVal, ok := value.(string)
	if !ok {
		return fmt.Errorf("phone validation requires string value")
	}

	if strings.TrimSpace(strVal) == "" {
		return fmt.Errorf("phone number cannot be empty")
	}

	if !e164Pattern.MatchString(strVal) {
		return fmt.Errorf("must be a valid phone number in E.164 format (+[country code][number])")
	}

	return nil
}

// UUIDValidator validates UUID strings and accepts uuid.UUID values as is
type UUIDValidator struct{}

// Validate implements the Validator interface
func (v *UUIDValidator) Validate(value any) error {
	switch val := value.(type) {
	case nil:
		return nil
	case uuid.UUID:
		return nil
	case string:
		if _, err := uuid.Parse(val); err != nil {
			return fmt.Errorf("must be a valid UUID")
		}
		return nil
	default:
		return fmt.Errorf("UUID validation requires string value")
	}
}

// MinLengthValidator validates minimum length for arrays
type MinLengthValidator struct {
	MinLength int
}

// Validate implements the Validator interface
func (v *MinLengthValidator) Validate(value any) error {
	if value == nil {
		return nil
	}

	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return fmt.Errorf("min_length validation requires array or slice value")
	}

	if val.Len() < v.MinLength {
		return fmt.Errorf("must contain at least %d items", v.MinLength)
	}

	return nil
}

// MaxLengthValidator validates maximum length for arrays
type MaxLengthValidator struct {
	MaxLength int
}

// Validate implements the Validator interface
func (v *MaxLengthValidator) Validate(value any) error {
	if value == nil {
		return nil
	}

	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return fmt.Errorf("max_length validation requires array or slice value")
	}

	if val.Len() > v.MaxLength {
		return fmt.Errorf("must contain at most %d items", v.MaxLength)
	}

	return nil
}
