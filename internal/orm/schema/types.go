// Package schema provides the property descriptors used by modler models.
// A descriptor declares how a single named property behaves: whether it is
// required, whether external writes are guarded, what kind of value it holds
// and, for relations, how the related object is materialized.
package schema

import (
	"strings"
)

// Type hints recognised by the toolkit. Any other string is accepted and kept
// verbatim; it simply carries no built-in behaviour.
const (
	TypeString   = "string"
	TypeText     = "text"
	TypeInteger  = "integer"
	TypeInt      = "int"
	TypeFloat    = "float"
	TypeBool     = "bool"
	TypeEmail    = "email"
	TypeURL      = "url"
	TypePhone    = "phone"
	TypeUUID     = "uuid"
	TypeRelation = "relation"
)

// ReturnValue is the Relation.Return setting that makes a relation read yield
// the method result instead of the related instance.
const ReturnValue = "value"

// Property describes a single declared property of a model
type Property struct {
	Name        string    `mapstructure:"-"`
	Description string    `mapstructure:"description"`
	Type        string    `mapstructure:"type"`
	Required    bool      `mapstructure:"required"`
	Guarded     bool      `mapstructure:"guarded"`
	Relation    *Relation `mapstructure:"relation"`
}

// IsRelation reports whether reads of the property resolve a relation
func (p Property) IsRelation() bool {
	return strings.EqualFold(p.Type, TypeRelation)
}

// Hint returns the normalized type hint
func (p Property) Hint() string {
	return strings.ToLower(strings.TrimSpace(p.Type))
}

// Relation describes how to materialize a related object: build an instance
// of Model, call Method with the current value of Local and return either the
// instance or, when Return is "value", the method result.
type Relation struct {
	Model  string `mapstructure:"model"`
	Method string `mapstructure:"method"`
	Local  string `mapstructure:"local"`
	Return string `mapstructure:"return"`
}

// ReturnsValue reports whether the relation yields the method result
func (r *Relation) ReturnsValue() bool {
	return r != nil && r.Return == ReturnValue
}

// clone returns a deep copy so descriptors can be handed out without
// exposing the table's own relation pointer.
func (p Property) clone() Property {
	if p.Relation != nil {
		rel := *p.Relation
		p.Relation = &rel
	}
	return p
}
