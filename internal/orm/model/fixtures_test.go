package model

import (
	"github.com/spf13/cast"

	"github.com/conduit-lang/modler/internal/orm/relationships"
	"github.com/conduit-lang/modler/internal/orm/schema"
)

// newFixtures returns the definitions used across the model tests: a record
// with plain, required, guarded and relation properties, and the model its
// relations point at.
func newFixtures() (*Definition, *Definition) {
	registry := relationships.NewRegistry()

	other := NewDefinition("OtherModel").
		Property(schema.Property{Name: "test", Description: "Test Property"}).
		Method("callMeMaybe", func(m *Model, local any) any {
			m.SetValue("test", "foobarbaz - "+cast.ToString(local))
			return nil
		}).
		Method("callMeReturnValue", func(m *Model, local any) any {
			return "this is a value: " + cast.ToString(local)
		})
	registry.MustRegister(other.Name(), other.Factory())

	test := NewDefinition("TestModel").
		Relations(registry).
		Property(schema.Property{Name: "id", Description: "ID", Type: schema.TypeInteger}).
		Property(schema.Property{Name: "test", Description: "Test Property"}).
		Property(schema.Property{Name: "imRequired", Description: "Required Property #1", Required: true}).
		Property(schema.Property{
			Name: "relateToMe",
			Type: schema.TypeRelation,
			Relation: &schema.Relation{
				Model:  "OtherModel",
				Method: "callMeMaybe",
				Local:  "test",
			},
		}).
		Property(schema.Property{
			Name: "relateToMeValue",
			Type: schema.TypeRelation,
			Relation: &schema.Relation{
				Model:  "OtherModel",
				Method: "callMeReturnValue",
				Local:  "test",
				Return: schema.ReturnValue,
			},
		}).
		Property(schema.Property{
			Name: "badModel",
			Type: schema.TypeRelation,
			Relation: &schema.Relation{
				Model:  "Foo",
				Method: "badMethod",
				Local:  "badProperty",
			},
		}).
		Property(schema.Property{
			Name: "badMethod",
			Type: schema.TypeRelation,
			Relation: &schema.Relation{
				Model:  "OtherModel",
				Method: "badMethod",
				Local:  "badProperty",
			},
		}).
		Property(schema.Property{Name: "testValidate", Type: schema.TypeString, Description: "Checking for validation method"}).
		Property(schema.Property{Name: "guarded", Type: schema.TypeString, Guarded: true}).
		Validator("testValidate", func(value any) bool {
			return value == "test1234"
		})

	return test, other
}
