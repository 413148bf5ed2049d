package schema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyIsRelation(t *testing.T) {
	tests := []struct {
		typ  string
		want bool
	}{
		{"relation", true},
		{"Relation", true},
		{"RELATION", true},
		{"string", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			p := Property{Name: "p", Type: tt.typ}
			assert.Equal(t, tt.want, p.IsRelation())
		})
	}
}

func TestRelationReturnsValue(t *testing.T) {
	var nilRel *Relation
	assert.False(t, nilRel.ReturnsValue())
	assert.False(t, (&Relation{Model: "Other", Method: "m"}).ReturnsValue())
	assert.True(t, (&Relation{Model: "Other", Method: "m", Return: "value"}).ReturnsValue())
}

func TestSchema(t *testing.T) {
	t.Run("add and get", func(t *testing.T) {
		s, err := New(
			Property{Name: "id", Type: TypeInteger},
			Property{Name: "test", Description: "Test Property"},
		)
		require.NoError(t, err)

		p, ok := s.Get("test")
		require.True(t, ok)
		assert.Equal(t, "Test Property", p.Description)
		assert.True(t, s.Has("id"))
		assert.False(t, s.Has("missing"))
		assert.Equal(t, []string{"id", "test"}, s.Names())
		assert.Equal(t, 2, s.Len())
	})

	t.Run("duplicate without override", func(t *testing.T) {
		s, err := New(Property{Name: "test"})
		require.NoError(t, err)

		err = s.Add(Property{Name: "test", Description: "duplicate"}, false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateProperty))
	})

	t.Run("override keeps position", func(t *testing.T) {
		s, err := New(Property{Name: "a"}, Property{Name: "b"})
		require.NoError(t, err)

		require.NoError(t, s.Add(Property{Name: "a", Description: "replaced"}, true))

		p, _ := s.Get("a")
		assert.Equal(t, "replaced", p.Description)
		assert.Equal(t, []string{"a", "b"}, s.Names())
	})

	t.Run("empty name", func(t *testing.T) {
		s, _ := New()
		assert.ErrorIs(t, s.Add(Property{}, false), ErrEmptyName)
	})

	t.Run("clone is independent", func(t *testing.T) {
		s, _ := New(Property{Name: "rel", Type: TypeRelation, Relation: &Relation{Model: "Other", Method: "m"}})
		c := s.Clone()

		require.NoError(t, c.Add(Property{Name: "extra"}, false))
		assert.False(t, s.Has("extra"))

		p, _ := c.Get("rel")
		p.Relation.Method = "changed"
		orig, _ := s.Get("rel")
		assert.Equal(t, "m", orig.Relation.Method)
	})

	t.Run("nil schema", func(t *testing.T) {
		var s *Schema
		assert.False(t, s.Has("x"))
		assert.Equal(t, 0, s.Len())
		assert.Nil(t, s.All())
		assert.Equal(t, 0, s.Clone().Len())
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid schema", func(t *testing.T) {
		s, _ := New(
			Property{Name: "test"},
			Property{Name: "rel", Type: TypeRelation, Relation: &Relation{Model: "Other", Method: "callMeMaybe", Local: "test"}},
		)
		assert.NoError(t, Validate(s))
	})

	t.Run("collects problems", func(t *testing.T) {
		s, _ := New(
			Property{Name: "noDescriptor", Type: TypeRelation},
			Property{Name: "noModel", Type: TypeRelation, Relation: &Relation{Method: "m"}},
			Property{Name: "badReturn", Type: TypeRelation, Relation: &Relation{Model: "M", Method: "m", Return: "object"}},
			Property{Name: "stray", Type: TypeString, Relation: &Relation{Model: "M", Method: "m"}},
		)

		err := Validate(s)
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Problems, 4)
	})
}

func TestDecode(t *testing.T) {
	t.Run("full descriptor", func(t *testing.T) {
		p, err := Decode("relateToMeValue", map[string]any{
			"type": "relation",
			"relation": map[string]any{
				"model":  "OtherModel",
				"method": "callMeReturnValue",
				"local":  "test",
				"return": "value",
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "relateToMeValue", p.Name)
		assert.True(t, p.IsRelation())
		require.NotNil(t, p.Relation)
		assert.Equal(t, "OtherModel", p.Relation.Model)
		assert.Equal(t, "callMeReturnValue", p.Relation.Method)
		assert.Equal(t, "test", p.Relation.Local)
		assert.True(t, p.Relation.ReturnsValue())
	})

	t.Run("weak booleans", func(t *testing.T) {
		p, err := Decode("guarded", map[string]any{"guarded": "true", "required": 1})
		require.NoError(t, err)
		assert.True(t, p.Guarded)
		assert.True(t, p.Required)
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := Decode("bad", map[string]any{"relation": "not a map"})
		assert.ErrorIs(t, err, ErrInvalidDescriptor)
	})
}

func TestDecodeAll(t *testing.T) {
	s, err := DecodeAll(map[string]any{
		"test":       map[string]any{"description": "Test Property"},
		"imRequired": map[string]any{"required": true},
		"empty":      nil,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"empty", "imRequired", "test"}, s.Names())

	_, err = DecodeAll(map[string]any{"bad": "string"})
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "user.yml")
		content := `
name: User
properties:
  id:
    description: ID
    type: integer
  imRequired:
    required: true
  relateToMe:
    type: relation
    relation:
      model: OtherModel
      method: callMeMaybe
      local: test
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		s, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"id", "imRequired", "relateToMe"}, s.Names())
		p, _ := s.Get("relateToMe")
		require.NotNil(t, p.Relation)
		assert.Equal(t, "callMeMaybe", p.Relation.Method)
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "user.json")
		content := `{"properties": {"guarded": {"type": "string", "guarded": true}}}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		s, err := LoadFile(path)
		require.NoError(t, err)
		p, ok := s.Get("guarded")
		require.True(t, ok)
		assert.True(t, p.Guarded)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "user.toml")
		require.NoError(t, os.WriteFile(path, []byte(""), 0644))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.yml"))
		assert.Error(t, err)
	})
}
