package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/modler/internal/orm/schema"
)

func writeSchema(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSchemaCommand(t *testing.T) {
	path := writeSchema(t, "user.yml", `
name: User
properties:
  userName:
    description: User Name
    type: string
    required: true
  email:
    description: Email
    type: email
  password:
    type: string
    guarded: true
  team:
    description: Team
    type: relation
    relation:
      model: Team
      method: findByID
      local: teamID
      return: value
`)

	output, err := execute(t, "schema", path)
	require.NoError(t, err)

	assert.Contains(t, output, "user.yml")
	assert.Contains(t, output, "userName")
	assert.Contains(t, output, "User Name")
	assert.Contains(t, output, "Team.findByID(teamID) -> value")
	assert.Contains(t, output, "4 properties, schema is valid")
}

func TestSchemaCommandInvalid(t *testing.T) {
	path := writeSchema(t, "broken.json", `{"properties": {"team": {"type": "relation"}}}`)

	_, err := execute(t, "schema", path)
	require.Error(t, err)

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 1)
}

func TestSchemaCommandMissingFile(t *testing.T) {
	_, err := execute(t, "schema", filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestDescribeRelation(t *testing.T) {
	assert.Equal(t, "", describeRelation(nil))
	assert.Equal(t, "Team.load", describeRelation(&schema.Relation{Model: "Team", Method: "load"}))
	assert.Equal(t, "Team.load(id)", describeRelation(&schema.Relation{Model: "Team", Method: "load", Local: "id"}))
}
