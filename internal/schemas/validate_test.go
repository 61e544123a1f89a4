package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"count": {"type": "integer"}
	}
}`

func writeTestSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(testSchema), 0o644))
	return path
}

func TestValidateDocument_Valid(t *testing.T) {
	schemaPath := writeTestSchema(t)

	err := ValidateDocument(schemaPath, []byte(`{"name": "ok", "count": 3}`))
	assert.NoError(t, err)
}

func TestValidateDocument_FieldErrors(t *testing.T) {
	schemaPath := writeTestSchema(t)

	err := ValidateDocument(schemaPath, []byte(`{"count": "not a number"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	// Both failures are reported, each tagged with its field path.
	fields := make(map[string]bool)
	for _, fe := range validationErr.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["(root)"], "missing required property reported at root")
	assert.True(t, fields["count"], "type mismatch reported at its field")
}

func TestValidateDocument_SchemaNotFound(t *testing.T) {
	err := ValidateDocument("/nonexistent/schema.json", []byte(`{}`))
	assert.Error(t, err)
}

func TestValidateFile(t *testing.T) {
	schemaPath := writeTestSchema(t)
	jsonPath := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name": "ok"}`), 0o644))

	assert.NoError(t, ValidateFile(schemaPath, jsonPath))
}

func TestValidateString_InvalidSchema(t *testing.T) {
	err := ValidateString(`{"type": "nonsense"}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Equal(t, "", ResolveSchemaPath("schemas/definitely-missing.schema.json"))
}
