package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"properties": {
		"title": {"type": "string"},
		"count": {"type": "integer", "minimum": 1}
	},
	"required": ["title"],
	"additionalProperties": false
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"title": "ok", "count": 3}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequired(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"count": 3}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Contains(t, validationErr.Error(), "title")
}

func TestValidateJSONString_MultipleErrors(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"count": 0, "extra": true}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.GreaterOrEqual(t, len(validationErr.Errors), 2)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{not json`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
