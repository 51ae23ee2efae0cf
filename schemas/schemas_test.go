package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestAutomationRulesSchemaIsValidJSON(t *testing.T) {
	data, err := os.ReadFile("automation_rules.schema.json")
	require.NoError(t, err)

	var v interface{}
	assert.NoError(t, json.Unmarshal(data, &v))
}

func TestAutomationRulesSchemaCompiles(t *testing.T) {
	data, err := os.ReadFile("automation_rules.schema.json")
	require.NoError(t, err)

	loader := gojsonschema.NewBytesLoader(data)
	_, err = gojsonschema.NewSchema(loader)
	assert.NoError(t, err, "schema should compile as draft-07 JSON Schema")
}
