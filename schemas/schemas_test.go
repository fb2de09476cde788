package schemas_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/essay-grader/internal/schemas"
	schemafiles "github.com/jonathan/essay-grader/schemas"
)

var schemaFiles = []string{
	schemafiles.EssayReport,
	schemafiles.AnalyzeRequest,
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasType && hasSchema, "schema should declare $schema and type")
		})
	}
}

func TestEmbeddedMatchesDisk(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		onDisk, err := os.ReadFile(schemaFile)
		require.NoError(t, err)
		embedded, err := schemafiles.Read(schemaFile)
		require.NoError(t, err)
		assert.Equal(t, string(onDisk), string(embedded))
	}
}

func TestEssayReportSchema_RejectsMissingScore(t *testing.T) {
	data, err := os.ReadFile(schemafiles.EssayReport)
	require.NoError(t, err)

	doc := `{
		"id": "3f1c", "text": "x", "corrections": [], "statistics": {
			"connectivesCount": 0, "paragraphsCount": 1, "wordsCount": 1, "charactersCount": 1
		},
		"theme": "t", "feedback": "f", "createdAt": "2024-01-01T00:00:00Z"
	}`
	err = schemas.ValidateJSONString(string(data), doc)
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
