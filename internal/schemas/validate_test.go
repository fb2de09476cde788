package schemas

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/essay-grader/internal/types"
	schemafiles "github.com/jonathan/essay-grader/schemas"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	}
}`

func sampleReport() types.EssayReport {
	return types.EssayReport{
		ID:   uuid.New(),
		Text: "A educação transforma.",
		Corrections: []types.Correction{
			{Original: "educacao", Suggested: "educação", Type: types.IssueSpelling, Position: types.Position{Start: 2, End: 10}},
		},
		Score: types.Score{
			Total:      600,
			Categories: types.CompetencyScores{Competencia1: 120, Competencia2: 120, Competencia3: 120, Competencia4: 120, Competencia5: 120},
		},
		Statistics: types.Statistics{ParagraphsCount: 1, WordsCount: 3, CharactersCount: 22},
		Theme:      types.DefaultTheme,
		Feedback:   "ok",
		CreatedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)
	jsonPath := writeFile(t, dir, "person.json", `{"name": "Ana", "age": 17}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingField(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)
	jsonPath := writeFile(t, dir, "person.json", `{"age": 17}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)

	err := ValidateJSON(filepath.Join(dir, "missing.schema.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_WrongType(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)
	jsonPath := writeFile(t, dir, "person.json", `{"name": "Ana", "age": "dezessete"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "age", validationErr.Errors[0].Field)
}

func TestValidateJSON_BadSchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "broken.schema.json", `{not json`)
	jsonPath := writeFile(t, dir, "doc.json", `{}`)

	err := ValidateJSON(schemaPath, jsonPath)
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, schemaPath, loadErr.Path)
}

func TestValidateReport(t *testing.T) {
	assert.NoError(t, ValidateReport(sampleReport()))
}

func TestValidateReport_OffGridScore(t *testing.T) {
	report := sampleReport()
	report.Score.Categories.Competencia3 = 100

	err := ValidateReport(report)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "score.categories.competencia3", validationErr.Errors[0].Field)
}

func TestValidateEmbedded_AnalyzeRequest(t *testing.T) {
	assert.NoError(t, ValidateEmbedded(schemafiles.AnalyzeRequest, []byte(`{"text": "Redação."}`)))
	assert.Error(t, ValidateEmbedded(schemafiles.AnalyzeRequest, []byte(`{"theme": "x"}`)))
}

func TestValidateEmbedded_UnknownSchema(t *testing.T) {
	err := ValidateEmbedded("missing.schema.json", []byte(`{}`))
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestResolveSchemaPath(t *testing.T) {
	assert.NotEmpty(t, ResolveSchemaPath(filepath.Join("schemas", schemafiles.EssayReport)))
	assert.Empty(t, ResolveSchemaPath("does/not/exist.json"))
}
