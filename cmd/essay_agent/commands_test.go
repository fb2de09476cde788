package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/essay-grader/internal/config"
	"github.com/jonathan/essay-grader/internal/ingestion"
	"github.com/jonathan/essay-grader/internal/llm"
	"github.com/jonathan/essay-grader/internal/schemas"
	"github.com/jonathan/essay-grader/internal/types"
)

const sampleEssay = "A educação é fundamental para o Brasil.\n\nPortanto, é preciso investir, pois a escola transforma.\n\nCabe ao governo criar uma proposta de intervenção."

func offlineAnalyzerConfig() config.Config {
	cfg := config.Default()
	return cfg
}

func writeEssay(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAnalyzeEssay_Offline(t *testing.T) {
	analyzer, cleanup, err := buildAnalyzer(context.Background(), offlineAnalyzerConfig(), true)
	require.NoError(t, err)
	defer cleanup()

	path := writeEssay(t, t.TempDir(), "redacao.txt", sampleEssay)
	essay, err := ingestion.ReadEssay(path)
	require.NoError(t, err)

	report, err := analyzeEssay(context.Background(), analyzer, essay, "Educação", "Título")
	require.NoError(t, err)

	assert.Equal(t, 3, report.Statistics.ParagraphsCount)
	assert.Equal(t, 200, report.Score.Categories.Competencia1)
	assert.Equal(t, 200, report.Score.Categories.Competencia5)
	assert.Equal(t, "Educação", report.Theme)
	assert.Equal(t, "Título", report.Title)
}

func TestBuildAnalyzer_InvalidParagraphMode(t *testing.T) {
	cfg := offlineAnalyzerConfig()
	cfg.ParagraphMode = "sentences"

	_, _, err := buildAnalyzer(context.Background(), cfg, true)
	assert.Error(t, err)
}

func TestBuildAnalyzer_GeminiRequiresKey(t *testing.T) {
	cfg := offlineAnalyzerConfig()
	cfg.Tagger = config.TaggerGemini

	_, _, err := buildAnalyzer(context.Background(), cfg, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gemini")
}

func TestWriteReport(t *testing.T) {
	report := &types.EssayReport{
		Text:     "x",
		Feedback: "Análise da redação com base nas competências do ENEM:\n",
		Score:    types.Score{Total: 600},
	}

	var jsonOut bytes.Buffer
	require.NoError(t, writeReport(&jsonOut, report, formatJSON))
	var decoded types.EssayReport
	require.NoError(t, json.Unmarshal(jsonOut.Bytes(), &decoded))
	assert.Equal(t, 600, decoded.Score.Total)

	var textOut bytes.Buffer
	require.NoError(t, writeReport(&textOut, report, formatText))
	assert.Contains(t, textOut.String(), "ENEM SCORES")
	assert.Contains(t, textOut.String(), "Análise da redação")
}

func TestListEssays(t *testing.T) {
	dir := t.TempDir()
	writeEssay(t, dir, "b.txt", "B.")
	writeEssay(t, dir, "a.md", "A.")
	writeEssay(t, dir, "notes.pdf", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	files, err := listEssays(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.md"), filepath.Join(dir, "b.txt")}, files)

	_, err = listEssays(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestRunBatch(t *testing.T) {
	analyzer, cleanup, err := buildAnalyzer(context.Background(), offlineAnalyzerConfig(), true)
	require.NoError(t, err)
	defer cleanup()

	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "reports")
	files := []string{
		writeEssay(t, in, "um.txt", sampleEssay),
		writeEssay(t, in, "dois.txt", "Ótimo texto sem erros."),
		writeEssay(t, in, "vazio.txt", "   \n\n  "),
	}

	results, err := runBatch(context.Background(), analyzer, files, out, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, filepath.Join(out, "um.txt.json"), results[0].Output)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, 680, results[1].Total)
	assert.Error(t, results[2].Err, "blank essay is invalid input")

	data, err := os.ReadFile(filepath.Join(out, "dois.txt.json"))
	require.NoError(t, err)
	var report types.EssayReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "Ótimo texto sem erros.", report.Text)
}

func TestAnalyzeAndValidateReportCommands(t *testing.T) {
	dir := t.TempDir()
	essayPath := writeEssay(t, dir, "redacao.txt", sampleEssay)
	reportPath := filepath.Join(dir, "report.json")

	rootCmd.SetArgs([]string{"analyze", "--in", essayPath, "--out", reportPath, "--offline", "--theme", "Educação"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var report types.EssayReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "Educação", report.Theme)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)

	rootCmd.SetArgs([]string{"validate-report", "--in", reportPath})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Validation passed")

	broken := strings.Replace(string(data), `"competencia1": 200`, `"competencia1": 190`, 1)
	brokenPath := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(brokenPath, []byte(broken), 0644))

	rootCmd.SetArgs([]string{"validate-report", "--in", brokenPath})
	err = rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, out.String(), "Validation failed")
	assert.Contains(t, out.String(), "competencia1")
}

func TestRunAnalyze_RequiresInput(t *testing.T) {
	analyzeIn, analyzeURL = "", ""
	err := runAnalyze(analyzeCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --in or --url")

	analyzeIn, analyzeURL = "a.txt", "https://example.com"
	defer func() { analyzeIn, analyzeURL = "", "" }()
	err = runAnalyze(analyzeCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only one of")
}

func TestRunBatch_SameStemDifferentExtension(t *testing.T) {
	analyzer, cleanup, err := buildAnalyzer(context.Background(), offlineAnalyzerConfig(), true)
	require.NoError(t, err)
	defer cleanup()

	in := t.TempDir()
	out := t.TempDir()
	writeEssay(t, in, "redacao.txt", "Ótimo texto sem erros.")
	writeEssay(t, in, "redacao.md", sampleEssay)

	files, err := listEssays(in)
	require.NoError(t, err)
	require.Len(t, files, 2)

	results, err := runBatch(context.Background(), analyzer, files, out, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.NotEqual(t, results[0].Output, results[1].Output)

	for _, r := range results {
		require.NoError(t, r.Err)
		data, err := os.ReadFile(r.Output)
		require.NoError(t, err)
		var report types.EssayReport
		require.NoError(t, json.Unmarshal(data, &report))
		assert.Equal(t, r.Total, report.Score.Total, r.Path)
	}

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestValidateReportFile_CustomSchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeEssay(t, dir, "total.schema.json", `{
		"type": "object",
		"required": ["score"],
		"properties": {"score": {"type": "object", "required": ["total"]}}
	}`)
	good := writeEssay(t, dir, "good.json", `{"score": {"total": 680}}`)
	bad := writeEssay(t, dir, "bad.json", `{"score": {}}`)

	assert.NoError(t, validateReportFile(good, schemaPath))

	err := validateReportFile(bad, schemaPath)
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)

	// The bundled schema requires far more than a score.
	assert.Error(t, validateReportFile(good, ""))
}

func TestGeminiConfig_ModelOverride(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, llm.DefaultConfig().GetModel(llm.TierLite), geminiConfig(cfg).GetModel(llm.TierLite))

	cfg.Model = "gemini-2.5-pro"
	llmCfg := geminiConfig(cfg)
	assert.Equal(t, "gemini-2.5-pro", llmCfg.GetModel(llm.TierLite))
	assert.Equal(t, llm.DefaultConfig().GetModel(llm.TierStandard), llmCfg.GetModel(llm.TierStandard))
}

func TestAnalyzeEssay_ReportMatchesSchema(t *testing.T) {
	analyzer, cleanup, err := buildAnalyzer(context.Background(), offlineAnalyzerConfig(), true)
	require.NoError(t, err)
	defer cleanup()

	report, err := analyzeEssay(context.Background(), analyzer, &ingestion.Essay{Path: "x.txt", Text: sampleEssay}, "", "")
	require.NoError(t, err)
	assert.NoError(t, schemas.ValidateReport(report))
}
