package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/essay-grader/internal/lexicon"
	"github.com/jonathan/essay-grader/internal/types"
)

func sampleReport() *types.EssayReport {
	return &types.EssayReport{
		Score: types.Score{
			Total:      680,
			Categories: types.CompetencyScores{Competencia1: 200, Competencia2: 160, Competencia3: 120, Competencia4: 80, Competencia5: 120},
		},
		Statistics: types.Statistics{ConnectivesCount: 2, ParagraphsCount: 3, WordsCount: 120, CharactersCount: 700},
		Corrections: []types.Correction{
			{Original: "educacao", Suggested: "educação", Type: types.IssueSpelling, Position: types.Position{Start: 2, End: 10}},
		},
	}
}

func TestPrintScores(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScores(sampleReport())
	output := buf.String()

	assert.Contains(t, output, "ENEM SCORES")
	assert.Contains(t, output, "Competência 1: 200/200  (excelente)")
	assert.Contains(t, output, "Competência 4:  80/200  (regular)")
	assert.Contains(t, output, "Total: 680/1000")
	assert.NotContains(t, output, "indisponível")
}

func TestPrintScores_Degraded(t *testing.T) {
	report := sampleReport()
	report.Degraded = true

	var buf bytes.Buffer
	NewPrinter(&buf).PrintScores(report)
	assert.Contains(t, buf.String(), "corretor indisponível")
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(sampleReport())
	output := buf.String()

	assert.Contains(t, output, "STATISTICS")
	assert.Contains(t, output, "Parágrafos:  3")
	assert.Contains(t, output, "CORRECTIONS")
	assert.Contains(t, output, `"educacao" → "educação"`)
}

func TestPrintReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintCorrections_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCorrections(nil)
	assert.Contains(t, buf.String(), "nenhum erro encontrado")
}

func TestPrintCorrections_Truncated(t *testing.T) {
	corrections := make([]types.Correction, 8)
	for i := range corrections {
		corrections[i] = types.Correction{Original: "x", Type: types.IssueGrammar}
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintCorrections(corrections)
	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintConnectives(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintConnectives(map[lexicon.Category]int{lexicon.Additive: 2, lexicon.Causal: 0})
	output := buf.String()

	assert.Contains(t, output, "aditivo")
	assert.NotContains(t, output, "causal")
}

func TestPrintBox_TruncatesByRune(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.printBox("T", strings.Repeat("ç", 100))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)))
	}
}
