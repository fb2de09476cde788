package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/jonathan/essay-grader/internal/types"
)

func onGrid(t *testing.T, v int) {
	t.Helper()
	assert.GreaterOrEqual(t, v, 0)
	assert.LessOrEqual(t, v, MaxCompetency)
	assert.Zero(t, v%GridStep, "value %d is not a multiple of %d", v, GridStep)
}

func TestSnap(t *testing.T) {
	tests := []struct {
		raw  float64
		want int
	}{
		{-50, 0},
		{0, 0},
		{19.9, 0},
		{20, 40},
		{40, 40},
		{100, 120},
		{110, 120},
		{140, 160},
		{150, 160},
		{170, 160},
		{180, 200},
		{200, 200},
		{1000, 200},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Snap(tt.raw), "Snap(%v)", tt.raw)
	}
}

func TestScore_CleanShortEssay(t *testing.T) {
	scores := Score(Input{
		Features:      types.TextFeatures{ParagraphCount: 1},
		LastParagraph: "Ótimo texto sem erros.",
	})

	assert.Equal(t, 200, scores.Competencia1)
	assert.Equal(t, 160, scores.Competencia2)
	assert.Equal(t, 120, scores.Competencia3)
	assert.Equal(t, 80, scores.Competencia4)
	assert.Equal(t, 120, scores.Competencia5)
	assert.Equal(t, 680, scores.Total())
}

func TestScore_FullMarks(t *testing.T) {
	scores := Score(Input{
		Features: types.TextFeatures{
			ParagraphCount:  4,
			EntityCount:     16,
			ConnectiveCount: 12,
		},
		LastParagraph: "Portanto, cabe ao Estado implementar políticas públicas.",
	})

	for _, v := range scores.Values() {
		assert.Equal(t, 200, v)
	}
	assert.Equal(t, MaxTotal, scores.Total())
}

func TestScore_ErrorPenaltyCapped(t *testing.T) {
	scores := Score(Input{GrammarErrors: 50, SpellingErrors: 50, Features: types.TextFeatures{ParagraphCount: 1}})
	assert.Equal(t, 40, scores.Competencia1)
}

func TestScore_LanguageMasteryMonotone(t *testing.T) {
	prev := MaxCompetency
	for grammar := 0; grammar <= 12; grammar++ {
		for spelling := 0; spelling <= 3; spelling++ {
			v := Score(Input{GrammarErrors: grammar, SpellingErrors: spelling}).Competencia1
			onGrid(t, v)
			if spelling == 0 {
				assert.LessOrEqual(t, v, prev)
				prev = v
			}
		}
	}
}

func TestScore_CohesionMonotoneAndCapped(t *testing.T) {
	prev := 0
	for n := 0; n <= 30; n++ {
		v := Score(Input{Features: types.TextFeatures{ConnectiveCount: n}}).Competencia4
		onGrid(t, v)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
	assert.Equal(t, 200, prev)
}

func TestScore_ProposalAxis(t *testing.T) {
	tests := []struct {
		name       string
		paragraphs int
		last       string
		want       int
	}{
		{"short without keyword", 2, "Fim.", 120},
		{"developed without keyword", 3, "Fim.", 160},
		{"short with keyword", 1, "Uma MEDIDA urgente.", 160},
		{"developed with keyword", 5, "É preciso criar leis.", 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(Input{Features: types.TextFeatures{ParagraphCount: tt.paragraphs}, LastParagraph: tt.last}).Competencia5
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScore_TotalIsExactSumInRange(t *testing.T) {
	for g := 0; g < 15; g += 3 {
		for p := 1; p < 6; p++ {
			for c := 0; c < 15; c += 4 {
				s := Score(Input{GrammarErrors: g, Features: types.TextFeatures{ParagraphCount: p, ConnectiveCount: c, EntityCount: g}})
				sum := 0
				for _, v := range s.Values() {
					onGrid(t, v)
					sum += v
				}
				assert.Equal(t, sum, s.Total())
				assert.LessOrEqual(t, s.Total(), MaxTotal)
			}
		}
	}
}

func TestScore_NegativeCountsTreatedAsZero(t *testing.T) {
	s := Score(Input{GrammarErrors: -3, Features: types.TextFeatures{ConnectiveCount: -1}})
	assert.Equal(t, 200, s.Competencia1)
	assert.Equal(t, 80, s.Competencia4)
}

func TestHasProposalKeyword(t *testing.T) {
	assert.True(t, HasProposalKeyword("A SOLUÇÃO passa pela escola."))
	assert.True(t, HasProposalKeyword("devemos estabelecer metas"))
	assert.False(t, HasProposalKeyword("Conclui-se o texto."))
	assert.False(t, HasProposalKeyword(""))
}

func TestHasProposalKeyword_DecomposedAccents(t *testing.T) {
	decomposed := norm.NFD.String("A solução é investir.")
	require.NotEqual(t, "A solução é investir.", decomposed)
	assert.True(t, HasProposalKeyword(decomposed))

	feats := types.TextFeatures{ParagraphCount: 3}
	composed := Score(Input{Features: feats, LastParagraph: "A solução é investir."})
	fromNFD := Score(Input{Features: feats, LastParagraph: decomposed})
	assert.Equal(t, 200, composed.Competencia5)
	assert.Equal(t, composed.Competencia5, fromNFD.Competencia5)
}
