package connectives

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/essay-grader/internal/lexicon"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"single conclusive", "Portanto, a educação é importante.", 1},
		{"substring of larger word ignored", "Mascarar o problema", 0},
		{"case insensitive multiplicity", "Mas mas MAS.", 3},
		{"duplicate listing counted per category", "Como", 3},
		{"standalone e", "João e Maria e José", 2},
		{"correlative within sentence", "Não só estudou, mas também trabalhou.", 3},
		{"correlative broken by period", "Não só estudou. Mas também trabalhou.", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Count(tt.text))
		})
	}
}

func TestCount_DecomposedAccents(t *testing.T) {
	// "Não obstante" with a combining tilde; listed as adversative and concessive.
	text := "Na\u0303o obstante"
	assert.Equal(t, 2, Count(text))
}

func TestCount_Deterministic(t *testing.T) {
	text := "Além disso, a escola, porém, precisa mudar. Portanto, é necessário agir."
	first := Count(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Count(text))
	}
}

func TestCount_MonotoneInRepetition(t *testing.T) {
	base := "Portanto, agir."
	more := strings.Repeat(base+" ", 3)
	assert.Equal(t, 3*Count(base), Count(more))
}

func TestCountByCategory_SumsToCount(t *testing.T) {
	text := "Portanto, como"
	byCat := CountByCategory(text)

	assert.Equal(t, 1, byCat[lexicon.Conclusive])
	assert.Equal(t, 1, byCat[lexicon.Causal])
	assert.Equal(t, 1, byCat[lexicon.Conformative])
	assert.Equal(t, 1, byCat[lexicon.Comparative])

	sum := 0
	for _, n := range byCat {
		sum += n
	}
	assert.Equal(t, Count(text), sum)
}

func TestCountPhrase_AdvancesPastRejectedMatch(t *testing.T) {
	// first "mas" is inside "mascara", second stands alone
	assert.Equal(t, 1, countPhrase("mascara mas", "mas"))
}

func TestCountPattern_AdvancesPastRejectedMatch(t *testing.T) {
	re := regexp.MustCompile(`tanto[^.]*?quanto`)

	// the first candidate starts inside "portanto"
	assert.Equal(t, 1, countPattern("portanto cresce tanto a renda quanto o emprego", re))
	assert.Equal(t, 0, countPattern("portanto cresce a renda quanto o emprego", re))
	assert.Equal(t, 2, countPattern("tanto a quanto b. tanto c quanto d", re))
}

func TestCountByCategory_CorrelativeAfterPortanto(t *testing.T) {
	counts := CountByCategory("Portanto, cresce tanto a renda quanto o emprego.")
	assert.Equal(t, 1, counts[lexicon.Additive])
}
