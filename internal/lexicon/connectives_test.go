package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectives_KeepsDuplicates(t *testing.T) {
	count := 0
	for _, e := range Connectives() {
		if e.Phrase == "como" {
			count++
		}
	}
	// causal, conformative and comparative all list "como"
	assert.Equal(t, 3, count)
}

func TestConnectives_ReturnsCopy(t *testing.T) {
	entries := Connectives()
	entries[0].Phrase = "mutated"

	assert.Equal(t, "além disso", Connectives()[0].Phrase)
}

func TestCategories_Order(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 10)
	assert.Equal(t, Additive, cats[0])
	assert.Equal(t, Final, cats[9])
}

func TestConnectives_EveryCategoryPopulated(t *testing.T) {
	seen := make(map[Category]int)
	for _, e := range Connectives() {
		assert.NotEmpty(t, e.Phrase)
		seen[e.Category]++
	}
	for _, c := range Categories() {
		assert.Greater(t, seen[c], 0, "category %s has no phrases", c)
	}
}

func TestProposalKeywords(t *testing.T) {
	kw := ProposalKeywords()
	assert.Contains(t, kw, "proposta")
	assert.Contains(t, kw, "solução")
	assert.Len(t, kw, 8)
}
