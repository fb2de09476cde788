// Package nlp provides part-of-speech tagging and named-entity spans for Portuguese text.
//
// The Tagger interface is the capability boundary used by feature extraction. RuleTagger
// is the deterministic default; GeminiTagger delegates to a hosted model.
package nlp

import "context"

// POS is a universal part-of-speech tag.
type POS string

// Tags produced by the taggers. Only ADJ, CCONJ and SCONJ are counted downstream.
const (
	POSAdjective   POS = "ADJ"
	POSCoordConj   POS = "CCONJ"
	POSSubordConj  POS = "SCONJ"
	POSDeterminer  POS = "DET"
	POSAdposition  POS = "ADP"
	POSPronoun     POS = "PRON"
	POSAdverb      POS = "ADV"
	POSProperNoun  POS = "PROPN"
	POSNumber      POS = "NUM"
	POSPunctuation POS = "PUNCT"
	POSOther       POS = "X"
)

// Token is one tagged token. Start and End are byte offsets into the tagged text.
type Token struct {
	Text  string `json:"text"`
	POS   POS    `json:"pos"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Entity is a recognized named-entity span.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Document is the tagger output for one text.
type Document struct {
	Tokens   []Token  `json:"tokens"`
	Entities []Entity `json:"entities"`
}

// Tagger tags text. Implementations must be safe for concurrent use.
type Tagger interface {
	Tag(ctx context.Context, text string) (*Document, error)
}

// CountPOS returns how many tokens carry any of the given tags.
func (d *Document) CountPOS(tags ...POS) int {
	if d == nil {
		return 0
	}
	n := 0
	for _, tok := range d.Tokens {
		for _, tag := range tags {
			if tok.POS == tag {
				n++
				break
			}
		}
	}
	return n
}

// EntityCount returns the number of entity spans; a nil document has none.
func (d *Document) EntityCount() int {
	if d == nil {
		return 0
	}
	return len(d.Entities)
}
