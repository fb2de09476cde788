package nlp

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:[-'’][\p{L}\p{N}]+)*|[^\s\p{L}\p{N}]`)

var (
	defaultTagger *RuleTagger
	defaultOnce   sync.Once
)

// Default returns the process-wide rule tagger, building its lexicons on first use.
func Default() *RuleTagger {
	defaultOnce.Do(func() {
		defaultTagger = NewRuleTagger()
	})
	return defaultTagger
}

// RuleTagger is a deterministic lexicon and suffix tagger for Portuguese with a
// capitalization-based entity chunker. It holds only read-only tables after
// construction.
type RuleTagger struct {
	closed     map[string]POS
	adjectives map[string]struct{}
	gazetteer  map[string]struct{}
	joiners    map[string]struct{}
}

// NewRuleTagger builds a tagger with the built-in lexicons.
func NewRuleTagger() *RuleTagger {
	t := &RuleTagger{
		closed:     make(map[string]POS),
		adjectives: toSet(adjectiveLexicon),
		gazetteer:  toSet(gazetteer),
		joiners:    toSet([]string{"de", "da", "do", "das", "dos", "e"}),
	}
	add := func(pos POS, words []string) {
		for _, w := range words {
			t.closed[w] = pos
		}
	}
	add(POSDeterminer, determiners)
	add(POSAdposition, adpositions)
	add(POSPronoun, pronouns)
	add(POSAdverb, adverbs)
	add(POSCoordConj, coordinatingConjunctions)
	add(POSSubordConj, subordinatingConjunctions)
	return t
}

// Tag tokenizes and tags text. It never fails; the error is part of the Tagger contract.
func (t *RuleTagger) Tag(ctx context.Context, text string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text = norm.NFC.String(text)

	doc := &Document{Tokens: []Token{}, Entities: []Entity{}}
	sentenceStart := make([]bool, 0)
	prevEnd := 0
	startNext := true
	for _, loc := range tokenPattern.FindAllStringIndex(text, -1) {
		word := text[loc[0]:loc[1]]
		if strings.Contains(text[prevEnd:loc[0]], "\n") {
			startNext = true
		}
		atStart := startNext
		startNext = false

		pos := t.classify(word, atStart)
		doc.Tokens = append(doc.Tokens, Token{Text: word, POS: pos, Start: loc[0], End: loc[1]})
		sentenceStart = append(sentenceStart, atStart)

		if pos == POSPunctuation && strings.ContainsAny(word, ".!?:") {
			startNext = true
		}
		prevEnd = loc[1]
	}

	doc.Entities = t.chunkEntities(text, doc.Tokens, sentenceStart)
	return doc, nil
}

func (t *RuleTagger) classify(word string, atStart bool) POS {
	first, _ := utf8.DecodeRuneInString(word)
	switch {
	case !unicode.IsLetter(first) && !unicode.IsDigit(first):
		return POSPunctuation
	case unicode.IsDigit(first):
		return POSNumber
	}

	lower := strings.ToLower(word)
	if unicode.IsUpper(first) && !atStart {
		if _, ok := t.closed[lower]; !ok {
			return POSProperNoun
		}
	}
	if pos, ok := t.closed[lower]; ok {
		return pos
	}
	if t.isAdjective(lower) {
		return POSAdjective
	}
	return POSOther
}

func (t *RuleTagger) isAdjective(lower string) bool {
	if _, ok := t.adjectives[lower]; ok {
		return true
	}
	if utf8.RuneCountInString(lower) < 6 || strings.HasSuffix(lower, "mente") {
		return false
	}
	for _, suffix := range adjectiveSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// chunkEntities groups capitalized tokens into spans. A span may start at a proper
// noun, an acronym or a gazetteer word; it continues through capitalized words and
// through lowercase joiners that are followed by a capitalized word.
func (t *RuleTagger) chunkEntities(text string, tokens []Token, atStart []bool) []Entity {
	entities := []Entity{}
	for i := 0; i < len(tokens); i++ {
		label, ok := t.entityHead(tokens[i], atStart[i])
		if !ok {
			continue
		}

		end := i
		for j := i + 1; j < len(tokens); j++ {
			if atStart[j] {
				break
			}
			if isCapitalized(tokens[j].Text) && tokens[j].POS != POSPunctuation {
				end = j
				continue
			}
			if _, joiner := t.joiners[tokens[j].Text]; joiner && j+1 < len(tokens) && !atStart[j+1] && isCapitalized(tokens[j+1].Text) {
				continue
			}
			break
		}

		if end > i && label == "ORG" {
			label = "MISC"
		}
		entities = append(entities, Entity{
			Text:  text[tokens[i].Start:tokens[end].End],
			Label: label,
			Start: tokens[i].Start,
			End:   tokens[end].End,
		})
		i = end
	}
	return entities
}

func (t *RuleTagger) entityHead(tok Token, atStart bool) (string, bool) {
	if isAcronym(tok.Text) {
		return "ORG", true
	}
	if _, ok := t.gazetteer[strings.ToLower(tok.Text)]; ok {
		return "MISC", true
	}
	if tok.POS == POSProperNoun && !atStart {
		return "MISC", true
	}
	return "", false
}

func isCapitalized(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

func isAcronym(word string) bool {
	if utf8.RuneCountInString(word) < 2 {
		return false
	}
	for _, r := range word {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
