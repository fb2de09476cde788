// Package connectives counts discourse connectives in essay text.
package connectives

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jonathan/essay-grader/internal/lexicon"
)

// matcher counts occurrences of a single lexicon entry.
type matcher struct {
	entry lexicon.Entry
	// phrase is set for literal entries; re for correlative ones ("a... b").
	phrase string
	re     *regexp.Regexp
}

var (
	matchersOnce sync.Once
	matchers     []matcher
)

func loadMatchers() []matcher {
	matchersOnce.Do(func() {
		for _, e := range lexicon.Connectives() {
			phrase := Normalize(e.Phrase)
			if strings.Contains(phrase, lexicon.CorrelativeSeparator) {
				parts := strings.SplitN(phrase, lexicon.CorrelativeSeparator, 2)
				first := strings.TrimSpace(parts[0])
				second := strings.TrimSpace(parts[1])
				// Both halves must occur in the same sentence.
				re := regexp.MustCompile(regexp.QuoteMeta(first) + `[^.]*?` + regexp.QuoteMeta(second))
				matchers = append(matchers, matcher{entry: e, re: re})
				continue
			}
			matchers = append(matchers, matcher{entry: e, phrase: phrase})
		}
	})
	return matchers
}

// Normalize composes accents (NFC) and lower-cases the text so that decomposed input
// such as "não" matches the lexicon's "não".
func Normalize(text string) string {
	return strings.ToLower(norm.NFC.String(text))
}

// Count returns the total number of connective occurrences in text.
//
// Every lexicon entry is counted independently; a phrase listed under several
// categories contributes once per listing.
func Count(text string) int {
	if text == "" {
		return 0
	}
	lower := Normalize(text)
	total := 0
	for _, m := range loadMatchers() {
		total += m.count(lower)
	}
	return total
}

// CountByCategory breaks the total down by connective category.
// The values sum to Count(text).
func CountByCategory(text string) map[lexicon.Category]int {
	counts := make(map[lexicon.Category]int)
	if text == "" {
		return counts
	}
	lower := Normalize(text)
	for _, m := range loadMatchers() {
		if n := m.count(lower); n > 0 {
			counts[m.entry.Category] += n
		}
	}
	return counts
}

func (m matcher) count(lower string) int {
	if m.re != nil {
		return countPattern(lower, m.re)
	}
	return countPhrase(lower, m.phrase)
}

// countPattern counts non-overlapping word-bounded matches of re. A match that fails
// the boundary check is retried one rune after its start, so a valid pair inside the
// rejected span is still found.
func countPattern(s string, re *regexp.Regexp) int {
	n := 0
	pos := 0
	for pos < len(s) {
		loc := re.FindStringIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if atWordBoundary(s, start, end) {
			n++
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		pos = start + size
	}
	return n
}

// countPhrase counts non-overlapping occurrences of phrase in s that are not part of
// a larger word.
func countPhrase(s, phrase string) int {
	if phrase == "" {
		return 0
	}
	n := 0
	pos := 0
	for pos < len(s) {
		idx := strings.Index(s[pos:], phrase)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(phrase)
		if atWordBoundary(s, start, end) {
			n++
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		pos = start + size
	}
	return n
}

// atWordBoundary reports whether s[start:end] is delimited by non-word runes.
// regexp's \b only understands ASCII, which would split words like "não".
func atWordBoundary(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
