// Package features computes the lexical and structural counts used by scoring.
package features

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jonathan/essay-grader/internal/nlp"
	"github.com/jonathan/essay-grader/internal/types"
)

// ParagraphMode selects how paragraphs are delimited.
type ParagraphMode string

const (
	// ParagraphModeBlankLine counts non-blank blocks separated by blank lines.
	ParagraphModeBlankLine ParagraphMode = "blank_line"
	// ParagraphModeNewline counts newline characters plus one.
	ParagraphModeNewline ParagraphMode = "newline"
)

var blankLine = regexp.MustCompile(`\n[ \t\f\v]*\n`)

// ParseParagraphMode maps a configuration value to a mode. Empty selects the default.
func ParseParagraphMode(s string) (ParagraphMode, error) {
	switch ParagraphMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ParagraphModeBlankLine:
		return ParagraphModeBlankLine, nil
	case ParagraphModeNewline:
		return ParagraphModeNewline, nil
	default:
		return "", fmt.Errorf("unknown paragraph mode %q", s)
	}
}

// Extract tags the text and returns every count except ConnectiveCount, which the
// connective counter fills in.
func Extract(ctx context.Context, tagger nlp.Tagger, text string, mode ParagraphMode) (types.TextFeatures, error) {
	text = norm.NFC.String(text)

	doc, err := tagger.Tag(ctx, text)
	if err != nil {
		return types.TextFeatures{}, fmt.Errorf("tagging failed: %w", err)
	}

	return types.TextFeatures{
		ParagraphCount:   CountParagraphs(text, mode),
		PeriodCount:      strings.Count(text, "."),
		WordCount:        len(strings.Fields(text)),
		CharCount:        utf8.RuneCountInString(text),
		AdjectiveCount:   doc.CountPOS(nlp.POSAdjective),
		ConjunctionCount: doc.CountPOS(nlp.POSCoordConj, nlp.POSSubordConj),
		EntityCount:      doc.EntityCount(),
	}, nil
}

// CountParagraphs returns the paragraph count for the mode. The result is at least 1.
func CountParagraphs(text string, mode ParagraphMode) int {
	if mode == ParagraphModeNewline {
		return strings.Count(normalizeNewlines(text), "\n") + 1
	}
	if n := len(Paragraphs(text)); n > 0 {
		return n
	}
	return 1
}

// Paragraphs splits text into trimmed, non-blank blocks separated by blank lines.
func Paragraphs(text string) []string {
	blocks := blankLine.Split(normalizeNewlines(text), -1)
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// LastParagraph returns the final paragraph, or the trimmed text when it has no blank lines.
func LastParagraph(text string) string {
	paras := Paragraphs(text)
	if len(paras) == 0 {
		return ""
	}
	return paras[len(paras)-1]
}

// ClosingParagraph returns the paragraph searched for proposal keywords. In newline
// mode it is the last non-blank line.
func ClosingParagraph(text string, mode ParagraphMode) string {
	if mode != ParagraphModeNewline {
		return LastParagraph(text)
	}
	lines := strings.Split(normalizeNewlines(text), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
