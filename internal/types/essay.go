// Package types defines the data structures shared across the essay scoring packages.
package types

import (
	"time"

	"github.com/google/uuid"
)

// IssueKind classifies a flagged span reported by the corrector.
type IssueKind string

const (
	// IssueGrammar is a grammar deviation (LanguageTool issueType "grammar").
	IssueGrammar IssueKind = "grammar"
	// IssueSpelling covers every other issue type reported by the corrector.
	IssueSpelling IssueKind = "spelling"
)

// CorrectionMatch is one flagged span in the essay text.
//
// Offset and Length are absolute positions in the analyzed text. ContextOffset and
// ContextLength are relative to ContextText, the excerpt returned by the corrector.
// The two coordinate systems must not be mixed.
type CorrectionMatch struct {
	Offset        int       `json:"offset"`
	Length        int       `json:"length"`
	Kind          IssueKind `json:"kind"`
	Message       string    `json:"message,omitempty"`
	RuleID        string    `json:"rule_id,omitempty"`
	ContextText   string    `json:"context_text,omitempty"`
	ContextOffset int       `json:"context_offset"`
	ContextLength int       `json:"context_length"`
	Replacements  []string  `json:"replacements"`
}

// OriginalSpan returns the flagged excerpt taken from the context text.
// Offsets are counted in runes and clamped to the context bounds.
func (m CorrectionMatch) OriginalSpan() string {
	runes := []rune(m.ContextText)
	start := clamp(m.ContextOffset, 0, len(runes))
	end := clamp(m.ContextOffset+m.ContextLength, start, len(runes))
	return string(runes[start:end])
}

// SuggestedReplacement returns the first suggestion, or "" when there is none.
func (m CorrectionMatch) SuggestedReplacement() string {
	if len(m.Replacements) == 0 {
		return ""
	}
	return m.Replacements[0]
}

// Position returns the absolute span of the match in the analyzed text.
func (m CorrectionMatch) Position() Position {
	return Position{Start: m.Offset, End: m.Offset + m.Length}
}

// Correction converts the match into its outbound report representation.
func (m CorrectionMatch) Correction() Correction {
	return Correction{
		Original:  m.OriginalSpan(),
		Suggested: m.SuggestedReplacement(),
		Type:      m.Kind,
		Position:  m.Position(),
	}
}

// TextFeatures is an immutable snapshot of the counts extracted from one essay.
type TextFeatures struct {
	ParagraphCount   int `json:"paragraph_count"`
	PeriodCount      int `json:"period_count"`
	WordCount        int `json:"word_count"`
	CharCount        int `json:"char_count"`
	AdjectiveCount   int `json:"adjective_count"`
	ConjunctionCount int `json:"conjunction_count"`
	EntityCount      int `json:"entity_count"`
	ConnectiveCount  int `json:"connective_count"`
}

// CompetencyScores holds the five ENEM competency scores. Each value is on the
// grid {0, 40, 80, 120, 160, 200}.
type CompetencyScores struct {
	Competencia1 int `json:"competencia1"`
	Competencia2 int `json:"competencia2"`
	Competencia3 int `json:"competencia3"`
	Competencia4 int `json:"competencia4"`
	Competencia5 int `json:"competencia5"`
}

// Total returns the exact sum of the five competencies (0-1000).
func (c CompetencyScores) Total() int {
	return c.Competencia1 + c.Competencia2 + c.Competencia3 + c.Competencia4 + c.Competencia5
}

// Values returns the scores in competency order 1..5.
func (c CompetencyScores) Values() [5]int {
	return [5]int{c.Competencia1, c.Competencia2, c.Competencia3, c.Competencia4, c.Competencia5}
}

// Position is an absolute [Start, End) span in the analyzed text.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Correction is the outbound view of a CorrectionMatch.
type Correction struct {
	Original  string    `json:"original"`
	Suggested string    `json:"suggested"`
	Type      IssueKind `json:"type"`
	Position  Position  `json:"position"`
}

// Score groups the aggregate and per-competency scores of a report.
type Score struct {
	Total      int              `json:"total"`
	Categories CompetencyScores `json:"categories"`
}

// Statistics are the text counters exposed to callers.
type Statistics struct {
	ConnectivesCount int `json:"connectivesCount"`
	ParagraphsCount  int `json:"paragraphsCount"`
	WordsCount       int `json:"wordsCount"`
	CharactersCount  int `json:"charactersCount"`
}

// StatisticsFrom derives the outbound counters from extracted features.
func StatisticsFrom(f TextFeatures) Statistics {
	return Statistics{
		ConnectivesCount: f.ConnectiveCount,
		ParagraphsCount:  f.ParagraphCount,
		WordsCount:       f.WordCount,
		CharactersCount:  f.CharCount,
	}
}

// DefaultTheme is reported when the request carries no theme.
const DefaultTheme = "Tema não especificado"

// EssayReport is the result of analyzing one essay.
type EssayReport struct {
	ID          uuid.UUID    `json:"id"`
	Text        string       `json:"text"`
	Corrections []Correction `json:"corrections"`
	Score       Score        `json:"score"`
	Statistics  Statistics   `json:"statistics"`
	Theme       string       `json:"theme"`
	Title       string       `json:"title,omitempty"`
	Feedback    string       `json:"feedback"`
	Degraded    bool         `json:"degraded"`
	CreatedAt   time.Time    `json:"createdAt"`
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
