package corrector

import (
	"bytes"
	"encoding/json"
	"log"

	"github.com/jonathan/essay-grader/internal/types"
)

// CheckResult is the decoded service response. Every field is optional: the
// service output is treated as untrusted and only partially structured.
type CheckResult struct {
	Matches *[]RawMatch `json:"matches"`
}

// UnmarshalJSON decodes the matches field leniently. A matches value that is not
// an array is logged and treated as absent; individual matches never fail decoding.
func (r *CheckResult) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Matches json.RawMessage `json:"matches"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	r.Matches = nil
	if len(envelope.Matches) == 0 || bytes.Equal(envelope.Matches, []byte("null")) {
		return nil
	}
	var matches []RawMatch
	if err := json.Unmarshal(envelope.Matches, &matches); err != nil {
		log.Printf("[corrector] matches field is not an array, ignoring it: %v", err)
		return nil
	}
	r.Matches = &matches
	return nil
}

// MatchesPresent reports whether the response carried a matches field at all.
func (r *CheckResult) MatchesPresent() bool {
	return r != nil && r.Matches != nil
}

// RawMatch is one match as returned by LanguageTool.
type RawMatch struct {
	Message      string        `json:"message"`
	Offset       *int          `json:"offset"`
	Length       *int          `json:"length"`
	Replacements []Replacement `json:"replacements"`
	Context      *MatchContext `json:"context"`
	Rule         *Rule         `json:"rule"`

	malformed bool
}

// UnmarshalJSON decodes one match. A match with mistyped fields is kept as a
// malformed placeholder so the rest of the response survives.
func (m *RawMatch) UnmarshalJSON(data []byte) error {
	type plain RawMatch
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*m = RawMatch{malformed: true}
		return nil
	}
	*m = RawMatch(p)
	return nil
}

// Replacement is one suggestion for a match.
type Replacement struct {
	Value string `json:"value"`
}

// MatchContext is the excerpt surrounding a match. Offset and Length are relative
// to Text, not to the checked document.
type MatchContext struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// Rule describes the rule that produced a match.
type Rule struct {
	ID        string `json:"id"`
	IssueType string `json:"issueType"`
}

// ToMatches converts the raw response into correction matches, preserving order.
// Malformed matches and matches without a usable offset or length are dropped and
// counted in skipped.
func ToMatches(result *CheckResult) (matches []types.CorrectionMatch, skipped int) {
	if !result.MatchesPresent() {
		return []types.CorrectionMatch{}, 0
	}

	matches = make([]types.CorrectionMatch, 0, len(*result.Matches))
	for _, raw := range *result.Matches {
		if raw.malformed || raw.Offset == nil || raw.Length == nil || *raw.Offset < 0 || *raw.Length <= 0 {
			skipped++
			continue
		}

		m := types.CorrectionMatch{
			Offset:       *raw.Offset,
			Length:       *raw.Length,
			Kind:         issueKind(raw.Rule),
			Message:      raw.Message,
			Replacements: make([]string, 0, len(raw.Replacements)),
		}
		if raw.Rule != nil {
			m.RuleID = raw.Rule.ID
		}
		if raw.Context != nil {
			m.ContextText = raw.Context.Text
			m.ContextOffset = raw.Context.Offset
			m.ContextLength = raw.Context.Length
		}
		for _, r := range raw.Replacements {
			m.Replacements = append(m.Replacements, r.Value)
		}
		matches = append(matches, m)
	}
	return matches, skipped
}

// issueKind maps the rule issue type: "grammar" is grammar, anything else spelling.
func issueKind(rule *Rule) types.IssueKind {
	if rule != nil && rule.IssueType == "grammar" {
		return types.IssueGrammar
	}
	return types.IssueSpelling
}

// CountErrors returns the number of grammar and spelling matches.
func CountErrors(matches []types.CorrectionMatch) (grammar, spelling int) {
	for _, m := range matches {
		if m.Kind == types.IssueGrammar {
			grammar++
		} else {
			spelling++
		}
	}
	return grammar, spelling
}
