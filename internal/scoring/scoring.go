// Package scoring maps corrector results and text features to the five ENEM competencies.
package scoring

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jonathan/essay-grader/internal/lexicon"
	"github.com/jonathan/essay-grader/internal/types"
)

// Grid parameters. Every competency score is a multiple of GridStep in [0, MaxCompetency].
const (
	GridStep      = 40
	MaxCompetency = 200
	MaxTotal      = 5 * MaxCompetency
)

// Axis weights and caps.
const (
	grammarPenalty  = 15
	spellingPenalty = 10
	maxErrorPenalty = 160

	structureBase     = 120
	perParagraphBonus = 20
	maxStructureBonus = 80

	repertoireBase = 120
	perEntityBonus = 5
	maxEntityBonus = 80

	cohesionBase       = 80
	perConnectiveBonus = 10
	maxCohesionBonus   = 120

	proposalBase          = 120
	developmentBonus      = 40
	proposalKeywordBonus  = 40
	developedParagraphMin = 2
)

// Input is everything the scorer reads.
type Input struct {
	GrammarErrors  int
	SpellingErrors int
	Features       types.TextFeatures
	// LastParagraph is the closing paragraph searched for proposal keywords.
	LastParagraph string
}

// Snap clamps raw to [0, 200] and rounds it to the nearest multiple of 40.
// Halfway values round away from zero, so 100 snaps to 120 and 140 to 160.
func Snap(raw float64) int {
	if math.IsNaN(raw) {
		return 0
	}
	raw = math.Max(0, math.Min(MaxCompetency, raw))
	return int(math.Round(raw/GridStep)) * GridStep
}

// Score computes the five competency scores.
func Score(in Input) types.CompetencyScores {
	return types.CompetencyScores{
		Competencia1: Snap(languageMastery(in.GrammarErrors, in.SpellingErrors)),
		Competencia2: Snap(themeStructure(in.Features.ParagraphCount)),
		Competencia3: Snap(argumentation(in.Features.EntityCount)),
		Competencia4: Snap(cohesion(in.Features.ConnectiveCount)),
		Competencia5: Snap(interventionProposal(in.Features.ParagraphCount, in.LastParagraph)),
	}
}

func languageMastery(grammar, spelling int) float64 {
	penalty := min(maxErrorPenalty, nonNegative(grammar)*grammarPenalty+nonNegative(spelling)*spellingPenalty)
	return float64(MaxCompetency - penalty)
}

func themeStructure(paragraphs int) float64 {
	return float64(structureBase + min(maxStructureBonus, nonNegative(paragraphs)*perParagraphBonus))
}

func argumentation(entities int) float64 {
	return float64(repertoireBase + min(maxEntityBonus, nonNegative(entities)*perEntityBonus))
}

func cohesion(connectives int) float64 {
	return float64(cohesionBase + min(maxCohesionBonus, nonNegative(connectives)*perConnectiveBonus))
}

func interventionProposal(paragraphs int, lastParagraph string) float64 {
	raw := proposalBase
	if paragraphs > developedParagraphMin {
		raw += developmentBonus
	}
	if HasProposalKeyword(lastParagraph) {
		raw += proposalKeywordBonus
	}
	return float64(raw)
}

// HasProposalKeyword reports whether the NFC-normalized, lower-cased paragraph
// contains any intervention-proposal keyword as a substring.
func HasProposalKeyword(paragraph string) bool {
	lower := strings.ToLower(norm.NFC.String(paragraph))
	for _, kw := range lexicon.ProposalKeywords() {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
