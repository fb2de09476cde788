// Package pipeline orchestrates one essay analysis from raw text to report.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/essay-grader/internal/connectives"
	"github.com/jonathan/essay-grader/internal/corrector"
	"github.com/jonathan/essay-grader/internal/feedback"
	"github.com/jonathan/essay-grader/internal/features"
	"github.com/jonathan/essay-grader/internal/nlp"
	"github.com/jonathan/essay-grader/internal/scoring"
	"github.com/jonathan/essay-grader/internal/types"
)

// ProgressEvent represents a progress update during an analysis.
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when analysis progress occurs.
type ProgressCallback func(event ProgressEvent)

// Options configures an Analyzer.
type Options struct {
	// Language is the corrector language code. Empty selects pt-BR.
	Language string
	// ParagraphMode selects paragraph delimiting. Empty selects blank-line blocks.
	ParagraphMode features.ParagraphMode
	// DegradedMode continues with zero corrector errors when the corrector is unavailable.
	DegradedMode bool
	OnProgress   ProgressCallback
	// Now overrides the report timestamp source.
	Now func() time.Time
}

// Analyzer runs the scoring pipeline. It holds no per-request state and is safe
// for concurrent use when its collaborators are.
type Analyzer struct {
	corrector corrector.Client
	tagger    nlp.Tagger
	opts      Options
}

// NewAnalyzer creates an Analyzer. A nil tagger selects the shared rule tagger.
func NewAnalyzer(client corrector.Client, tagger nlp.Tagger, opts Options) *Analyzer {
	if tagger == nil {
		tagger = nlp.Default()
	}
	if opts.Language == "" {
		opts.Language = corrector.DefaultLanguage
	}
	if opts.ParagraphMode == "" {
		opts.ParagraphMode = features.ParagraphModeBlankLine
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Analyzer{corrector: client, tagger: tagger, opts: opts}
}

// WithProgress returns a copy of the analyzer that reports to cb.
func (a *Analyzer) WithProgress(cb ProgressCallback) *Analyzer {
	out := *a
	out.opts.OnProgress = cb
	return &out
}

func (a *Analyzer) emit(step, message string, content any) {
	if a.opts.OnProgress != nil {
		a.opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: CategoryOf(step),
			Message:  message,
			Content:  content,
		})
	}
}

// Analyze validates the request and produces a report.
//
// Errors: ErrInvalidInput (wrapping *types.ValidationError) when the request is
// rejected, *corrector.UnavailableError when the corrector fails outside degraded
// mode, *AnalysisError for any other stage failure.
func (a *Analyzer) Analyze(ctx context.Context, req *types.AnalyzeRequest) (*types.EssayReport, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, &types.ValidationError{Field: "text", Message: "Texto não fornecido"})
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	a.emit(StepValidate, "Request accepted", nil)

	matches, degraded, err := a.check(ctx, req.Text)
	if err != nil {
		return nil, err
	}
	grammarErrors, spellingErrors := corrector.CountErrors(matches)
	a.emit(StepCorrector, fmt.Sprintf("Corrector reported %d grammar and %d spelling issues", grammarErrors, spellingErrors), nil)

	feats, err := features.Extract(ctx, a.tagger, req.Text, a.opts.ParagraphMode)
	if err != nil {
		return nil, &AnalysisError{Stage: StepFeatures, Cause: err}
	}
	a.emit(StepFeatures, fmt.Sprintf("Extracted features: %d paragraphs, %d words", feats.ParagraphCount, feats.WordCount), feats)

	feats.ConnectiveCount = connectives.Count(req.Text)
	a.emit(StepConnectives, fmt.Sprintf("Found %d connectives", feats.ConnectiveCount), nil)

	scores := scoring.Score(scoring.Input{
		GrammarErrors:  grammarErrors,
		SpellingErrors: spellingErrors,
		Features:       feats,
		LastParagraph:  features.ClosingParagraph(req.Text, a.opts.ParagraphMode),
	})
	a.emit(StepScoring, fmt.Sprintf("Total score %d/%d", scores.Total(), scoring.MaxTotal), scores)

	text := feedback.Generate(scores)
	a.emit(StepFeedback, "Feedback generated", nil)

	report := a.assemble(req, matches, scores, feats, text, degraded)
	a.emit(StepReport, "Report ready", nil)
	return report, nil
}

// check calls the corrector and converts its response. In degraded mode an
// unavailable corrector yields no matches and degraded=true.
func (a *Analyzer) check(ctx context.Context, text string) ([]types.CorrectionMatch, bool, error) {
	result, err := a.corrector.Check(ctx, text, a.opts.Language)
	if err != nil {
		if !errors.Is(err, corrector.ErrUnavailable) {
			return nil, false, &AnalysisError{Stage: StepCorrector, Cause: err}
		}
		if !a.opts.DegradedMode {
			return nil, false, err
		}
		log.Printf("[analyze] corrector unavailable, continuing in degraded mode: %v", err)
		return []types.CorrectionMatch{}, true, nil
	}

	if !result.MatchesPresent() {
		log.Printf("[corrector] response has no matches field, counting zero errors")
	}
	matches, skipped := corrector.ToMatches(result)
	if skipped > 0 {
		log.Printf("[corrector] skipped %d malformed matches", skipped)
	}
	return matches, false, nil
}

func (a *Analyzer) assemble(req *types.AnalyzeRequest, matches []types.CorrectionMatch, scores types.CompetencyScores, feats types.TextFeatures, text string, degraded bool) *types.EssayReport {
	corrections := make([]types.Correction, 0, len(matches))
	for _, m := range matches {
		corrections = append(corrections, m.Correction())
	}

	theme := strings.TrimSpace(req.Theme)
	if theme == "" {
		theme = types.DefaultTheme
	}

	return &types.EssayReport{
		ID:          uuid.New(),
		Text:        req.Text,
		Corrections: corrections,
		Score:       types.Score{Total: scores.Total(), Categories: scores},
		Statistics:  types.StatisticsFrom(feats),
		Theme:       theme,
		Title:       req.Title,
		Feedback:    text,
		Degraded:    degraded,
		CreatedAt:   a.opts.Now().UTC(),
	}
}
