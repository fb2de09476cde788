package nlp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/essay-grader/internal/llm"
	"github.com/jonathan/essay-grader/internal/prompts"
)

var annotationSchema = llm.Schema{
	Instructions: prompts.MustGet("nlp.json", "tagger-instructions"),
	Fields: []llm.Field{
		{Name: "adjectives", Type: "[]string", Description: "adjetivos"},
		{Name: "coordinating_conjunctions", Type: "[]string", Description: "conjunções coordenativas"},
		{Name: "subordinating_conjunctions", Type: "[]string", Description: "conjunções subordinativas"},
		{Name: "entities", Type: "[]{text, label}", Description: "entidades nomeadas"},
	},
}

type annotation struct {
	Adjectives                []string `json:"adjectives"`
	CoordinatingConjunctions  []string `json:"coordinating_conjunctions"`
	SubordinatingConjunctions []string `json:"subordinating_conjunctions"`
	Entities                  []struct {
		Text  string `json:"text"`
		Label string `json:"label"`
	} `json:"entities"`
}

// GeminiTagger annotates text with a hosted model. Missing lists in the model
// output are treated as empty. Tokens carry no offsets. Output that is not valid
// JSON is retried once with the parse error appended to the prompt.
type GeminiTagger struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewGeminiTagger wraps an llm client.
func NewGeminiTagger(client llm.Client) *GeminiTagger {
	return &GeminiTagger{client: client, tier: llm.TierLite}
}

// Tag asks the model for an annotation and converts it into a Document.
func (g *GeminiTagger) Tag(ctx context.Context, text string) (*Document, error) {
	prompt := llm.BuildPrompt(annotationSchema, text)
	ann, err := g.annotate(ctx, prompt)
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		hint := prompts.Format(prompts.MustGet("nlp.json", "tagger-retry-hint"), map[string]string{"Error": syntaxErr.Error()})
		ann, err = g.annotate(ctx, prompt+"\n\n"+hint)
	}
	if err != nil {
		return nil, err
	}

	doc := &Document{Tokens: []Token{}, Entities: []Entity{}}
	appendTokens := func(words []string, pos POS) {
		for _, w := range words {
			if w = strings.TrimSpace(w); w != "" {
				doc.Tokens = append(doc.Tokens, Token{Text: w, POS: pos, Start: -1, End: -1})
			}
		}
	}
	appendTokens(ann.Adjectives, POSAdjective)
	appendTokens(ann.CoordinatingConjunctions, POSCoordConj)
	appendTokens(ann.SubordinatingConjunctions, POSSubordConj)

	for _, e := range ann.Entities {
		if strings.TrimSpace(e.Text) == "" {
			continue
		}
		doc.Entities = append(doc.Entities, Entity{Text: e.Text, Label: e.Label, Start: -1, End: -1})
	}
	return doc, nil
}

func (g *GeminiTagger) annotate(ctx context.Context, prompt string) (*annotation, error) {
	raw, err := g.client.GenerateJSON(ctx, prompt, g.tier)
	if err != nil {
		return nil, fmt.Errorf("tagger request failed: %w", err)
	}

	var ann annotation
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &ann); err != nil {
		return nil, fmt.Errorf("tagger returned invalid JSON: %w", err)
	}
	return &ann, nil
}
