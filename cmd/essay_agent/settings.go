package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/essay-grader/internal/config"
	"github.com/jonathan/essay-grader/internal/corrector"
	"github.com/jonathan/essay-grader/internal/features"
	"github.com/jonathan/essay-grader/internal/llm"
	"github.com/jonathan/essay-grader/internal/nlp"
	"github.com/jonathan/essay-grader/internal/pipeline"
)

var (
	configPath      string
	languageToolURL string
	paragraphMode   string
	taggerName      string
	degradedMode    bool
	apiKey          string
	modelName       string
	verbose         bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	flags.StringVar(&languageToolURL, "languagetool-url", "", "LanguageTool check endpoint (defaults to LANGUAGETOOL_URL or the public API)")
	flags.StringVar(&paragraphMode, "paragraph-mode", "", "Paragraph counting: blank_line or newline")
	flags.StringVar(&taggerName, "tagger", "", "Tagger backend: rules or gemini")
	flags.BoolVar(&degradedMode, "degraded", false, "Score with zero corrector errors when the corrector is unavailable")
	flags.StringVar(&apiKey, "api-key", "", "Gemini API Key for --tagger gemini (defaults to GEMINI_API_KEY env var)")
	flags.StringVar(&modelName, "model", "", "Gemini model for --tagger gemini (defaults to GEMINI_MODEL or the lite tier model)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print detailed output")
}

// resolveConfig layers config file, environment and explicitly set flags over the defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("languagetool-url") {
		cfg.LanguageToolURL = languageToolURL
	}
	if flags.Changed("paragraph-mode") {
		cfg.ParagraphMode = paragraphMode
	}
	if flags.Changed("tagger") {
		cfg.Tagger = taggerName
	}
	if flags.Changed("degraded") {
		cfg.DegradedMode = degradedMode
	}
	if flags.Changed("api-key") {
		cfg.APIKey = apiKey
	}
	if flags.Changed("model") {
		cfg.Model = modelName
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}

	cfg = cfg.MergeWithDefaults(config.Default())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildAnalyzer wires the corrector and tagger selected by cfg. The returned
// cleanup releases the Gemini client when one was created.
func buildAnalyzer(ctx context.Context, cfg config.Config, offline bool) (*pipeline.Analyzer, func(), error) {
	cleanup := func() {}

	var client corrector.Client
	if offline {
		client = corrector.NewOfflineClient()
	} else {
		client = corrector.NewLanguageToolClient(&corrector.Options{
			Endpoint: cfg.LanguageToolURL,
			Timeout:  cfg.Timeout(),
		})
	}

	mode, err := features.ParseParagraphMode(cfg.ParagraphMode)
	if err != nil {
		return nil, cleanup, err
	}

	var tagger nlp.Tagger
	if cfg.Tagger == config.TaggerGemini {
		key := cfg.APIKey
		if key == "" {
			key = llm.APIKeyFromEnv()
		}
		geminiClient, err := llm.NewGeminiClient(ctx, geminiConfig(cfg), key)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		cleanup = func() { _ = geminiClient.Close() }
		tagger = nlp.NewGeminiTagger(geminiClient)
	}

	analyzer := pipeline.NewAnalyzer(client, tagger, pipeline.Options{
		Language:      cfg.Language,
		ParagraphMode: mode,
		DegradedMode:  cfg.DegradedMode,
	})
	return analyzer, cleanup, nil
}

// geminiConfig returns the model configuration for the tagger, applying cfg.Model
// to the lite tier the tagger uses.
func geminiConfig(cfg config.Config) *llm.Config {
	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(llm.TierLite, cfg.Model)
	}
	return llmCfg
}
