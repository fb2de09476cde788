// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Tagger backends.
const (
	TaggerRules  = "rules"
	TaggerGemini = "gemini"
)

// Paragraph counting modes, mirrored from the features package to keep this package a leaf.
const (
	ParagraphModeBlankLine = "blank_line"
	ParagraphModeNewline   = "newline"
)

// Defaults applied by Default and MergeWithDefaults.
const (
	DefaultLanguageToolURL = "https://api.languagetool.org/v2/check"
	DefaultLanguage        = "pt-BR"
	DefaultTimeout         = 30 * time.Second
	DefaultResultsDir      = "resultados_redacoes"
	DefaultPort            = 8080
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Corrector
	LanguageToolURL string `json:"languagetool_url,omitempty"` // LanguageTool check endpoint
	TimeoutSeconds  int    `json:"timeout_seconds,omitempty"`  // Corrector request timeout
	Language        string `json:"language,omitempty"`         // Corrector language code

	// Analysis
	ParagraphMode string `json:"paragraph_mode,omitempty"` // "blank_line" or "newline"
	DegradedMode  bool   `json:"degraded_mode,omitempty"`  // Score with zero errors when the corrector is down
	Tagger        string `json:"tagger,omitempty"`         // "rules" or "gemini"
	APIKey        string `json:"api_key,omitempty"`        // Gemini API key
	Model         string `json:"model,omitempty"`          // Gemini model for the tagger; empty keeps the default

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	ResultsDir  string `json:"results_dir,omitempty"`  // Root of the saved-results archive

	// Server
	Port    int  `json:"port,omitempty"`
	Verbose bool `json:"verbose,omitempty"`
}

// Default returns a configuration holding every default value.
func Default() Config {
	return Config{
		LanguageToolURL: DefaultLanguageToolURL,
		TimeoutSeconds:  int(DefaultTimeout / time.Second),
		Language:        DefaultLanguage,
		ParagraphMode:   ParagraphModeBlankLine,
		Tagger:          TaggerRules,
		ResultsDir:      DefaultResultsDir,
		Port:            DefaultPort,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.ParagraphMode {
	case "", ParagraphModeBlankLine, ParagraphModeNewline:
	default:
		return fmt.Errorf("config error: unknown 'paragraph_mode' %q", c.ParagraphMode)
	}

	switch c.Tagger {
	case "", TaggerRules, TaggerGemini:
	default:
		return fmt.Errorf("config error: unknown 'tagger' %q", c.Tagger)
	}

	return nil
}

// ApplyEnv overrides fields from the environment. Unset variables leave fields untouched.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LANGUAGETOOL_URL"); v != "" {
		c.LanguageToolURL = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("ESSAY_RESULTS_DIR"); v != "" {
		c.ResultsDir = v
	}
	if v := os.Getenv("ESSAY_PARAGRAPH_MODE"); v != "" {
		c.ParagraphMode = v
	}
	if v, err := strconv.ParseBool(os.Getenv("ESSAY_DEGRADED_MODE")); err == nil {
		c.DegradedMode = v
	}
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		c.Port = v
	}
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.LanguageToolURL == "" {
		result.LanguageToolURL = defaults.LanguageToolURL
	}
	if result.Language == "" {
		result.Language = defaults.Language
	}
	if result.ParagraphMode == "" {
		result.ParagraphMode = defaults.ParagraphMode
	}
	if result.Tagger == "" {
		result.Tagger = defaults.Tagger
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ResultsDir == "" {
		result.ResultsDir = defaults.ResultsDir
	}

	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bools cannot distinguish unset from false; CLI flags win.

	return result
}

// Timeout returns the corrector timeout as a duration, falling back to DefaultTimeout.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
