// Package llm wraps the hosted language model used for optional linguistic annotation.
package llm

import (
	"os"
	"strings"
)

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for token-level annotation such as tagging.
	TierLite ModelTier = "lite"
	// TierStandard is for structured output over whole essays.
	TierStandard ModelTier = "standard"
)

// Provider names a model provider.
type Provider string

// ProviderGemini is the Google Gemini provider, the only one wired.
const ProviderGemini Provider = "gemini"

// APIKeyEnv is the environment variable holding the model API key.
const APIKeyEnv = "GEMINI_API_KEY"

// Config holds the model configuration.
type Config struct {
	Provider    Provider
	Models      map[ModelTier]string
	Temperature float32
}

// DefaultConfig returns the Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		Temperature: 0,
	}
}

// GetModel returns the model for a tier, falling back to standard and then lite.
func (c *Config) GetModel(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if model, ok := c.Models[t]; ok && model != "" {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of the config with the tier's model replaced.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{Provider: c.Provider, Temperature: c.Temperature, Models: make(map[ModelTier]string, len(c.Models)+1)}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}

// APIKeyFromEnv returns the trimmed API key, or "" when unset.
func APIKeyFromEnv() string {
	return strings.TrimSpace(os.Getenv(APIKeyEnv))
}
