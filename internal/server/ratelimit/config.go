package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the limit applied to one route. A Path ending in "/" matches
// every path under it.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Default         EndpointConfig
	Endpoints       []EndpointConfig
	CleanupInterval time.Duration
	IdleTTL         time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
}

// DefaultConfig returns the built-in limits without consulting the environment.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		Default:         EndpointConfig{Limit: 600, Window: time.Minute},
		Endpoints:       DefaultEndpointConfigs(30, time.Minute),
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
	}
}

// DefaultEndpointConfigs returns the per-route limits. Analysis routes call the
// remote corrector and share the analyze limit.
func DefaultEndpointConfigs(analyzeLimit int, analyzeWindow time.Duration) []EndpointConfig {
	burst := max(1, analyzeLimit/6)
	return []EndpointConfig{
		{Path: "/api/analyze/text", Method: "POST", Limit: analyzeLimit, Window: analyzeWindow, Burst: burst},
		{Path: "/api/analyze/stream", Method: "POST", Limit: analyzeLimit, Window: analyzeWindow, Burst: burst},
		{Path: "/api/save-results", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/health", Method: "GET"},
		{Path: "/", Method: "GET"},
	}
}

// LoadConfig reads RATE_LIMIT_* variables on top of DefaultConfig.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = envBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	if !cfg.Enabled {
		return cfg
	}

	cfg.Default.Limit = envInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.Default.Limit)
	cfg.Default.Window = envDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.Default.Window)
	cfg.Endpoints = DefaultEndpointConfigs(
		envInt("RATE_LIMIT_ANALYZE_LIMIT", 30),
		envDuration("RATE_LIMIT_ANALYZE_WINDOW", time.Minute),
	)
	cfg.CleanupInterval = envDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.Whitelist = parseIPList(os.Getenv("RATE_LIMIT_WHITELIST"))
	cfg.Blacklist = parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST"))
	return cfg
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func parseIPList(list string) map[string]bool {
	out := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			out[ip] = true
		}
	}
	return out
}
