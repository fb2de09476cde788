// Package corrector wraps the remote grammar and spelling check service.
package corrector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the public LanguageTool check API.
const DefaultEndpoint = "https://api.languagetool.org/v2/check"

// DefaultLanguage is the language tag sent with every check.
const DefaultLanguage = "pt-BR"

// DefaultTimeout bounds a single check request.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for corrector requests.
const DefaultUserAgent = "EssayGrader/1.0"

// maxResponseBytes caps the response body read from the service.
const maxResponseBytes = 10 << 20

// Client checks text against a grammar/spelling service.
type Client interface {
	Check(ctx context.Context, text, language string) (*CheckResult, error)
}

// Options configures the LanguageTool client.
type Options struct {
	Endpoint  string
	Timeout   time.Duration
	UserAgent string
}

// DefaultOptions returns sensible defaults for the public LanguageTool API.
func DefaultOptions() *Options {
	return &Options{
		Endpoint:  DefaultEndpoint,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// LanguageToolClient implements Client against the LanguageTool HTTP API.
type LanguageToolClient struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

// NewLanguageToolClient creates a client. Zero-valued options fall back to defaults.
func NewLanguageToolClient(opts *Options) *LanguageToolClient {
	defaults := DefaultOptions()
	if opts == nil {
		opts = defaults
	}
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = defaults.Endpoint
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaults.Timeout
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaults.UserAgent
	}

	return &LanguageToolClient{
		endpoint:   endpoint,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the URL the client posts to.
func (c *LanguageToolClient) Endpoint() string {
	return c.endpoint
}

// Check posts text to the service and decodes its matches.
// Any transport failure, timeout or non-2xx status is reported as *UnavailableError.
func (c *LanguageToolClient) Check(ctx context.Context, text, language string) (*CheckResult, error) {
	if language == "" {
		language = DefaultLanguage
	}

	form := url.Values{}
	form.Set("text", text)
	form.Set("language", language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &UnavailableError{Endpoint: c.endpoint, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Endpoint: c.endpoint, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &UnavailableError{Endpoint: c.endpoint, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UnavailableError{
			Endpoint:   c.endpoint,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	var result CheckResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &UnavailableError{Endpoint: c.endpoint, StatusCode: resp.StatusCode, Message: "response is not valid JSON", Cause: err}
	}
	return &result, nil
}
