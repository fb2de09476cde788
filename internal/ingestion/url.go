package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/essay-grader/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the page cannot be fetched
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when no text can be extracted from the page
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// FormatURL marks essays read from a web page.
const FormatURL Format = "url"

// URLOptions configures ReadEssayFromURL.
type URLOptions struct {
	// UseBrowser re-renders the page in headless Chrome when the HTTP body holds too little text.
	UseBrowser bool
	Timeout    time.Duration
	Verbose    bool
}

// ReadEssayFromURL fetches a published essay and cleans its text.
func ReadEssayFromURL(ctx context.Context, urlStr string, opts URLOptions) (*Essay, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = fetch.DefaultTimeout
	}

	platform := fetch.DetectPlatform(urlStr)
	selectors := fetch.PlatformContentSelectors(platform)
	if opts.Verbose {
		log.Printf("[VERBOSE] URL: %s (platform %s)", urlStr, platform)
	}

	fetchOpts := fetch.DefaultOptions()
	fetchOpts.Timeout = opts.Timeout
	result, err := fetch.URL(ctx, urlStr, fetchOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	text, err := ExtractHTMLTextWith(result.HTML, selectors)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		if opts.Verbose {
			log.Printf("[VERBOSE] Content too short (%d chars), falling back to browser rendering", len([]rune(text)))
		}
		rendered, browserErr := fetch.WithBrowser(ctx, urlStr, opts.Timeout, opts.Verbose)
		if browserErr != nil {
			log.Printf("[browser] Rendering failed, using HTTP content: %v", browserErr)
		} else if browserText, err := ExtractHTMLTextWith(rendered, selectors); err == nil {
			text = browserText
		}
	}

	text = CleanText(text)
	if text == "" {
		return nil, fmt.Errorf("%w: no text found at %s", ErrContentExtractionFailed, urlStr)
	}
	return &Essay{Path: urlStr, Format: FormatURL, Text: text, Hash: computeHash(text)}, nil
}
