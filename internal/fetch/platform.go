package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known essay hosting site.
type Platform string

const (
	// PlatformGoogleDocs is a Google Docs document published to the web
	PlatformGoogleDocs Platform = "google_docs"
	// PlatformMedium is a Medium post
	PlatformMedium Platform = "medium"
	// PlatformBlogger is a Blogger/Blogspot post
	PlatformBlogger Platform = "blogger"
	// PlatformWordPress is a WordPress post
	PlatformWordPress Platform = "wordpress"
	// PlatformUnknown is an unrecognized site
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the hosting site from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	switch {
	case host == "docs.google.com":
		return PlatformGoogleDocs
	case host == "medium.com" || strings.HasSuffix(host, ".medium.com"):
		return PlatformMedium
	case strings.HasSuffix(host, ".blogspot.com") || host == "www.blogger.com":
		return PlatformBlogger
	case strings.HasSuffix(host, ".wordpress.com"):
		return PlatformWordPress
	default:
		return PlatformUnknown
	}
}

// DefaultContentSelectors returns standard selectors for general web content.
func DefaultContentSelectors() []string {
	return []string{
		"main",
		"article",
		".essay",
		"#essay",
		".content",
		"#content",
	}
}

// PlatformContentSelectors returns content selectors optimized for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGoogleDocs:
		return []string{"#contents", ".doc-content"}
	case PlatformMedium:
		return []string{"article section", "article"}
	case PlatformBlogger:
		return []string{".post-body", ".entry-content", "article"}
	case PlatformWordPress:
		return []string{".entry-content", ".post-content", "article"}
	default:
		return DefaultContentSelectors()
	}
}
