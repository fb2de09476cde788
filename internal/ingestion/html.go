package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/essay-grader/internal/fetch"
)

// ExtractHTMLText returns the essay text of an HTML document. Paragraph elements
// inside the main content become blank-line separated paragraphs; without any,
// the content's text is used as is.
func ExtractHTMLText(html string) (string, error) {
	return ExtractHTMLTextWith(html, fetch.DefaultContentSelectors())
}

// ExtractHTMLTextWith is ExtractHTMLText with the content selectors tried in order.
func ExtractHTMLTextWith(html string, selectors []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("nav, footer, header, script, style, noscript, aside").Remove()

	content := doc.Find("body")
	for _, selector := range selectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}

	var paragraphs []string
	content.Find("h1, h2, h3, p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) == 0 {
		return strings.TrimSpace(content.Text()), nil
	}
	return strings.Join(paragraphs, "\n\n"), nil
}
