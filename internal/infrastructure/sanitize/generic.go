package sanitize

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"JaundiceRate/internal/ports"
)

const (
	// Paragraphs shorter than this are treated as navigation or boilerplate.
	minParagraphLength = 20

	genericContentSelectors = "article, main, div[role='main'], #main, #content, .post-content, .article-body, .entry-content"
	genericNoiseSelectors   = "header, footer, nav, aside, script, style, form, .sidebar, .related-posts, .social-share, .comments, .advertisement"
)

// Generic is a best-effort sanitizer for hosts without a dedicated
// implementation. It looks for common article containers and rejects pages
// that yield no meaningful body text.
type Generic struct{}

var _ ports.Extractor = (*Generic)(nil)

// NewGeneric builds the fallback sanitizer.
func NewGeneric() *Generic {
	return &Generic{}
}

// Extract collects paragraph-like text from the main content area, or
// returns ErrNoArticle when nothing article-shaped is found.
func (s *Generic) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	content := doc.Find(genericContentSelectors).First()
	if content.Length() == 0 {
		content = doc.Find("body")
	}
	content.Find(genericNoiseSelectors).Remove()

	var parts []string
	content.Find("p, h1, h2, h3, h4, li, blockquote").Each(func(i int, sel *goquery.Selection) {
		text := normalizeText(sel.Text())
		if text == "" {
			return
		}
		if sel.Is("p") && len(text) < minParagraphLength {
			return
		}
		parts = append(parts, text)
	})

	if len(parts) == 0 {
		return "", ports.ErrNoArticle
	}

	return strings.Join(parts, "\n\n"), nil
}
