package sanitize

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"JaundiceRate/internal/ports"
)

const inosmiNoiseSelectors = "script, style, iframe, figure, .article__aggr, .article__share, .article__meta, .article__info"

// Inosmi sanitizes inosmi.ru article pages down to their plain text body.
type Inosmi struct{}

var _ ports.Extractor = (*Inosmi)(nil)

// NewInosmi builds the inosmi.ru sanitizer.
func NewInosmi() *Inosmi {
	return &Inosmi{}
}

// Extract returns the article body text or ErrNoArticle when the page does
// not carry the inosmi article markup.
func (s *Inosmi) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	body := doc.Find("div.article__text, article").First()
	if body.Length() == 0 {
		return "", ports.ErrNoArticle
	}

	body.Find(inosmiNoiseSelectors).Remove()

	var parts []string
	body.Find("p, h1, h2, h3").Each(func(i int, sel *goquery.Selection) {
		if text := normalizeText(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		// Some layouts put text directly into the container.
		if text := normalizeText(body.Text()); text != "" {
			parts = append(parts, text)
		}
	}

	if len(parts) == 0 {
		return "", ports.ErrNoArticle
	}

	return strings.Join(parts, "\n\n"), nil
}

func normalizeText(text string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(text), " "))
}
