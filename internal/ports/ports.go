package ports

import (
	"context"
	"errors"
)

// ErrNoArticle is returned by extractors when the content is retrieved but
// not recognized as an article page.
var ErrNoArticle = errors.New("no article found in content")

// Fetcher retrieves raw content for a URL. Implementations must respect
// ctx cancellation so a stage deadline can cut a slow fetch short.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Extractor converts raw HTML into plain article text. It reports
// ErrNoArticle when the page is not a recognized article.
type Extractor interface {
	Extract(html string) (string, error)
}

// Tokenizer splits plain text into normalized word forms. Tokenizing a
// large document may be expensive, so implementations must observe ctx
// and abort once its deadline passes.
type Tokenizer interface {
	Split(ctx context.Context, text string) ([]string, error)
	Normalize(word string) string
}
