package morph

import (
	"context"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"JaundiceRate/internal/ports"
)

// checkEvery bounds how many segmented tokens we process between context
// checks, so a deadline can cut an oversized document short.
const checkEvery = 512

// Tokenizer splits plain text into normalized word forms using Unicode
// word segmentation. It handles Cyrillic and Latin text alike.
type Tokenizer struct{}

var _ ports.Tokenizer = (*Tokenizer)(nil)

// NewTokenizer builds the default tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Split segments text into words, drops punctuation-only tokens, and
// normalizes each word. It aborts with the context error once the stage
// deadline passes.
func (t *Tokenizer) Split(ctx context.Context, text string) ([]string, error) {
	var tokens []string

	seen := 0
	segments := words.FromString(text)
	for segments.Next() {
		seen++
		if seen%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		raw := segments.Value()
		if !isWordlike(raw) {
			continue
		}
		tokens = append(tokens, t.Normalize(raw))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}

// Normalize maps a word to its canonical lowercase form. The dictionary
// loader applies the same function, so lexicon membership stays consistent.
func (t *Tokenizer) Normalize(word string) string {
	word = norm.NFC.String(word)
	word = cases.Fold().String(word)
	// Russian dictionaries rarely distinguish е from ё.
	word = strings.ReplaceAll(word, "ё", "е")
	return strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func isWordlike(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
