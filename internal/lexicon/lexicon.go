package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Normalizer maps a raw dictionary word to its normalized form. The same
// function must be used for article tokens, otherwise membership checks
// are meaningless.
type Normalizer func(string) string

// Lexicon is the set of charged words shared read-only by every pipeline
// in a batch. It is never written after load.
type Lexicon struct {
	words   []string
	members map[string]struct{}
}

// New builds a lexicon from already-normalized words, preserving order and
// skipping duplicates and blanks.
func New(words []string) *Lexicon {
	l := &Lexicon{members: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := l.members[w]; ok {
			continue
		}
		l.members[w] = struct{}{}
		l.words = append(l.words, w)
	}
	return l
}

// Load reads charged-word files (one word per line, blank lines skipped),
// normalizes each word, and combines them into a single lexicon. Polarity
// of the source file does not matter for scoring, only membership.
func Load(normalize Normalizer, paths ...string) (*Lexicon, error) {
	var words []string
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open dictionary %s: %w", path, err)
		}

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			word := strings.TrimSpace(scanner.Text())
			if word == "" {
				continue
			}
			if normalize != nil {
				word = normalize(word)
			}
			words = append(words, word)
		}

		if scanErr := scanner.Err(); scanErr != nil {
			_ = file.Close()
			return nil, fmt.Errorf("read dictionary %s: %w", path, scanErr)
		}
		if closeErr := file.Close(); closeErr != nil {
			return nil, fmt.Errorf("close dictionary %s: %w", path, closeErr)
		}
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("charged dictionaries %v contain no words", paths)
	}

	return New(words), nil
}

// Contains reports whether the normalized word is charged.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.members[word]
	return ok
}

// Words returns the charged words in load order.
func (l *Lexicon) Words() []string {
	return l.words
}

// Len returns the number of distinct charged words.
func (l *Lexicon) Len() int {
	return len(l.words)
}
