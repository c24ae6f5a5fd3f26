package lexicon

import "sync/atomic"

// Store holds the current lexicon and allows atomic replacement between
// batches. Pipelines always work against the snapshot taken at batch
// start, so a reload never mutates a lexicon already in use.
type Store struct {
	current atomic.Pointer[Lexicon]
}

// NewStore builds a store seeded with the initial lexicon.
func NewStore(initial *Lexicon) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Snapshot returns the lexicon to use for one batch.
func (s *Store) Snapshot() *Lexicon {
	return s.current.Load()
}

// Replace swaps in a freshly loaded lexicon.
func (s *Store) Replace(lex *Lexicon) {
	if lex != nil {
		s.current.Store(lex)
	}
}
