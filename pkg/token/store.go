package token

import (
	"strings"
)

// Store is a flat, mutable sequence of tokens keyed by position.
//
// Partition lines reference tokens by [Range] rather than holding them, so
// a single Store backs an entire partition tree. The store is the one
// mutable output channel of the layout engine: the tree reconstructor
// finalizes break decisions in place.
//
// A Store is not safe for concurrent mutation; optimize disjoint partition
// trees with disjoint stores.
type Store struct {
	tokens []Token
}

// NewStore creates a store holding the given tokens.
func NewStore(tokens ...Token) *Store {
	return &Store{tokens: tokens}
}

// Add appends a token and returns its position.
func (s *Store) Add(text string, before Spacing) int {
	s.tokens = append(s.tokens, Token{Text: text, Before: before})
	return len(s.tokens) - 1
}

// Len returns the number of tokens in the store.
func (s *Store) Len() int { return len(s.tokens) }

// At returns a pointer to the token at position i for in-place mutation.
func (s *Store) At(i int) *Token { return &s.tokens[i] }

// All returns the full token range of the store.
func (s *Store) All() Range { return Range{Start: 0, End: len(s.tokens)} }

// Text renders the tokens of r joined with their required interior spacing.
// The first token's own leading spaces are not included; they belong to
// whatever precedes the range.
func (s *Store) Text(r Range) string {
	var b strings.Builder
	for i := r.Start; i < r.End; i++ {
		if i > r.Start {
			for n := 0; n < s.tokens[i].Before.SpacesRequired; n++ {
				b.WriteByte(' ')
			}
		}
		b.WriteString(s.tokens[i].Text)
	}
	return b.String()
}

// SpanWidth returns the rendered width of the tokens of r in columns,
// counting interior required spacing but not the first token's own leading
// spaces. This is the width a line containing exactly these tokens adds
// past its indentation.
func (s *Store) SpanWidth(r Range) int {
	width := 0
	for i := r.Start; i < r.End; i++ {
		if i > r.Start {
			width += s.tokens[i].Before.SpacesRequired
		}
		width += s.tokens[i].Width()
	}
	return width
}
