// Package token provides the token model the layout engine operates on.
//
// Upstream tokenization and partitioning are out of scope for this module;
// what arrives here is a flat sequence of pre-measured tokens, each carrying
// a spacing record that says how many spaces it requires before itself and
// whether the break decision in front of it has already been made. The
// layout engine reads token widths and required spacing to cost candidate
// layouts, and writes final break decisions back into the [Store] once a
// layout has been chosen.
//
// # Widths
//
// Token widths are rendered display widths in terminal columns, measured
// with go-runewidth, not byte counts. The cost model of pkg/layout is
// defined over columns, so East Asian wide runes and combining marks are
// accounted for correctly.
//
// # Spacing records
//
// Each token's [Spacing] has two parts:
//
//   - SpacesRequired: spaces inserted before the token when it is appended
//     to the token preceding it on the same line.
//   - Break: the inter-token break decision. Upstream leaves most of these
//     [Undecided]; the reconstructor finalizes every token it re-lines to
//     either [MustAppend] or [MustWrap].
package token

import (
	"github.com/mattn/go-runewidth"
)

// BreakDecision describes whether a line break is taken before a token.
type BreakDecision int

// Break decisions, in the order upstream produces them.
const (
	// Undecided means no layout decision has been made yet.
	Undecided BreakDecision = iota

	// MustAppend pins the token to the same line as its predecessor.
	MustAppend

	// MustWrap forces a line break before the token.
	MustWrap
)

// String returns a short lowercase name for the decision.
func (d BreakDecision) String() string {
	switch d {
	case Undecided:
		return "undecided"
	case MustAppend:
		return "must-append"
	case MustWrap:
		return "must-wrap"
	}
	return "???"
}

// Spacing is the per-token spacing record.
type Spacing struct {
	// SpacesRequired is the number of spaces preceding the token when it is
	// appended to the previous token on the same line.
	SpacesRequired int

	// Break is the break decision in front of the token.
	Break BreakDecision
}

// Token is a single source token with its leading spacing record.
type Token struct {
	Text   string
	Before Spacing
}

// Width returns the rendered width of the token text in columns.
func (t Token) Width() int {
	return runewidth.StringWidth(t.Text)
}

// Range is a half-open interval [Start, End) of token positions in a Store.
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range covers no tokens.
func (r Range) Empty() bool { return r.End <= r.Start }

// Len returns the number of tokens covered by the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start
}
