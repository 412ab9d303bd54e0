package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/jwojnowski/linefold/pkg/partition"
	"github.com/jwojnowski/linefold/pkg/style"
	"github.com/jwojnowski/linefold/pkg/token"
)

// testStyle pins every option so that tests keep passing when defaults
// change.
func testStyle() style.Style {
	return style.Style{
		IndentationSpaces:      2,
		WrapSpaces:             4,
		ColumnLimit:            40,
		OverColumnLimitPenalty: 100,
		LineBreakPenalty:       2,
	}
}

// buildSample tokenizes a multi-line sample the way upstream partitioning
// would: tokens are maximal runs of non-space characters, each token
// requires the spaces that preceded it on its line, and every line's first
// token except the very first carries a must-wrap decision. One unwrapped
// line is produced per sample line.
func buildSample(sample string) (*token.Store, []partition.Line) {
	store := token.NewStore()
	var lines []partition.Line

	for lineIdx, raw := range strings.Split(sample, "\n") {
		lineStart := store.Len()
		i := 0
		for i < len(raw) {
			spaces := 0
			for i < len(raw) && raw[i] == ' ' {
				spaces++
				i++
			}
			start := i
			for i < len(raw) && raw[i] != ' ' {
				i++
			}
			if start == i {
				break
			}
			spacing := token.Spacing{SpacesRequired: spaces}
			if store.Len() == lineStart && lineIdx > 0 {
				spacing.Break = token.MustWrap
			}
			store.Add(raw[start:i], spacing)
		}
		lines = append(lines, partition.Line{
			Tokens: token.Range{Start: lineStart, End: store.Len()},
		})
	}
	return store, lines
}

// lineItem builds a Line layout item with explicit indentation.
func lineItem(line partition.Line, store *token.Store, indentation int) Item {
	item := LineItem(line, store)
	item.Indentation = indentation
	return item
}

// treesEqual compares layout trees structurally: item fields, token ranges
// of Line items, and children.
func treesEqual(a, b *Tree) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Item.Kind != b.Item.Kind ||
		a.Item.Indentation != b.Item.Indentation ||
		a.Item.SpacesBefore != b.Item.SpacesBefore ||
		a.Item.MustWrap != b.Item.MustWrap {
		return false
	}
	if a.Item.Kind == LineType && a.Item.TokenRange() != b.Item.TokenRange() {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !treesEqual(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// expectFunctionsEqual compares layout functions segment by segment:
// columns, spans, and gradients exactly, intercepts within a small
// tolerance, layouts structurally.
func expectFunctionsEqual(t *testing.T, actual, expected Function) {
	t.Helper()

	if len(actual) != len(expected) {
		t.Errorf("invalid number of segments: got %d, want %d\nActual:\n%s\nExpected:\n%s",
			len(actual), len(expected), actual, expected)
		return
	}

	for i := range expected {
		if actual[i].Column != expected[i].Column {
			t.Errorf("segment[%d]: column = %d, want %d", i, actual[i].Column, expected[i].Column)
		}
		if math.Abs(actual[i].Intercept-expected[i].Intercept) > 1e-3 {
			t.Errorf("segment[%d]: intercept = %v, want %v", i, actual[i].Intercept, expected[i].Intercept)
		}
		if actual[i].Gradient != expected[i].Gradient {
			t.Errorf("segment[%d]: gradient = %d, want %d", i, actual[i].Gradient, expected[i].Gradient)
		}
		if actual[i].Span != expected[i].Span {
			t.Errorf("segment[%d]: span = %d, want %d", i, actual[i].Span, expected[i].Span)
		}
		if !treesEqual(actual[i].Layout, expected[i].Layout) {
			t.Errorf("segment[%d]: invalid layout:\ngot:\n%s\nwant:\n%s",
				i, actual[i].Layout.Format(2), expected[i].Layout.Format(2))
		}
	}

	if t.Failed() {
		t.Logf("Actual:\n%s\nExpected:\n%s", actual, expected)
	}
}

// assertWellFormed checks the structural layout-function invariants that
// hold for every function produced by the algebra: a knot at column zero,
// strictly increasing knots, and cost continuity across adjacent segments.
func assertWellFormed(t *testing.T, f Function) {
	t.Helper()
	if f.Empty() {
		return
	}
	if f[0].Column != 0 {
		t.Errorf("first knot at column %d, want 0", f[0].Column)
	}
	for i := 1; i < len(f); i++ {
		if f[i].Column <= f[i-1].Column {
			t.Errorf("knots not strictly increasing: segment[%d] column %d after %d",
				i, f[i].Column, f[i-1].Column)
		}
		left := f[i-1].CostAt(f[i].Column)
		if math.Abs(left-f[i].Intercept) > 1e-3 {
			t.Errorf("discontinuity at knot %d: left cost %v, right intercept %v",
				f[i].Column, left, f[i].Intercept)
		}
	}
}
