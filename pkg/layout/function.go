package layout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jwojnowski/linefold/pkg/errors"
)

// =============================================================================
// Layout Function Segments
// =============================================================================

// Segment is one linear piece of a layout function. It applies to starting
// columns in [Column, next segment's Column) and describes the cost of the
// concrete layout that is optimal on that interval:
//
//	cost(x) = Intercept + Gradient * (x - Column)
//
// Span is the width of the last line the layout produces; an appended
// neighbor begins at the span's end plus its own leading spacing.
// Gradient stays integral throughout the algebra so that crossover
// comparisons in Choice are exact; only intercepts accumulate as floats.
type Segment struct {
	Column    int
	Layout    *Tree
	Span      int
	Intercept float64
	Gradient  int
}

// CostAt evaluates the segment's linear cost at column.
func (s Segment) CostAt(column int) float64 {
	return s.Intercept + float64(s.Gradient*(column-s.Column))
}

// String renders the segment in the debug printer format.
func (s Segment) String() string {
	return fmt.Sprintf("[%3d] (%.3f + %d*x), span: %d, layout:\n%s",
		s.Column, s.Intercept, s.Gradient, s.Span, s.Layout.Format(6))
}

// =============================================================================
// Layout Functions
// =============================================================================

// Function is a piecewise-linear cost function over starting column,
// stored as segments sorted strictly by knot column. A non-empty function's
// first knot is always column 0, so every non-negative column is covered.
type Function []Segment

// Empty reports whether the function has no segments.
func (f Function) Empty() bool { return len(f) == 0 }

// AtOrToTheLeftOf returns the index of the segment whose half-open knot
// interval contains column. Calling it on an empty function is a contract
// violation and panics.
func (f Function) AtOrToTheLeftOf(column int) int {
	if f.Empty() {
		panic(errors.New(errors.ErrCodeInternal, "segment lookup on an empty layout function"))
	}
	// First segment with a knot past the column; the one before covers it.
	i := sort.Search(len(f), func(i int) bool { return f[i].Column > column })
	if i == 0 {
		panic(errors.New(errors.ErrCodeInternal,
			"segment lookup before the first knot: column %d, first knot %d", column, f[0].Column))
	}
	return i - 1
}

// CostAt evaluates the function at column.
func (f Function) CostAt(column int) float64 {
	return f[f.AtOrToTheLeftOf(column)].CostAt(column)
}

// MustWrap reports whether the function's layouts cannot share a line with
// a predecessor. All segments of one function agree on this; the first
// segment is authoritative.
func (f Function) MustWrap() bool {
	if f.Empty() {
		return false
	}
	return f[0].Layout.Item.MustWrap
}

// String renders the function in the debug printer format:
//
//	{
//	  [  0] (   0.000 +    0*x), span:  19, layout:
//	        { ([ This line is short. ], length: 19, indentation: 0, spacing: 0, must wrap: no) }
//	}
func (f Function) String() string {
	if f.Empty() {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, s := range f {
		fmt.Fprintf(&b, "  [%3d] (%8.3f + %4d*x), span: %3d, layout:\n%s\n",
			s.Column, s.Intercept, s.Gradient, s.Span, s.Layout.Format(8))
	}
	b.WriteString("}")
	return b.String()
}
