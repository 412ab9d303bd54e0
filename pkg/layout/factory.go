package layout

import (
	"math"

	"github.com/jwojnowski/linefold/pkg/errors"
	"github.com/jwojnowski/linefold/pkg/partition"
	"github.com/jwojnowski/linefold/pkg/style"
	"github.com/jwojnowski/linefold/pkg/token"
)

// Largest possible column value, used as infinity in knot sweeps.
const infinity = math.MaxInt

// =============================================================================
// Layout Function Factory
// =============================================================================

// Factory builds layout functions from unwrapped lines and combines them
// with the {Line, Indent, Juxtaposition, Stack, Choice, Wrap} algebra.
//
// The factory holds only an immutable style and the token store backing the
// partition tree; it is re-entrant and can be shared across goroutines
// operating on the same (read-only at this point) store.
type Factory struct {
	style style.Style
	store *token.Store
}

// NewFactory creates a factory for the given style and token store.
func NewFactory(st style.Style, store *token.Store) *Factory {
	return &Factory{style: st, store: store}
}

// Line returns the layout function of a single unbroken token range.
//
// A line of width w that fits under the column limit costs nothing until
// the starting column pushes its end past the limit, then every further
// column costs the overflow penalty. A line at or over the limit pays for
// its excess characters from column 0 on.
func (f *Factory) Line(line partition.Line) Function {
	layout := NewTree(LineItem(line, f.store))
	span := layout.Item.Length()

	if span < f.style.ColumnLimit {
		return Function{
			// 0 <= x < column_limit - span
			{Column: 0, Layout: layout, Span: span},
			// column_limit - span <= x
			{Column: f.style.ColumnLimit - span, Layout: layout, Span: span,
				Gradient: f.style.OverColumnLimitPenalty},
		}
	}
	return Function{
		{Column: 0, Layout: layout, Span: span,
			Intercept: float64((span - f.style.ColumnLimit) * f.style.OverColumnLimitPenalty),
			Gradient:  f.style.OverColumnLimitPenalty},
	}
}

// Indent shifts fn rightward by indent columns: the wrapped layout is
// rendered at column x+indent while cost is still expressed in terms of x.
// The overflow component is re-derived at the shifted column so that later
// combinations charge it at the column where the layout actually lands.
func (f *Factory) Indent(fn Function, indent int) Function {
	if fn.Empty() {
		panic(errors.New(errors.ErrCodeInternal, "cannot indent an empty layout function"))
	}
	if indent < 0 {
		panic(errors.New(errors.ErrCodeInternal, "negative indent %d", indent))
	}

	var result Function

	indentColumn := 0
	column := indent
	i := fn.AtOrToTheLeftOf(column)

	for {
		seg := fn[i]
		over := column - f.style.ColumnLimit

		intercept := seg.CostAt(column)
		gradient := seg.Gradient
		if over > 0 {
			intercept -= float64(f.style.OverColumnLimitPenalty * over)
		}
		if over >= 0 {
			gradient -= f.style.OverColumnLimitPenalty
		}

		result = append(result, Segment{
			Column:    indentColumn,
			Layout:    seg.Layout.indented(indent),
			Span:      indent + seg.Span,
			Intercept: intercept,
			Gradient:  gradient,
		})

		i++
		if i == len(fn) {
			break
		}
		column = fn[i].Column
		indentColumn = column - indent
	}

	return result
}

// Juxtaposition places each function immediately to the right of its
// predecessor, with the successor's own leading spacing in between.
// The empty combination is empty; a single input is returned unchanged.
func (f *Factory) Juxtaposition(fns ...Function) Function {
	if len(fns) == 0 {
		return nil
	}
	result := fns[0]
	for _, fn := range fns[1:] {
		result = f.juxtapose(result, fn)
	}
	return result
}

// juxtapose combines a pair of layout functions horizontally.
//
// The right function is evaluated at the column where it actually starts:
// the left span plus the right layout's leading spacing. Both inputs charge
// their own overflow from their own starting columns, so when the joint
// starting column of the right side is already past the limit, one overflow
// contribution is subtracted to avoid double counting. Knots are swept from
// both inputs, always advancing the side whose next knot is nearer.
func (f *Factory) juxtapose(left, right Function) Function {
	if left.Empty() || right.Empty() {
		panic(errors.New(errors.ErrCodeInternal, "cannot juxtapose an empty layout function"))
	}

	var result Function

	li := 0
	columnL := 0
	columnR := left[li].Span + right[0].Layout.Item.SpacesBefore
	ri := right.AtOrToTheLeftOf(columnR)

	for {
		segL, segR := left[li], right[ri]
		spacesBetween := segR.Layout.Item.SpacesBefore

		over := columnR - f.style.ColumnLimit
		intercept := segL.CostAt(columnL) + segR.CostAt(columnR)
		gradient := segL.Gradient + segR.Gradient
		if over > 0 {
			intercept -= float64(f.style.OverColumnLimitPenalty * over)
		}
		if over >= 0 {
			gradient -= f.style.OverColumnLimitPenalty
		}

		newLayout := NewTree(CompositeItem(JuxtapositionType,
			segL.Layout.Item.SpacesBefore, segL.Layout.Item.MustWrap))
		newLayout.adopt(segL.Layout)
		newLayout.adopt(segR.Layout)

		result = append(result, Segment{
			Column:    columnL,
			Layout:    newLayout,
			Span:      segL.Span + segR.Span + spacesBetween,
			Intercept: intercept,
			Gradient:  gradient,
		})

		nextColumnL, nextColumnR := infinity, infinity
		if li+1 < len(left) {
			nextColumnL = left[li+1].Column
		}
		if ri+1 < len(right) {
			nextColumnR = right[ri+1].Column
		}
		if li+1 >= len(left) && ri+1 >= len(right) {
			break
		}

		if ri+1 >= len(right) || nextColumnL-columnL <= nextColumnR-columnR {
			columnL = nextColumnL
			columnR = nextColumnL + left[li+1].Span + spacesBetween
			li++
			ri = right.AtOrToTheLeftOf(columnR)
		} else {
			columnR = nextColumnR
			columnL = nextColumnR - segL.Span - spacesBetween
			ri++
		}
	}

	return result
}

// Stack places the functions on consecutive lines, all starting at the
// same column. Each added line costs the line-break penalty. The stacked
// layout inherits leading spacing and the must-wrap flag from its first
// line; only the last line remains extensible, so the span is the last
// function's. The empty combination is empty; a single input is returned
// unchanged.
func (f *Factory) Stack(fns ...Function) Function {
	if len(fns) == 0 {
		return nil
	}
	if len(fns) == 1 {
		return fns[0]
	}
	for _, fn := range fns {
		if fn.Empty() {
			panic(errors.New(errors.ErrCodeInternal, "cannot stack an empty layout function"))
		}
	}

	var result Function

	first := fns[0][0].Layout.Item
	spacesBefore := first.SpacesBefore
	mustWrap := first.MustWrap
	// Lines above the last cannot be extended by any further combination.
	span := fns[len(fns)-1][0].Span

	breaksPenalty := float64((len(fns) - 1) * f.style.LineBreakPenalty)

	indices := make([]int, len(fns))
	column := 0
	for {
		// Position every function's segment under the current column.
		for i, fn := range fns {
			for indices[i]+1 < len(fn) && fn[indices[i]+1].Column <= column {
				indices[i]++
			}
		}

		seg := Segment{
			Column:    column,
			Layout:    NewTree(CompositeItem(StackType, spacesBefore, mustWrap)),
			Span:      span,
			Intercept: breaksPenalty,
		}
		for i, fn := range fns {
			s := fn[indices[i]]
			seg.Intercept += s.CostAt(column)
			seg.Gradient += s.Gradient
			seg.Layout.adopt(s.Layout)
		}
		result = append(result, seg)

		next := infinity
		for i, fn := range fns {
			if indices[i]+1 < len(fn) && fn[indices[i]+1].Column < next {
				next = fn[indices[i]+1].Column
			}
		}
		if next == infinity {
			break
		}
		column = next
	}

	return result
}

// Choice returns the pointwise minimum of the inputs. The result is
// piecewise linear but in general no longer convex; besides the merged knot
// set, segments can begin where two cost lines cross between knots. Ties
// are broken by smaller gradient, then by earlier input.
func (f *Factory) Choice(fns ...Function) Function {
	if len(fns) == 0 {
		return nil
	}
	if len(fns) == 1 {
		return fns[0]
	}
	for _, fn := range fns {
		if fn.Empty() {
			panic(errors.New(errors.ErrCodeInternal, "cannot choose from an empty layout function"))
		}
	}

	var result Function

	indices := make([]int, len(fns))
	lastFn, lastSeg := -1, -1

	column := 0
	for {
		// Starting column of the next closest knot of any input.
		nextKnot := infinity
		for i, fn := range fns {
			for indices[i]+1 < len(fn) && fn[indices[i]+1].Column <= column {
				indices[i]++
			}
			if indices[i]+1 < len(fn) && fn[indices[i]+1].Column < nextKnot {
				nextKnot = fn[indices[i]+1].Column
			}
		}

		for {
			minI := 0
			for i := 1; i < len(fns); i++ {
				a := fns[i][indices[i]]
				b := fns[minI][indices[minI]]
				costA, costB := a.CostAt(column), b.CostAt(column)
				if costA < costB || (costA == costB && a.Gradient < b.Gradient) {
					minI = i
				}
			}
			minSeg := fns[minI][indices[minI]]

			if minI != lastFn || indices[minI] != lastSeg {
				result = append(result, Segment{
					Column:    column,
					Layout:    minSeg.Layout,
					Span:      minSeg.Span,
					Intercept: minSeg.CostAt(column),
					Gradient:  minSeg.Gradient,
				})
				lastFn, lastSeg = minI, indices[minI]
			}

			// Closest crossover with any flatter cost line before the next knot.
			nextColumn := nextKnot
			for i := range fns {
				s := fns[i][indices[i]]
				if s.Gradient >= minSeg.Gradient {
					continue
				}
				gamma := (s.CostAt(column) - minSeg.CostAt(column)) /
					float64(minSeg.Gradient-s.Gradient)
				crossover := column + int(math.Ceil(gamma))
				if crossover > column && crossover < nextColumn {
					nextColumn = crossover
				}
			}

			column = nextColumn
			if column >= nextKnot {
				break
			}
		}

		if column == infinity {
			break
		}
	}

	return result
}

// Wrap combines the functions so that consecutive runs share lines when
// profitable: fold left over Choice(Juxtaposition(acc, next),
// Stack(acc, next)). The result's cost curve is the lower envelope over the
// all-horizontal arrangement, the all-vertical arrangement, and every
// mixed arrangement that groups consecutive inputs onto shared lines.
func (f *Factory) Wrap(fns ...Function) Function {
	if len(fns) == 0 {
		return nil
	}
	wrapped := fns[0]
	for _, fn := range fns[1:] {
		wrapped = f.Choice(f.Juxtaposition(wrapped, fn), f.Stack(wrapped, fn))
	}
	return wrapped
}
