// Package layout chooses optimal two-dimensional arrangements for
// pre-tokenized source fragments.
//
// # Overview
//
// The engine implements the code layout optimizer described by Phillip
// Yelland in "A New Approach to Optimal Code Formatting": the cost of every
// candidate layout is represented as a piecewise-linear function of the
// column the layout starts at, and candidate families are composed with a
// small combinator algebra instead of being enumerated. Costs penalize
// characters past the column limit and introduced line breaks, so the
// chosen layout is provably minimal under that model.
//
// # Pipeline
//
// A partition tree (see [github.com/jwojnowski/linefold/pkg/partition])
// flows through three stages:
//
//  1. The driver walks the tree, dispatching on each node's partition
//     policy and combining child layout functions bottom-up.
//  2. At the root, the segment covering the ambient indentation is
//     selected; its layout tree is the optimum.
//  3. The tree reconstructor flattens that layout back into
//     already-formatted unwrapped lines, rewriting the input node and
//     finalizing per-token break decisions in the token store.
//
// [Optimize] runs all three stages in place:
//
//	st := style.Default()
//	layout.Optimize(st, node, store)
//
// # Combinators
//
// [Factory] exposes the algebra:
//
//   - [Factory.Line]: cost of a single unbroken token range
//   - [Factory.Indent]: shift a layout right by a fixed number of columns
//   - [Factory.Juxtaposition]: place layouts side by side on a shared line
//   - [Factory.Stack]: place layouts on consecutive lines
//   - [Factory.Choice]: pointwise minimum over alternatives
//   - [Factory.Wrap]: fit on one line, else wrap — the lower envelope over
//     horizontal, vertical, and mixed arrangements
//
// Layout functions are ordered segment sequences; all knot arithmetic is
// integral, and only cost intercepts are floating point, which keeps
// crossover detection in [Factory.Choice] exact.
//
// # Contracts
//
// The engine is purely computational: no I/O, no locks, no global state
// beyond the injectable warning logger and optional observability hooks.
// Malformed input trees and unhandled partition policies are programmer
// errors and panic with structured errors from
// [github.com/jwojnowski/linefold/pkg/errors]; anomalies the engine can
// recover from are logged and ignored.
package layout
