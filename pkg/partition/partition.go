// Package partition models the token partition tree the layout engine
// consumes.
//
// Upstream code (lexer, parser, unwrapper) groups tokens into a tree of
// candidate lines: each node covers a contiguous token range and carries a
// [Policy] hint describing how its children may be combined into physical
// lines. This package only defines the data model; building partition trees
// from syntax trees is an upstream concern.
//
// # Policies
//
// The layout engine dispatches on the policy of each internal node:
//
//   - [FitOnLineElseExpand], [AppendFittingSubPartitions]: children are
//     joined horizontally while they fit, wrapping to new lines otherwise.
//   - [AlwaysExpand], [TabularAlignment]: one child per line.
//   - [OptimalFunctionCallLayout]: exactly two children (call header and
//     argument list) laid out either juxtaposed or stacked with extra
//     wrap indentation.
//   - [AlreadyFormatted]: the node has been through the engine; its
//     children are final physical lines and must not be re-optimized.
package partition

import (
	"fmt"
	"strings"

	"github.com/jwojnowski/linefold/pkg/token"
)

// =============================================================================
// Partition Policies
// =============================================================================

// Policy tells the layout engine how a node's children may be combined.
type Policy int

// Partition policies.
const (
	// Uninitialized marks a node whose policy has not been assigned.
	Uninitialized Policy = iota

	// AlwaysExpand puts every child on its own line.
	AlwaysExpand

	// FitOnLineElseExpand joins children on one line when they fit and
	// expands otherwise.
	FitOnLineElseExpand

	// AppendFittingSubPartitions greedily appends children that fit the
	// remaining space on the current line.
	AppendFittingSubPartitions

	// OptimalFunctionCallLayout lays out a call header and its argument
	// list, choosing between juxtaposition and an indented stack.
	OptimalFunctionCallLayout

	// TabularAlignment requests column-aligned children. The optimizer
	// currently treats it as AlwaysExpand.
	TabularAlignment

	// AlreadyFormatted marks a node whose children are final lines.
	AlreadyFormatted
)

// String returns the policy name as used in diagnostics.
func (p Policy) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case AlwaysExpand:
		return "always-expand"
	case FitOnLineElseExpand:
		return "fit-else-expand"
	case AppendFittingSubPartitions:
		return "append-fitting-sub-partitions"
	case OptimalFunctionCallLayout:
		return "optimal-function-call-layout"
	case TabularAlignment:
		return "tabular-alignment"
	case AlreadyFormatted:
		return "already-formatted"
	}
	return "???"
}

// =============================================================================
// Unwrapped Lines
// =============================================================================

// Line is an "unwrapped line": a contiguous token range intended as one
// physical line's worth of content, prior to wrapping decisions.
type Line struct {
	// Indentation is the number of spaces prepended when this line starts
	// a physical line.
	Indentation int

	// Tokens is the covered token range in the backing store.
	Tokens token.Range

	// Policy describes how children of a node holding this line combine.
	Policy Policy
}

// SpanUpTo extends the line's token range up to (but not including) end.
func (l *Line) SpanUpTo(end int) {
	l.Tokens.End = end
}

// IsEmpty reports whether the line covers no tokens.
func (l Line) IsEmpty() bool { return l.Tokens.Empty() }

// =============================================================================
// Partition Tree
// =============================================================================

// Node is a partition tree node. Leaves are single unwrapped lines;
// internal nodes group children under a combining policy.
type Node struct {
	Value    Line
	Children []*Node
}

// NewNode creates a node with the given value and children.
func NewNode(value Line, children ...*Node) *Node {
	return &Node{Value: value, Children: children}
}

// AdoptSubtree appends child to the node's children.
func (n *Node) AdoptSubtree(child *Node) {
	n.Children = append(n.Children, child)
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Render returns a readable multi-line dump of the subtree, resolving token
// text through store. Used in fatal diagnostics and tests.
func (n *Node) Render(store *token.Store) string {
	var b strings.Builder
	n.render(&b, store, 0)
	return b.String()
}

func (n *Node) render(b *strings.Builder, store *token.Store, depth int) {
	pad := strings.Repeat(" ", depth*2)
	fmt.Fprintf(b, "%s{ [%s] indent: %d, tokens: [ %s ]", pad, n.Value.Policy,
		n.Value.Indentation, store.Text(n.Value.Tokens))
	if len(n.Children) == 0 {
		b.WriteString(" }")
		return
	}
	b.WriteByte('\n')
	for _, child := range n.Children {
		child.render(b, store, depth+1)
		b.WriteByte('\n')
	}
	b.WriteString(pad)
	b.WriteString("}")
}
