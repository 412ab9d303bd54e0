package layout

import (
	"fmt"
	"strings"

	"github.com/jwojnowski/linefold/pkg/partition"
	"github.com/jwojnowski/linefold/pkg/token"
)

// =============================================================================
// Layout Types
// =============================================================================

// Type discriminates the three layout node variants.
type Type int

// Layout node variants.
const (
	// LineType is a leaf: a single unbroken token range.
	LineType Type = iota

	// JuxtapositionType places children side by side on a shared line.
	JuxtapositionType

	// StackType places children on consecutive lines.
	StackType
)

// String returns the variant name used by the debug printers.
func (t Type) String() string {
	switch t {
	case LineType:
		return "line"
	case JuxtapositionType:
		return "juxtaposition"
	case StackType:
		return "stack"
	}
	return "???"
}

// =============================================================================
// Layout Items
// =============================================================================

// Item is the payload of a layout tree node.
//
// Every item carries the indentation prepended when the subtree begins a
// new line, the inter-token spacing used when the subtree is appended to a
// neighbor on the same line, and a must-wrap flag saying the subtree cannot
// share a line with its predecessor. Line items additionally reference the
// originating unwrapped line and its token store.
type Item struct {
	Kind         Type
	Indentation  int
	SpacesBefore int
	MustWrap     bool

	// Line kind only.
	line  partition.Line
	store *token.Store
}

// LineItem creates a leaf item for an unwrapped line. Spacing and the
// must-wrap flag are taken from the line's first token; an empty line
// neither requires spacing nor forces a wrap.
func LineItem(line partition.Line, store *token.Store) Item {
	item := Item{Kind: LineType, line: line, store: store}
	if !line.Tokens.Empty() {
		before := store.At(line.Tokens.Start).Before
		item.SpacesBefore = before.SpacesRequired
		item.MustWrap = before.Break == token.MustWrap
	}
	return item
}

// CompositeItem creates a Juxtaposition or Stack item.
func CompositeItem(kind Type, spacesBefore int, mustWrap bool) Item {
	return Item{Kind: kind, SpacesBefore: spacesBefore, MustWrap: mustWrap}
}

// Length returns the rendered width of a Line item's token range in
// columns. Composite items have no intrinsic length.
func (it Item) Length() int {
	if it.Kind != LineType {
		return 0
	}
	return it.store.SpanWidth(it.line.Tokens)
}

// Text returns the rendered text of a Line item's token range.
func (it Item) Text() string {
	if it.Kind != LineType {
		return ""
	}
	return it.store.Text(it.line.Tokens)
}

// AsLine returns the originating unwrapped line with the item's current
// indentation applied.
func (it Item) AsLine() partition.Line {
	line := it.line
	line.Indentation = it.Indentation
	return line
}

// TokenRange returns the token range of a Line item.
func (it Item) TokenRange() token.Range {
	return it.line.Tokens
}

// String renders the item in the debug printer format, e.g.
//
//	[ foo bar ], length: 7, indentation: 0, spacing: 1, must wrap: no
//	[<stack>], indentation: 2, spacing: 0, must wrap: YES
func (it Item) String() string {
	var b strings.Builder
	if it.Kind == LineType {
		fmt.Fprintf(&b, "[ %s ], length: %d", it.Text(), it.Length())
	} else {
		fmt.Fprintf(&b, "[<%s>]", it.Kind)
	}
	mustWrap := "no"
	if it.MustWrap {
		mustWrap = "YES"
	}
	fmt.Fprintf(&b, ", indentation: %d, spacing: %d, must wrap: %s",
		it.Indentation, it.SpacesBefore, mustWrap)
	return b.String()
}

// =============================================================================
// Layout Trees
// =============================================================================

// Tree is a concrete layout: an arrangement of unwrapped lines built from
// the {Line, Juxtaposition, Stack} algebra. Trees are immutable once
// constructed; combinators derive new trees instead of mutating inputs.
type Tree struct {
	Item     Item
	Children []*Tree
}

// NewTree creates a layout tree node.
func NewTree(item Item, children ...*Tree) *Tree {
	return &Tree{Item: item, Children: children}
}

// IsLeaf reports whether the tree has no children.
func (t *Tree) IsLeaf() bool { return len(t.Children) == 0 }

// adopt appends src as a sublayout of t, inlining src's children when src
// is a composite of the same kind with no extra indentation. This keeps
// combinator outputs free of Stack-of-Stack and
// Juxtaposition-of-Juxtaposition nesting at zero indent.
func (t *Tree) adopt(src *Tree) {
	if !src.IsLeaf() && src.Item.Kind == t.Item.Kind && src.Item.Indentation == 0 {
		t.Children = append(t.Children, src.Children...)
		return
	}
	t.Children = append(t.Children, src)
}

// indented returns a copy of t whose root indentation is increased by k.
// Children are shared; they are never mutated after construction.
func (t *Tree) indented(k int) *Tree {
	cp := *t
	cp.Item.Indentation += k
	return &cp
}

// Format renders the tree with the given left margin, one node per line,
// children indented by two columns:
//
//	{ (<item>)
//	  { (<child>) }
//	}
func (t *Tree) Format(indent int) string {
	var b strings.Builder
	t.format(&b, indent)
	return b.String()
}

// String renders the tree with no left margin.
func (t *Tree) String() string { return t.Format(0) }

func (t *Tree) format(b *strings.Builder, indent int) {
	pad := strings.Repeat(" ", indent)
	if t.IsLeaf() {
		fmt.Fprintf(b, "%s{ (%s) }", pad, t.Item)
		return
	}
	fmt.Fprintf(b, "%s{ (%s)\n", pad, t.Item)
	for _, child := range t.Children {
		child.format(b, indent+2)
		b.WriteByte('\n')
	}
	b.WriteString(pad)
	b.WriteString("}")
}
