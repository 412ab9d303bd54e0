package layout

import (
	"github.com/charmbracelet/log"

	"github.com/jwojnowski/linefold/pkg/errors"
	"github.com/jwojnowski/linefold/pkg/partition"
	"github.com/jwojnowski/linefold/pkg/token"
)

// =============================================================================
// Tree Reconstructor
// =============================================================================

// reconstructor translates a concrete layout tree into a flat sequence of
// already-formatted unwrapped lines, then rewrites the optimized partition
// node and finalizes break decisions in the token store.
type reconstructor struct {
	currentIndentation int
	store              *token.Store
	logger             *log.Logger

	lines []partition.Line
	// Index into lines of the line still accepting appended tokens, or -1.
	active int
}

func newReconstructor(indentation int, store *token.Store, logger *log.Logger) *reconstructor {
	return &reconstructor{
		currentIndentation: indentation,
		store:              store,
		logger:             logger,
		active:             -1,
	}
}

// traverse walks the layout tree and emits flat lines. Relative
// indentation on a node adds to the inherited indentation for the duration
// of its subtree.
func (r *reconstructor) traverse(t *Tree) {
	relative := t.Item.Indentation
	saved := r.currentIndentation
	r.currentIndentation += relative
	defer func() { r.currentIndentation = saved }()

	// Indentation on a line that is going to be appended cannot take
	// effect; it signals an inconsistency in the layout produced upstream.
	if relative > 0 && r.active >= 0 {
		r.logger.Warn("discarding indentation of a line that's going to be appended")
	}

	switch t.Item.Kind {
	case LineType:
		if r.active < 0 {
			line := t.Item.AsLine()
			line.Indentation = r.currentIndentation
			// Prevent downstream wrap search from re-processing the line.
			line.Policy = partition.AlreadyFormatted
			r.lines = append(r.lines, line)
			r.active = len(r.lines) - 1
		} else {
			r.lines[r.active].SpanUpTo(t.Item.TokenRange().End)
		}

	case JuxtapositionType:
		for _, child := range t.Children {
			r.traverse(child)
		}

	case StackType:
		if len(t.Children) == 0 {
			return
		}
		if len(t.Children) == 1 {
			r.traverse(t.Children[0])
			return
		}

		// Indent for the second and further lines: continuation lines of a
		// stack appended to an open line align past that line's end.
		indentation := r.currentIndentation
		if r.active >= 0 {
			indentation = r.finalColumn(r.lines[r.active]) + t.Item.SpacesBefore
		}

		r.traverse(t.Children[0])

		r.currentIndentation = indentation
		for _, child := range t.Children[1:] {
			r.active = -1
			r.traverse(child)
		}
	}
}

// finalColumn returns the column at which the rendered line ends.
func (r *reconstructor) finalColumn(line partition.Line) int {
	return line.Indentation + r.store.SpanWidth(line.Tokens)
}

// replaceNode rewrites node with the emitted flat lines and finalizes
// token spacing: the first token of every non-empty line must wrap with no
// leading spaces, and every still-undecided token must append.
func (r *reconstructor) replaceNode(node *partition.Node) {
	if len(r.lines) == 0 {
		panic(errors.New(errors.ErrCodeInternal, "tree reconstruction produced no lines"))
	}

	first := r.lines[0]
	last := r.lines[len(r.lines)-1]

	node.Value.Tokens = token.Range{Start: first.Tokens.Start, End: last.Tokens.End}
	node.Value.Indentation = r.currentIndentation
	node.Value.Policy = partition.AlreadyFormatted

	node.Children = nil
	for _, line := range r.lines {
		if !line.IsEmpty() {
			// The line's own indentation replaces the first token's
			// original spacing.
			head := r.store.At(line.Tokens.Start)
			head.Before.Break = token.MustWrap
			head.Before.SpacesRequired = 0

			for i := line.Tokens.Start + 1; i < line.Tokens.End; i++ {
				tok := r.store.At(i)
				if tok.Before.Break == token.Undecided {
					tok.Before.Break = token.MustAppend
				}
			}
		}
		node.AdoptSubtree(partition.NewNode(line))
	}
}
