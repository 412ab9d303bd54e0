package layout

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jwojnowski/linefold/pkg/errors"
	"github.com/jwojnowski/linefold/pkg/observability"
	"github.com/jwojnowski/linefold/pkg/partition"
	"github.com/jwojnowski/linefold/pkg/style"
	"github.com/jwojnowski/linefold/pkg/token"
)

// =============================================================================
// Options
// =============================================================================

// Option configures an optimization run.
type Option func(*config)

type config struct {
	logger *log.Logger
}

// WithLogger sets the sink for reconstructor warnings and debug traces.
// The default logger writes to stderr.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// =============================================================================
// Optimizer Driver
// =============================================================================

// Optimize chooses the minimum-cost layout for the partition tree rooted at
// node and rewrites the node in place: its children are replaced with the
// chosen flat lines, its policy is stamped already-formatted, and every
// re-lined token's break decision is finalized in store.
//
// The walk dispatches on each node's partition policy; an unhandled policy
// or a malformed tree is a programmer contract violation and panics with a
// structured error. Optimize is re-entrant for disjoint node/store pairs.
func Optimize(st style.Style, node *partition.Node, store *token.Store, opts ...Option) {
	cfg := config{logger: log.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	runID := uuid.New()
	start := time.Now()
	observability.Optimizer().OnOptimizeStart(runID, countNodes(node))

	indentation := node.Value.Indentation

	o := &optimizer{
		factory: NewFactory(st, store),
		style:   st,
		store:   store,
	}
	lf := o.traverse(node)
	if lf.Empty() {
		panic(errors.New(errors.ErrCodeInternal,
			"empty layout function for partition:\n%s", node.Render(store)))
	}
	cfg.logger.Debugf("layout function:\n%s", lf)

	chosen := lf[lf.AtOrToTheLeftOf(indentation)]
	cfg.logger.Debugf("chosen layout:\n%s", chosen.Layout)

	r := newReconstructor(indentation, store, cfg.logger)
	r.traverse(chosen.Layout)
	r.replaceNode(node)

	observability.Optimizer().OnOptimizeComplete(runID, len(lf), time.Since(start))
}

type optimizer struct {
	factory *Factory
	style   style.Style
	store   *token.Store
}

func (o *optimizer) traverse(node *partition.Node) Function {
	if node.IsLeaf() {
		return o.factory.Line(node.Value)
	}

	switch policy := node.Value.Policy; policy {
	case partition.OptimalFunctionCallLayout:
		// Function, macro, and system calls: exactly a header and an
		// argument list.
		if len(node.Children) != 2 {
			panic(errors.New(errors.ErrCodeInvalidPartition,
				"optimal-function-call-layout requires 2 children, got %d:\n%s",
				len(node.Children), node.Render(o.store)))
		}
		header := o.traverse(node.Children[0])
		args := o.traverse(node.Children[1])

		stacked := o.factory.Stack(header, o.factory.Indent(args, o.style.WrapSpaces))
		if args.MustWrap() {
			return stacked
		}
		juxtaposed := o.factory.Juxtaposition(header, args)
		return o.factory.Choice(juxtaposed, stacked)

	case partition.AppendFittingSubPartitions, partition.FitOnLineElseExpand:
		return o.factory.Wrap(o.traverseChildren(node)...)

	case partition.AlwaysExpand, partition.TabularAlignment:
		// Tabular alignment is not modeled by the algebra; stacking keeps
		// its rows intact.
		return o.factory.Stack(o.traverseChildren(node)...)

	default:
		panic(errors.New(errors.ErrCodeInvalidPolicy,
			"unsupported partition policy %s:\n%s", policy, node.Render(o.store)))
	}
}

func (o *optimizer) traverseChildren(node *partition.Node) []Function {
	fns := make([]Function, len(node.Children))
	for i, child := range node.Children {
		fns[i] = o.traverse(child)
	}
	return fns
}

func countNodes(node *partition.Node) int {
	count := 1
	for _, child := range node.Children {
		count += countNodes(child)
	}
	return count
}
