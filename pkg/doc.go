// Package pkg provides the core libraries of linefold, an optimal code
// layout engine.
//
// # Overview
//
// Linefold implements the code layout optimizer described by Phillip
// Yelland in "A New Approach to Optimal Code Formatting": candidate
// layouts are costed as piecewise-linear functions of their starting
// column and composed with a small combinator algebra, so the engine picks
// a provably minimal arrangement instead of greedily wrapping lines. The
// pkg directory is organized into five areas:
//
//  1. [token] - Tokens, spacing records, and the mutable token store
//  2. [partition] - Partition policies and the token partition tree
//  3. [style] - Formatting parameters and their TOML configuration
//  4. [layout] - The engine: layout functions, combinators, driver,
//     tree reconstructor
//  5. [errors], [observability] - Structured errors and optimizer hooks
//
// # Architecture
//
// The typical data flow through linefold:
//
//	Tokens + partition tree (upstream lexer/partitioner)
//	         ↓
//	    [layout] driver (combine child layout functions per policy)
//	         ↓
//	    [layout] segment selection at the ambient indentation
//	         ↓
//	    [layout] tree reconstructor (flat lines + final break decisions)
//	         ↓
//	    rewritten partition node + finalized token store
//
// # Quick Start
//
// Optimize a partition tree in place:
//
//	import (
//	    "github.com/jwojnowski/linefold/pkg/layout"
//	    "github.com/jwojnowski/linefold/pkg/style"
//	)
//
//	st, _ := style.Load("linefold.toml")
//	layout.Optimize(st, node, store)
//
// Every child of node is now an already-formatted physical line carrying
// its indentation, and every re-lined token's break decision has been
// finalized in the store.
//
// # Main Packages
//
// [layout] - The optimizer core. Layout functions are ordered sequences of
// linear segments over the starting column; [layout.Factory] combines them
// with Line, Indent, Juxtaposition, Stack, Choice, and Wrap. The driver
// dispatches on partition policies and the reconstructor materializes the
// chosen layout back into flat partitions.
//
// [partition] - The input model: unwrapped lines, partition policies, and
// the partition tree the driver walks.
//
// [token] - Display-width-aware tokens (go-runewidth) with per-token
// spacing records; the store is the engine's only mutable output besides
// the partition node itself.
//
// [style] - The five style knobs of the cost model, loadable from TOML
// with strict unknown-key rejection.
//
// [errors] - Structured errors with machine-readable codes; fatal contract
// violations in the core panic with these.
//
// [observability] - Hook interfaces emitted around every optimization run;
// register backends at startup, no-op by default.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/layout/...      # The engine only
//	go test -run Example ./...    # Examples only
//
// [token]: https://pkg.go.dev/github.com/jwojnowski/linefold/pkg/token
// [partition]: https://pkg.go.dev/github.com/jwojnowski/linefold/pkg/partition
// [style]: https://pkg.go.dev/github.com/jwojnowski/linefold/pkg/style
// [layout]: https://pkg.go.dev/github.com/jwojnowski/linefold/pkg/layout
// [errors]: https://pkg.go.dev/github.com/jwojnowski/linefold/pkg/errors
// [observability]: https://pkg.go.dev/github.com/jwojnowski/linefold/pkg/observability
// [layout.Factory]: https://pkg.go.dev/github.com/jwojnowski/linefold/pkg/layout#Factory
// [layout.Optimize]: https://pkg.go.dev/github.com/jwojnowski/linefold/pkg/layout#Optimize
package pkg
