// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about layout optimization runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetOptimizerHooks(&myOptimizerHooks{})
//	    // ... run application
//	}
//
// The optimizer calls hooks around every run:
//
//	observability.Optimizer().OnOptimizeStart(runID, nodeCount)
//	// ... compute layout ...
//	observability.Optimizer().OnOptimizeComplete(runID, knotCount, duration)
package observability

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Optimizer Hooks
// =============================================================================

// OptimizerHooks receives events from layout optimization runs.
//
// Each run is identified by a random UUID so that start and complete events
// can be correlated when multiple partition trees are optimized
// concurrently.
type OptimizerHooks interface {
	// OnOptimizeStart records the beginning of an optimization run over a
	// partition tree with nodeCount nodes.
	OnOptimizeStart(runID uuid.UUID, nodeCount int)

	// OnOptimizeComplete records a finished run. knotCount is the number of
	// segments in the root layout function, a proxy for search complexity.
	OnOptimizeComplete(runID uuid.UUID, knotCount int, duration time.Duration)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopOptimizerHooks is a no-op implementation of OptimizerHooks.
type NoopOptimizerHooks struct{}

func (NoopOptimizerHooks) OnOptimizeStart(uuid.UUID, int)                   {}
func (NoopOptimizerHooks) OnOptimizeComplete(uuid.UUID, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	optimizerHooks OptimizerHooks = NoopOptimizerHooks{}
	hooksMu        sync.RWMutex
)

// SetOptimizerHooks registers custom optimizer hooks.
// This should be called once at application startup before any optimization.
func SetOptimizerHooks(h OptimizerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		optimizerHooks = h
	}
}

// Optimizer returns the registered optimizer hooks.
func Optimizer() OptimizerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return optimizerHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	optimizerHooks = NoopOptimizerHooks{}
}
