// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout resolution, size distribution, and drag
// gestures.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The engine runs on every pointer-move event, so hooks are called
// synchronously and must return quickly.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    observability.SetGestureHooks(&myGestureHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	sizes := distribute.Distribute(panels, snapshot, pivot, delta)
//	observability.Engine().OnDistribute(id, delta, changed, time.Since(start))
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from the resolver and the panel store.
type EngineHooks interface {
	// OnResolve records a resolver run and how many configuration warnings it emitted.
	OnResolve(panelCount, warnings int, duration time.Duration)

	// OnDistribute records one run of the distribution algorithm.
	// changed is false when the store was left untouched.
	OnDistribute(pivot string, delta float64, changed bool, duration time.Duration)

	// OnReject records an imperative call rejected without mutation.
	OnReject(op string, err error)
}

// =============================================================================
// Gesture Hooks
// =============================================================================

// GestureHooks receives events from drag gestures.
type GestureHooks interface {
	// OnGestureStart records a pointer-down on a handle.
	OnGestureStart(pivot string, panelCount int)

	// OnGestureEnd records the pointer-up and the number of moves applied.
	OnGestureEnd(pivot string, moves int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnResolve(int, int, time.Duration)                 {}
func (NoopEngineHooks) OnDistribute(string, float64, bool, time.Duration) {}
func (NoopEngineHooks) OnReject(string, error)                            {}

// NoopGestureHooks is a no-op implementation of GestureHooks.
type NoopGestureHooks struct{}

func (NoopGestureHooks) OnGestureStart(string, int)              {}
func (NoopGestureHooks) OnGestureEnd(string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	engineHooks  EngineHooks  = NoopEngineHooks{}
	gestureHooks GestureHooks = NoopGestureHooks{}
	hooksMu      sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup before any layout is resolved.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// SetGestureHooks registers custom gesture hooks.
// This should be called once at application startup before any gesture begins.
func SetGestureHooks(h GestureHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gestureHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Gesture returns the registered gesture hooks.
func Gesture() GestureHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gestureHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
	gestureHooks = NoopGestureHooks{}
}
