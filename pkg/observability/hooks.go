// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation of the conversion pipeline
// without adding hard dependencies on specific observability backends.
// Consumers register hooks at startup to receive events about each stage of
// a run: interpreting the scene, indexing control points, and encoding the
// result.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Pipeline().OnInterpretStart(ctx, input)
//	// ... interpret ...
//	observability.Pipeline().OnInterpretComplete(ctx, input, patchCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the conversion pipeline.
type PipelineHooks interface {
	// Interpret events
	OnInterpretStart(ctx context.Context, input string)
	OnInterpretComplete(ctx context.Context, input string, patchCount int, duration time.Duration, err error)

	// Index events
	OnIndexStart(ctx context.Context, patchCount int)
	OnIndexComplete(ctx context.Context, pointCount int, duration time.Duration)

	// Encode events
	OnEncodeStart(ctx context.Context, format, output string)
	OnEncodeComplete(ctx context.Context, format, output string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnInterpretStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnInterpretComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnIndexStart(context.Context, int)                                      {}
func (NoopPipelineHooks) OnIndexComplete(context.Context, int, time.Duration)                    {}
func (NoopPipelineHooks) OnEncodeStart(context.Context, string, string)                          {}
func (NoopPipelineHooks) OnEncodeComplete(context.Context, string, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any conversion runs.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
