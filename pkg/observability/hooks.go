// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about pipeline execution.
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
// The pipeline calls the hooks around every package:
//
//	observability.Pipeline().OnPackageStart(ctx, pkg)
//	// ... discover, extract, render ...
//	observability.Pipeline().OnPackageComplete(ctx, pkg, classes, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the class diagram pipeline.
type PipelineHooks interface {
	// Package events, one pair per package of a batch.
	OnPackageStart(ctx context.Context, pkg string)
	OnPackageComplete(ctx context.Context, pkg string, classes int, duration time.Duration, err error)

	// Extract events
	OnExtractComplete(ctx context.Context, pkg string, files, classes int, duration time.Duration)

	// Render events
	OnRenderComplete(ctx context.Context, pkg string, formats []string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnPackageStart(context.Context, string) {}
func (NoopPipelineHooks) OnPackageComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnExtractComplete(context.Context, string, int, int, time.Duration) {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
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

// Reset restores the no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
