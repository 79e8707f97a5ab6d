// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about pipeline execution, cache operations, and enhancement
// calls.
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
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnClassifyStart(ctx, prompt)
//	// ... classify ...
//	observability.Pipeline().OnClassifyComplete(ctx, archetype, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the generation pipeline.
type PipelineHooks interface {
	// Classify events
	OnClassifyStart(ctx context.Context, prompt string)
	OnClassifyComplete(ctx context.Context, archetype string, duration time.Duration, err error)

	// Synthesize events
	OnSynthesizeStart(ctx context.Context, archetype string, componentCount int)
	OnSynthesizeComplete(ctx context.Context, archetype string, placed int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, fidelity string, width, height int)
	OnRenderComplete(ctx context.Context, fidelity string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Enhance Hooks
// =============================================================================

// EnhanceHooks receives events from image enhancement calls.
type EnhanceHooks interface {
	// OnEnhanceStart records an enhancement attempt.
	OnEnhanceStart(ctx context.Context, steps int)

	// OnEnhanceComplete records the outcome. Failed enhancements are absorbed
	// by the pipeline, so this hook is the place to count them.
	OnEnhanceComplete(ctx context.Context, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnClassifyStart(context.Context, string)                            {}
func (NoopPipelineHooks) OnClassifyComplete(context.Context, string, time.Duration, error)   {}
func (NoopPipelineHooks) OnSynthesizeStart(context.Context, string, int)                     {}
func (NoopPipelineHooks) OnSynthesizeComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, int, int)               {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopEnhanceHooks is a no-op implementation of EnhanceHooks.
type NoopEnhanceHooks struct{}

func (NoopEnhanceHooks) OnEnhanceStart(context.Context, int)                      {}
func (NoopEnhanceHooks) OnEnhanceComplete(context.Context, time.Duration, error)  {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	enhanceHooks  EnhanceHooks  = NoopEnhanceHooks{}
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

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetEnhanceHooks registers custom enhancement hooks.
// This should be called once at application startup before any enhancement calls.
func SetEnhanceHooks(h EnhanceHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		enhanceHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Enhance returns the registered enhancement hooks.
func Enhance() EnhanceHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return enhanceHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	enhanceHooks = NoopEnhanceHooks{}
}
