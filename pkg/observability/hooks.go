// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about compose runs and glyph lookups.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so libraries never import a
// metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetComposeHooks(&myComposeHooks{})
//	    observability.SetAssetHooks(&myAssetHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Compose().OnComposeStart(ctx, text)
//	// ... parse, resolve, lay out ...
//	observability.Compose().OnComposeComplete(ctx, text, placements, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Compose Hooks
// =============================================================================

// ComposeHooks receives events from the compose pipeline.
type ComposeHooks interface {
	// Run events
	OnComposeStart(ctx context.Context, text string)
	OnComposeComplete(ctx context.Context, text string, placements int, duration time.Duration, err error)

	// Stage events
	OnParseComplete(ctx context.Context, words, syllables int)
	OnLayoutComplete(ctx context.Context, placements int, width float64, duration time.Duration)

	// Output events
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// Asset Hooks
// =============================================================================

// AssetHooks receives events from glyph resolution.
type AssetHooks interface {
	// OnAssetLoaded records a resolved glyph.
	OnAssetLoaded(ctx context.Context, kind, key string)

	// OnAssetMissing records a glyph that could not be resolved and was
	// left out of the canvas.
	OnAssetMissing(ctx context.Context, kind, key string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopComposeHooks is a no-op implementation of ComposeHooks.
type NoopComposeHooks struct{}

func (NoopComposeHooks) OnComposeStart(context.Context, string)                               {}
func (NoopComposeHooks) OnComposeComplete(context.Context, string, int, time.Duration, error) {}
func (NoopComposeHooks) OnParseComplete(context.Context, int, int)                            {}
func (NoopComposeHooks) OnLayoutComplete(context.Context, int, float64, time.Duration)        {}
func (NoopComposeHooks) OnRenderComplete(context.Context, string, int, time.Duration, error)  {}

// NoopAssetHooks is a no-op implementation of AssetHooks.
type NoopAssetHooks struct{}

func (NoopAssetHooks) OnAssetLoaded(context.Context, string, string)         {}
func (NoopAssetHooks) OnAssetMissing(context.Context, string, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	composeHooks ComposeHooks = NoopComposeHooks{}
	assetHooks   AssetHooks   = NoopAssetHooks{}
	hooksMu      sync.RWMutex
)

// SetComposeHooks registers custom compose hooks.
// This should be called once at application startup before any compose run.
func SetComposeHooks(h ComposeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		composeHooks = h
	}
}

// SetAssetHooks registers custom asset hooks.
func SetAssetHooks(h AssetHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		assetHooks = h
	}
}

// Compose returns the registered compose hooks.
func Compose() ComposeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return composeHooks
}

// Assets returns the registered asset hooks.
func Assets() AssetHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return assetHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	composeHooks = NoopComposeHooks{}
	assetHooks = NoopAssetHooks{}
}
