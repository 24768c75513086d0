package loader

import (
	"context"
	"sync"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/lazymodgo/internal/ctxlog"
)

// State describes where a Handle is in its load lifecycle.
type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
	StateFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Handle is the deferred proxy for a single logical module. Exactly one
// Handle exists per name for the lifetime of its Loader; it owns the
// unloaded→loading→{loaded|failed} transition and the memoized result.
type Handle struct {
	name     string
	target   string
	settings map[string]cty.Value

	importer Importer
	policy   RetryPolicy
	onLoaded func(name string)

	// mu serializes the state transition. Concurrent first-time Resolve
	// calls block here until the winning caller's load completes, then read
	// the memoized result instead of re-running the load.
	mu     sync.Mutex
	state  State
	module any
	err    error
}

// Name returns the logical module name this handle stands in for.
func (h *Handle) Name() string { return h.name }

// Target returns the opaque load locator from the registry entry.
func (h *Handle) Target() string { return h.target }

// State returns the handle's current lifecycle state. While another caller
// holds the loading transition this blocks until it completes.
func (h *Handle) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Resolve returns the live module, materializing it through the importer on
// first use. The result, success or failure, is memoized; with the default
// retry policy a failed handle re-attempts the load on the next call
// instead of caching the failure forever.
//
// Loading is synchronous and blocking: once a load has started it runs to
// completion or failure, with no cancellation of the transition itself.
func (h *Handle) Resolve(ctx context.Context) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.state {
	case StateLoaded:
		return h.module, nil
	case StateFailed:
		if h.policy == FailPermanently {
			return nil, h.err
		}
		// Retry: fall through to a fresh load attempt.
	}

	logger := ctxlog.FromContext(ctx)
	logger.Info("Lazily loading module...", "module", h.name, "target", h.target)

	h.state = StateLoading
	module, err := h.importer.Load(ctx, h.target, h.settings)
	if err != nil {
		h.state = StateFailed
		h.module = nil
		h.err = &LoadError{Name: h.name, Target: h.target, Err: err}
		logger.Warn("Module load failed.", "module", h.name, "target", h.target, "error", err)
		return nil, h.err
	}

	h.state = StateLoaded
	h.module = module
	h.err = nil
	if h.onLoaded != nil {
		h.onLoaded(h.name)
	}
	logger.Debug("Module loaded and memoized.", "module", h.name)
	return h.module, nil
}
