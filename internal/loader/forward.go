package loader

import (
	"context"
	"fmt"
)

// As resolves the handle and returns its module as T. It is the typed
// call-through layer: callers get a value indistinguishable from having
// constructed the dependency eagerly, without the handle needing to know
// the capability set of what it wraps.
func As[T any](ctx context.Context, h *Handle) (T, error) {
	var zero T
	module, err := h.Resolve(ctx)
	if err != nil {
		return zero, err
	}
	typed, ok := module.(T)
	if !ok {
		return zero, fmt.Errorf("module %q resolved to %T, which does not satisfy the requested type", h.Name(), module)
	}
	return typed, nil
}
