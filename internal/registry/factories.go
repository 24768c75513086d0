package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zclconf/go-cty/cty"
)

// BuildFunc materializes a load target. It receives the evaluated settings
// from the manifest and returns the live module value. Building may be
// expensive (dialing a server, allocating pools); that cost is exactly what
// the loader defers.
type BuildFunc func(ctx context.Context, settings map[string]cty.Value) (any, error)

// RegisteredFactory holds the compiled Go parts of a load target.
type RegisteredFactory struct {
	// Build constructs the module. Required.
	Build BuildFunc

	// Version reports the version of the built module, when the module has
	// a meaningful one. Optional.
	Version func(module any) string
}

// RegisterFactory registers a Go factory for a load target. Registering the
// same target twice is a programmer error.
func (r *Registry) RegisterFactory(target string, factory *RegisteredFactory) {
	if factory == nil || factory.Build == nil {
		panic(fmt.Sprintf("factory for target '%s' must provide a Build function", target))
	}
	if _, exists := r.factories[target]; exists {
		panic(fmt.Sprintf("factory for target '%s' already registered", target))
	}
	slog.Debug("Registering module factory.", "target", target)
	r.factories[target] = factory
}

// Factory returns the factory registered for a load target, if any.
func (r *Registry) Factory(target string) (*RegisteredFactory, bool) {
	f, ok := r.factories[target]
	return f, ok
}

// Version reports the version string of a built module, using the factory's
// Version hook when the target provides one.
func (r *Registry) Version(target string, module any) (string, bool) {
	f, ok := r.factories[target]
	if !ok || f.Version == nil {
		return "", false
	}
	return f.Version(module), true
}
