// Package envvars provides a lazily built snapshot of the process
// environment.
package envvars

import (
	"context"
	"os"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/lazymodgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Snapshot holds the environment as it was when the module loaded.
type Snapshot struct {
	vars map[string]string
}

// Get returns the value for a variable and whether it was set.
func (s *Snapshot) Get(key string) (string, bool) {
	v, ok := s.vars[key]
	return v, ok
}

// All returns a copy of every captured variable.
func (s *Snapshot) All() map[string]string {
	out := make(map[string]string, len(s.vars))
	for k, v := range s.vars {
		out[k] = v
	}
	return out
}

// Len returns the number of captured variables.
func (s *Snapshot) Len() int {
	return len(s.vars)
}

// build is the factory for the 'envvars' target.
func build(ctx context.Context, settings map[string]cty.Value) (any, error) {
	vars := make(map[string]string)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			vars[pair[0]] = pair[1]
		}
	}
	return &Snapshot{vars: vars}, nil
}

// Register registers the factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFactory("envvars", &registry.RegisteredFactory{
		Build: build,
	})
}
