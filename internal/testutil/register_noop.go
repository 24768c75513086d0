package testutil

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/lazymodgo/internal/registry"
)

// NoOpModule registers a single "noop" factory whose build returns an empty
// struct. It's useful for tests that need a resolvable target without any
// real construction cost.
type NoOpModule struct{}

// Register registers the "noop" factory.
func (m *NoOpModule) Register(r *registry.Registry) {
	r.RegisterFactory("noop", &registry.RegisteredFactory{
		Build: func(ctx context.Context, settings map[string]cty.Value) (any, error) {
			return struct{}{}, nil
		},
	})
}

// StaticModule registers a factory under Target whose build returns Value.
// It lets a test control exactly what a resolved module looks like.
type StaticModule struct {
	Target  string
	Value   any
	Version string
}

// Register registers the configured factory.
func (m *StaticModule) Register(r *registry.Registry) {
	factory := &registry.RegisteredFactory{
		Build: func(ctx context.Context, settings map[string]cty.Value) (any, error) {
			return m.Value, nil
		},
	}
	if m.Version != "" {
		version := m.Version
		factory.Version = func(module any) string { return version }
	}
	r.RegisterFactory(m.Target, factory)
}
