package config

import (
	"context"
)

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads manifests from the given paths, translates them into the
	// format-agnostic model, and returns it. Paths that do not exist are
	// skipped; a path may be a single file or a directory searched
	// recursively.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
