package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/lazymodgo/internal/ctxlog"
)

// ValidateRegistry performs a consistency check between manifests and Go
// code after population. Structural problems in definitions are errors;
// a manifest target with no compiled-in factory is only a warning, because
// an absent target must surface at first use as a load failure, not abort
// startup.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for name, def := range r.definitions {
		if def.Name != name {
			errs = append(errs, fmt.Sprintf("module '%s': definition name '%s' does not match its key", name, def.Name))
		}
		if def.Target == "" {
			errs = append(errs, fmt.Sprintf("module '%s': target must not be empty", name))
			continue
		}

		if _, ok := r.factories[def.Target]; !ok {
			logger.Warn("Manifest declares a module whose target has no compiled-in factory; first use will fail until it is available.",
				"module", name, "target", def.Target)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
