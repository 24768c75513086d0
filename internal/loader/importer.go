package loader

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/lazymodgo/internal/registry"
)

// Importer is the process's module-construction facility: it materializes an
// opaque load target into a live module value. The loader treats it as an
// external collaborator that may be absent, slow, or fail for environment
// reasons; its failures are surfaced, never masked.
type Importer interface {
	Load(ctx context.Context, target string, settings map[string]cty.Value) (any, error)
}

// registryImporter resolves targets against the compiled-in factories held
// by the registry.
type registryImporter struct {
	reg *registry.Registry
}

// NewRegistryImporter creates the standard Importer backed by the given
// registry's factories.
func NewRegistryImporter(reg *registry.Registry) Importer {
	return &registryImporter{reg: reg}
}

// Load implements Importer.
func (i *registryImporter) Load(ctx context.Context, target string, settings map[string]cty.Value) (any, error) {
	factory, ok := i.reg.Factory(target)
	if !ok {
		return nil, fmt.Errorf("no compiled-in factory provides target %q; make sure the module is included in this build", target)
	}
	return factory.Build(ctx, settings)
}
