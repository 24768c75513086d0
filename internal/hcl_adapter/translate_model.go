// This file contains the logic for translating raw HCL module blocks into
// the format-agnostic configuration model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/lazymodgo/internal/config"
	"github.com/vk/lazymodgo/internal/ctxlog"
)

// translateModuleBlock converts the HCL-specific module schema into the
// agnostic model, evaluating settings attributes into cty values.
func (l *Loader) translateModuleBlock(ctx context.Context, block *moduleBlock) (*config.ModuleDefinition, error) {
	logger := ctxlog.FromContext(ctx).With("module", block.Name)
	logger.Debug("Translating HCL module block to internal config model.")

	if block.Name == "" {
		return nil, fmt.Errorf("module block is missing its name label")
	}
	if block.Target == "" {
		return nil, fmt.Errorf("module %q: target must not be empty", block.Name)
	}

	def := &config.ModuleDefinition{
		Name:        block.Name,
		Target:      block.Target,
		Description: block.Description,
		Settings:    make(map[string]cty.Value),
	}

	if block.Settings == nil {
		return def, nil
	}

	attrs, diags := block.Settings.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("module %q: invalid settings block: %w", block.Name, diags)
	}

	for name, attr := range attrs {
		// Settings are static configuration: no variables or functions are
		// in scope, so evaluation uses a nil context.
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("module %q: setting %q: %w", block.Name, name, diags)
		}
		def.Settings[name] = val
	}

	return def, nil
}
