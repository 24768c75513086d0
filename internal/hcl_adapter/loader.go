package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/lazymodgo/internal/config"
	"github.com/vk/lazymodgo/internal/ctxlog"
	"github.com/vk/lazymodgo/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is used to decode all supported top-level blocks from any file.
type fileRoot struct {
	Modules []*moduleBlock `hcl:"module,block"`
	Remain  hcl.Body       `hcl:",remain"`
}

// moduleBlock is the raw HCL shape of a `module` block.
type moduleBlock struct {
	Name        string         `hcl:"name,label"`
	Target      string         `hcl:"target"`
	Description string         `hcl:"description,optional"`
	Settings    *settingsBlock `hcl:"settings,block"`
}

// settingsBlock accepts arbitrary attributes; they are evaluated into cty
// values during translation.
type settingsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Load orchestrates the entire HCL manifest loading process. It is agnostic
// to the origin of the paths and merges module blocks from every file found.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := config.NewModel()

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL manifest files.", "count", len(files))

	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Modules {
			def, err := l.translateModuleBlock(ctx, block)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			if _, exists := model.Modules[def.Name]; exists {
				return nil, fmt.Errorf("in %s: module %q declared more than once", file, def.Name)
			}
			model.Modules[def.Name] = def
			logger.Debug("Loaded module definition.", "name", def.Name, "target", def.Target, "file", file)
		}
	}

	logger.Debug("HCL loading complete.", "modules", len(model.Modules))
	return model, nil
}
