package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of the entire
// manifest configuration: every lazily loadable module known to the process.
type Model struct {
	Modules map[string]*ModuleDefinition
}

// NewModel creates an empty configuration model.
func NewModel() *Model {
	return &Model{Modules: make(map[string]*ModuleDefinition)}
}

// ModuleDefinition is the format-agnostic representation of a `module`
// manifest block. It binds a logical name to the target a compiled-in
// factory is registered under, plus any settings the factory needs.
type ModuleDefinition struct {
	// Name is the logical name callers use to request the module. Unique
	// across the whole model.
	Name string

	// Target is the opaque load locator handed to the importer. Several
	// names may share a target (e.g. two differently configured clients).
	Target string

	Description string

	// Settings holds the evaluated `settings` block attributes. Values are
	// kept as cty values so factories decide their own Go representation.
	Settings map[string]cty.Value
}
