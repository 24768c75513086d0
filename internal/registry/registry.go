package registry

import (
	"sort"

	"github.com/vk/lazymodgo/internal/config"
)

// Module is the interface that all compiled-in modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all registered factories and module definitions for a
// single application instance.
type Registry struct {
	factories   map[string]*RegisteredFactory
	definitions map[string]*config.ModuleDefinition
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		factories:   make(map[string]*RegisteredFactory),
		definitions: make(map[string]*config.ModuleDefinition),
	}
}

// PopulateDefinitionsFromModel copies the loaded module definitions from the
// config model into the registry. Called once at startup, before the
// registry is handed to the loader.
func (r *Registry) PopulateDefinitionsFromModel(model *config.Model) {
	for name, def := range model.Modules {
		r.definitions[name] = def
	}
}

// Lookup returns the definition for a logical module name, if one exists.
func (r *Registry) Lookup(name string) (*config.ModuleDefinition, bool) {
	def, ok := r.definitions[name]
	return def, ok
}

// Names returns every registered logical module name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of module definitions in the registry.
func (r *Registry) Count() int {
	return len(r.definitions)
}
