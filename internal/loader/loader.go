package loader

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vk/lazymodgo/internal/ctxlog"
	"github.com/vk/lazymodgo/internal/registry"
)

// Loader is the dispatcher and resolution cache of the lazy module system.
// It hands out exactly one Handle per logical name, creating it from the
// registry on first lookup, and tracks which names have completed a load.
//
// A Loader is safe for concurrent use from multiple goroutines.
type Loader struct {
	reg      *registry.Registry
	importer Importer
	policy   RetryPolicy

	mu       sync.Mutex
	handles  map[string]*Handle
	accessed map[string]struct{}
}

// New creates a Loader over the given registry. A nil importer defaults to
// the registry-backed one.
func New(reg *registry.Registry, imp Importer, policy RetryPolicy) *Loader {
	if imp == nil {
		imp = NewRegistryImporter(reg)
	}
	return &Loader{
		reg:      reg,
		importer: imp,
		policy:   policy,
		handles:  make(map[string]*Handle),
		accessed: make(map[string]struct{}),
	}
}

// Get returns the Handle for a logical module name, creating it on first
// lookup. Repeated calls with the same name always return the same Handle.
//
// A name absent from the registry fails with a plain error, exactly as an
// undefined member access would on an ordinary namespace; no dedicated
// error type leaks through the façade.
func (l *Loader) Get(name string) (*Handle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if h, ok := l.handles[name]; ok {
		return h, nil
	}

	def, ok := l.reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("module %q is not defined", name)
	}

	h := &Handle{
		name:     def.Name,
		target:   def.Target,
		settings: def.Settings,
		importer: l.importer,
		policy:   l.policy,
		onLoaded: l.markLoaded,
		state:    StateUnloaded,
	}
	l.handles[name] = h
	return h, nil
}

// markLoaded records a name in the accessed set. Called by a Handle after a
// successful load.
func (l *Loader) markLoaded(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accessed[name] = struct{}{}
}

// LoadedModules returns a sorted snapshot of the names that have completed
// a successful load. Names merely looked up, or whose load failed, are not
// included.
func (l *Loader) LoadedModules() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	names := make([]string, 0, len(l.accessed))
	for name := range l.accessed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WarmUp forces every registry entry through a load. It continues through
// failures and reports them all at once as a *WarmupError; nil means every
// module loaded.
func (l *Loader) WarmUp(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	names := l.reg.Names()
	logger.Info("Warming up all lazy modules...", "count", len(names))

	var failures []WarmupFailure
	for _, name := range names {
		h, err := l.Get(name)
		if err != nil {
			// Unreachable for registry names, but a failed lookup would
			// still belong in the aggregate rather than aborting the pass.
			failures = append(failures, WarmupFailure{Name: name, Err: err})
			continue
		}
		if _, err := h.Resolve(ctx); err != nil {
			failures = append(failures, WarmupFailure{Name: name, Err: err})
			continue
		}
		logger.Debug("Warm-up loaded module.", "module", name)
	}

	if len(failures) > 0 {
		return &WarmupError{Failures: failures}
	}
	return nil
}

// Versions reports a per-module version string, loading each module in the
// process. Modules whose target has no Version hook report "unknown";
// modules that cannot be loaded report "not installed" instead of failing
// the whole pass.
func (l *Loader) Versions(ctx context.Context) map[string]string {
	versions := make(map[string]string)
	for _, name := range l.reg.Names() {
		h, err := l.Get(name)
		if err != nil {
			versions[name] = "not installed"
			continue
		}
		module, err := h.Resolve(ctx)
		if err != nil {
			versions[name] = "not installed"
			continue
		}
		if v, ok := l.reg.Version(h.Target(), module); ok {
			versions[name] = v
		} else {
			versions[name] = "unknown"
		}
	}
	return versions
}
