package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/zclconf/go-cty/cty"
)

// CountingImporter is an instrumented Importer for asserting at-most-once
// load semantics. Each target's load count is tracked independently; targets
// listed in Fail reject every attempt. Safe for concurrent use.
type CountingImporter struct {
	// Modules maps a target to the value a successful load returns. Targets
	// not present load as a plain string naming the target.
	Modules map[string]any

	// Fail lists targets whose load always fails.
	Fail map[string]error

	mu     sync.Mutex
	counts map[string]int
}

// Load implements loader.Importer.
func (i *CountingImporter) Load(ctx context.Context, target string, settings map[string]cty.Value) (any, error) {
	i.mu.Lock()
	if i.counts == nil {
		i.counts = make(map[string]int)
	}
	i.counts[target]++
	i.mu.Unlock()

	if err, ok := i.Fail[target]; ok {
		return nil, err
	}
	if v, ok := i.Modules[target]; ok {
		return v, nil
	}
	return fmt.Sprintf("module:%s", target), nil
}

// Loads returns how many times the given target has been load-attempted.
func (i *CountingImporter) Loads(target string) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.counts[target]
}
