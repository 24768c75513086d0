package loader

import (
	"fmt"
	"strings"
)

// LoadError reports that a module's load target could not be materialized.
// It names both the logical module and the concrete target so the operator
// knows exactly what to install or fix.
type LoadError struct {
	Name   string
	Target string
	Err    error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to lazily load module %q (target %q): %v", e.Name, e.Target, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// WarmupFailure is a single (name, cause) pair collected during warm-up.
type WarmupFailure struct {
	Name string
	Err  error
}

// WarmupError aggregates every load failure encountered during a full
// warm-up pass. Warm-up never aborts on the first failure; reporting all of
// them at once maximizes the diagnostic value of the pass.
type WarmupError struct {
	Failures []WarmupFailure
}

// Error implements the error interface.
func (e *WarmupError) Error() string {
	lines := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		lines = append(lines, fmt.Sprintf("%s: %v", f.Name, f.Err))
	}
	return fmt.Sprintf("warm-up failed for %d module(s):\n- %s", len(e.Failures), strings.Join(lines, "\n- "))
}
