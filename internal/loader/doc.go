// Package loader implements deferred, on-demand loading of the modules
// declared in the registry.
//
// A Loader hands out one Handle per logical module name. The Handle stands
// in for the not-yet-built module and materializes it through the Importer
// on the first real use; the result is memoized, so the underlying load
// executes at most once per successful resolution no matter how many
// callers, or goroutines, touch the name. The Loader also tracks which
// names have actually completed a load, and can force every registry entry
// through a load at once for warm-up or readiness probing.
package loader
