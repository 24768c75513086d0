// Package registry provides the central "glue" for the lazy module system.
//
// The Registry is responsible for storing mappings between the logical names
// declared in manifests (e.g., "socketio") and the actual compiled Go
// factories that can materialize each load target. It is populated once
// during application startup and is read-only afterwards; adding support for
// a new module is a configuration-time change, never a runtime operation.
//
// After population the registry is validated. Manifests referring to targets
// with no compiled-in factory are surfaced early as warnings, not errors; a
// missing target becomes a load failure on first use rather than a startup
// failure.
package registry
