// Package app encapsulates the application's dependencies, configuration,
// and lifecycle: it builds the logger, loads the manifests, populates and
// validates the registry, and owns the loader and the optional healthcheck
// server.
package app
