// Package config defines the format-agnostic manifest model for the
// application, along with the Loader interface for reading manifests from a
// concrete format. Concrete implementations, such as for HCL, are provided
// in separate packages.
//
// The `config.Model` is the single source of truth for the `registry`
// package: it lists every logical module name the façade supports and the
// load target each name resolves to.
package config
