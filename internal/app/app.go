package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/vk/lazymodgo/internal/config"
	"github.com/vk/lazymodgo/internal/ctxlog"
	"github.com/vk/lazymodgo/internal/loader"
	"github.com/vk/lazymodgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config

	registry *registry.Registry
	loader   *loader.Loader

	httpServer *http.Server
	ready      atomic.Bool
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger, registry,
// and loader.
func NewApp(outW io.Writer, cfg *Config, configLoader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load all manifests into the format-agnostic model first.
	model, err := configLoader.Load(ctx, cfg.ManifestPath)
	if err != nil {
		// A failure to load manifests is a fatal startup error.
		panic(fmt.Errorf("failed to load manifests: %w", err))
	}
	logger.Debug("Manifests loaded and translated into unified model.")

	// Create and populate the registry with Go factories.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	// Populate the registry's definitions from the loaded config model.
	reg.PopulateDefinitionsFromModel(model)
	logger.Debug("Registry definitions populated from config model.")

	// Validate the integrity of the registry.
	if err := reg.ValidateRegistry(ctx); err != nil {
		// This is a programmer error (mismatch between code and manifests),
		// so we panic.
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	policy, err := loader.ParseRetryPolicy(cfg.RetryPolicy)
	if err != nil {
		panic(err)
	}

	return &App{
		outW:     outW,
		logger:   logger,
		cfg:      cfg,
		registry: reg,
		loader:   loader.New(reg, nil, policy),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Loader returns the application's lazy loader.
func (a *App) Loader() *loader.Loader {
	return a.loader
}
