package app

import (
	"context"
	"errors"

	"github.com/vk/lazymodgo/internal/ctxlog"
	"github.com/vk/lazymodgo/internal/loader"
	"github.com/vk/lazymodgo/modules/printer"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.cfg.HealthcheckPort > 0 {
		a.startHealthcheckServer(ctx, a.cfg.HealthcheckPort)
	}

	var warmErr error
	if a.cfg.WarmUp {
		warmErr = a.loader.WarmUp(ctx)
		if warmErr != nil {
			var aggErr *loader.WarmupError
			if errors.As(warmErr, &aggErr) {
				for _, f := range aggErr.Failures {
					a.logger.Error("Warm-up failure.", "module", f.Name, "error", f.Err)
				}
			} else {
				a.logger.Error("Warm-up failed.", "error", warmErr)
			}
		} else {
			a.logger.Info("🔥 Warm-up complete, all modules loaded.")
		}
	}
	a.ready.Store(warmErr == nil)

	if a.cfg.Versions {
		a.logger.Debug("Collecting module versions...")
		printer.NewPrinter(a.outW, 2).Print(a.loader.Versions(ctx))
	}

	loaded := a.loader.LoadedModules()
	a.logger.Info("Loaded modules.", "count", len(loaded), "modules", loaded)

	if a.cfg.HealthcheckPort > 0 {
		// Serve readiness until the caller cancels.
		<-ctx.Done()
		if err := a.closeHealthcheckServer(); err != nil {
			a.logger.Error("Healthcheck server shutdown failed.", "error", err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return warmErr
}
