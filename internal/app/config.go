package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ManifestPath is a .hcl file or a directory of .hcl files declaring
	// the lazily loadable modules.
	ManifestPath string

	// WarmUp forces every declared module through a load at startup.
	WarmUp bool

	// Versions reports a per-module version table (loading each module).
	Versions bool

	// RetryPolicy is "retry" or "permanent"; see the loader package.
	RetryPolicy string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.RetryPolicy == "" {
		cfg.RetryPolicy = "retry"
	}
	return &cfg, nil
}
