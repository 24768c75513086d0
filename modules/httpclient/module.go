// Package httpclient provides a lazily built, shareable REST client.
// Constructing the client allocates its transport and connection pools, so
// hosts that never touch the network never pay for it.
package httpclient

import (
	"context"
	"time"

	"github.com/zclconf/go-cty/cty"
	"resty.dev/v3"

	"github.com/vk/lazymodgo/internal/modversion"
	"github.com/vk/lazymodgo/internal/registry"
	"github.com/vk/lazymodgo/internal/settings"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// build is the factory for the 'httpclient' target. It returns a live
// *resty.Client configured from the manifest settings.
func build(ctx context.Context, s map[string]cty.Value) (any, error) {
	timeout, err := settings.Duration(s, "timeout", 30*time.Second)
	if err != nil {
		return nil, err
	}
	baseURL, err := settings.String(s, "base_url", "")
	if err != nil {
		return nil, err
	}
	retries, err := settings.Int(s, "retry_count", 0)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetTimeout(timeout)
	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}
	if retries > 0 {
		client.SetRetryCount(retries)
	}
	return client, nil
}

// Register registers the factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFactory("httpclient", &registry.RegisteredFactory{
		Build: build,
		Version: func(module any) string {
			return modversion.Of("resty.dev/v3")
		},
	})
}
