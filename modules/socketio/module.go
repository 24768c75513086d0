// Package socketio provides a lazily established socket.io client
// connection. Dialing happens when the module is first resolved, not at
// process start, so hosts that never emit events never open the socket.
package socketio

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/zclconf/go-cty/cty"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/lazymodgo/internal/ctxlog"
	"github.com/vk/lazymodgo/internal/modversion"
	"github.com/vk/lazymodgo/internal/registry"
	"github.com/vk/lazymodgo/internal/settings"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// buildSettings holds the decoded manifest settings for the connection.
type buildSettings struct {
	URL                string
	Namespace          string
	InsecureSkipVerify bool
	ConnectTimeout     time.Duration
}

// decodeSettings pulls the connection settings out of the manifest values.
func decodeSettings(s map[string]cty.Value) (*buildSettings, error) {
	rawURL, err := settings.RequiredString(s, "url")
	if err != nil {
		return nil, err
	}
	namespace, err := settings.String(s, "namespace", "/")
	if err != nil {
		return nil, err
	}
	insecure, err := settings.Bool(s, "insecure_skip_verify", false)
	if err != nil {
		return nil, err
	}
	timeout, err := settings.Duration(s, "connect_timeout", 15*time.Second)
	if err != nil {
		return nil, err
	}
	return &buildSettings{
		URL:                rawURL,
		Namespace:          namespace,
		InsecureSkipVerify: insecure,
		ConnectTimeout:     timeout,
	}, nil
}

// build is the factory for the 'socketio' target. It dials the configured
// server and returns the connected *socket.Socket.
func build(ctx context.Context, s map[string]cty.Value) (any, error) {
	cfg, err := decodeSettings(s)
	if err != nil {
		return nil, err
	}

	logger := ctxlog.FromContext(ctx).With("target", "socketio", "url", cfg.URL)
	logger.Info("Creating new client instance...")

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(cfg.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Successfully connected", "sid", io.Id())
		connectChan <- nil
	})

	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errs[0].(error)
		logger.Debug("Connection attempt failed", "error", err)
		connectChan <- err
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		// Connection succeeded, return the persistent client.
		return io, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection")
	case <-time.After(cfg.ConnectTimeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %v waiting for socket.io connection", cfg.ConnectTimeout)
	}
}

// Register registers the factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFactory("socketio", &registry.RegisteredFactory{
		Build: build,
		Version: func(module any) string {
			return modversion.Of("github.com/zishang520/socket.io-client-go")
		},
	})
}
