package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/toastkit/pkg/toast"
)

// Config configures a Server.
type Config struct {
	// Address is the TCP address to listen on.
	// Default: "localhost:3000"
	Address string

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 5s
	ShutdownTimeout time.Duration

	// Toast configures toast behavior. Zero fields use toast defaults.
	Toast toast.Config

	// Pretty enables indented HTML in page and event output.
	Pretty bool

	// Title is the preview page title.
	// Default: "toastkit"
	Title string

	// Registry collects the toast metrics and backs /metrics.
	// Default: a new registry per server
	Registry *prometheus.Registry

	// CheckOrigin validates WebSocket origins.
	// Default: same-origin only
	CheckOrigin func(r *http.Request) bool

	// WriteTimeout bounds each WebSocket write.
	// Default: 10s
	WriteTimeout time.Duration

	// ClientBuffer is the per-client outbound message buffer.
	// Default: 64
	ClientBuffer int

	// Logger is the base logger.
	// Default: slog.Default()
	Logger *slog.Logger

	// Toaster options appended after the server's own.
	ToastOptions []toast.Option
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:         "localhost:3000",
		ShutdownTimeout: 5 * time.Second,
		Title:           "toastkit",
		CheckOrigin:     sameOrigin,
		WriteTimeout:    10 * time.Second,
		ClientBuffer:    64,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.CheckOrigin == nil {
		c.CheckOrigin = d.CheckOrigin
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.ClientBuffer <= 0 {
		c.ClientBuffer = d.ClientBuffer
	}
	if c.Registry == nil {
		c.Registry = prometheus.NewRegistry()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// sameOrigin accepts requests without an Origin header or whose Origin
// host matches the request host.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, scheme := range []string{"http://", "https://"} {
		if origin == scheme+r.Host {
			return true
		}
	}
	return false
}
