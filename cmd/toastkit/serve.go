package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/toastkit/internal/config"
	"github.com/vango-dev/toastkit/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		port       int
		host       string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live preview server",
		Long: `Start an HTTP server hosting one shared page with the toast
container. Toasts created through the API appear in every connected
browser and follow the normal dismissal lifecycle.

Examples:
  toastkit serve
  toastkit serve --port=8080
  curl -X POST localhost:3000/api/toasts -d '{"message":"Saved","type":"success"}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, verbose)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default ./toastkit.json)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load(".")
}

func runServe(ctx context.Context, cfg *config.Config, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Address:         cfg.Address(),
		ShutdownTimeout: cfg.ShutdownTimeout(),
		Toast:           cfg.ToastSettings(),
		Pretty:          cfg.Render.Pretty,
		Logger:          logger,
	})

	success("Preview server on http://%s", cfg.Address())
	info("POST /api/toasts to show a toast, Ctrl+C to stop")

	return srv.Run(ctx)
}
