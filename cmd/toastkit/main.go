package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/toastkit/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toastkit",
		Short: "Toast notifications for server-driven pages",
		Long: `toastkit renders transient toast notifications into a shared
container and dismisses them automatically or on click.

  • Four types: success, error, warning, info
  • Auto-dismiss after 5s (10s for info) with a 300ms exit state
  • Live preview server with a WebSocket lifecycle stream`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		initCmd(),
		serveCmd(),
		renderCmd(),
		versionCmd(),
	)
	return cmd
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
