package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"weathertext.app/internal/app"
	"weathertext.app/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "weathertext",
	Short: "Current weather as one line of text",
	Long: `weathertext fetches a short weather line from a configured provider,
caches it per provider and serves it over HTTP.

Process settings come from the environment (or a .env file). User settings
(provider, cache seconds, ribbon) are persisted in the settings store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newSettingsCmd())
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found or error loading it")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "weathertext: %v\n", err)
		os.Exit(1)
	}
}

// newApplication loads config and wires the application. CLI commands keep
// logs off stdout so their output stays scriptable.
func newApplication(ctx context.Context, logOutput io.Writer) (*app.Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	deps, err := app.NewDependencyContainer(cfg, app.DependencyOptions{LogOutput: logOutput})
	if err != nil {
		return nil, err
	}

	application, err := app.NewApplicationWithDependencies(ctx, cfg, deps)
	if err != nil {
		_ = deps.Close()
		return nil, err
	}
	return application, nil
}
