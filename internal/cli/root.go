// Package cli wires the photoid commands.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("PHOTOID_CONFIG")
	if envConfig == "" {
		envConfig = "photoid.yaml"
	}

	cmd := &cobra.Command{
		Use:   "photoid",
		Short: "Photo identification training: quiz yourself on who is in your photographs",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config (optional)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log session events")
	cmd.AddCommand(NewQuizCmd(&configPath))
	cmd.AddCommand(NewScanCmd(&configPath))
	cmd.AddCommand(NewRenderCmd(&configPath))
	return cmd
}

// setupLogger configures the process logger. Quiet by default so the
// quiz display stays clean; --verbose or the config raise the level.
func setupLogger(level string) *slog.Logger {
	lvl := slog.LevelWarn
	if verbose {
		lvl = slog.LevelDebug
	} else {
		switch level {
		case "debug":
			lvl = slog.LevelDebug
		case "info":
			lvl = slog.LevelInfo
		case "error":
			lvl = slog.LevelError
		}
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}
