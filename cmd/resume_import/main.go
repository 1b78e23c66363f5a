// Package main provides the entry point for the resume importer CLI and HTTP API server.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jonathan/resume-importer/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:          "resume_import",
	Short:        "Resume importer",
	Long:         "Resume importer turns PDF, DOCX, HTML and plain-text resumes into structured resume JSON, from the command line or via REST API.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging and per-resume summaries")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves configuration: defaults, then the --config file, then
// RESUME_IMPORT_* environment variables. Command flags are applied by the caller.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = fileCfg.MergeWithDefaults(config.Default())
	}
	cfg.ApplyEnv()
	if verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// newLogger writes text logs to w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
