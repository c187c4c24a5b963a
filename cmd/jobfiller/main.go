// Package main provides the entry point for the jobfiller CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/config"
	"github.com/electronicmaxwell/JobApplicationFiller/internal/logger"
	"github.com/electronicmaxwell/JobApplicationFiller/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "jobfiller",
	Short: "Resume-driven job application autofill",
	Long: "jobfiller builds a structured applicant profile from resume files, " +
		"reports what is still missing, and fills job application forms in a " +
		"browser. It never submits an application on its own.",
}

var (
	flagConfig  string
	flagDataDir string
	flagHeadful bool
	flagVerbose bool
	flagJSONLog bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Directory for profile, session and credential files")
	rootCmd.PersistentFlags().BoolVar(&flagHeadful, "headful", false, "Show the browser window (headless by default)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLog, "json-log", false, "Emit logs as JSON")
}

// setup resolves configuration from file, environment and flags, and
// builds the logger and store every command needs.
func setup() (config.Config, *zap.Logger, *store.Store, error) {
	cfg := config.Config{}
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return config.Config{}, nil, nil, err
		}
		cfg = *loaded
	}
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagHeadful {
		headless := false
		cfg.Headless = &headless
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	if flagJSONLog {
		cfg.JSONLog = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, nil, err
	}

	log, err := logger.New(cfg.JSONLog, cfg.Verbose)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	st, err := store.New(cfg.DataDir, log)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	return cfg, log, st, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
