// Package main provides the entry point for the talent engine CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/talent-engine/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "talent_engine",
	Short: "Candidate scoring, matching and pipeline automation",
	Long:  "Talent Engine deterministically scores candidates against job requirements, ranks and benchmarks them, and automates hiring-pipeline transitions via a configurable rule engine.",
}

var (
	configFile string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print formatted summaries of results")
}

// loadConfig resolves the effective configuration: defaults, overlaid by
// the optional config file, overlaid by TALENT_* environment variables.
func loadConfig() (config.Config, error) {
	cfg := config.Defaults()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded.MergeWithDefaults(cfg)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
