package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-engine/internal/logger"
	"github.com/jonathan/talent-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes scoring, matching, benchmarking, pipeline and automation endpoints.`,
	RunE:  runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log, err := logger.New(level, true)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.New(server.Config{
		ListenAddr:       cfg.ListenAddr,
		DatabaseURL:      cfg.DatabaseURL,
		RulesFile:        cfg.RulesFile,
		ActionTimeout:    time.Duration(cfg.ActionTimeoutSeconds) * time.Second,
		ExecutionHistory: cfg.ExecutionHistory,
		MinScore:         cfg.MinScore,
		Logger:           log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
