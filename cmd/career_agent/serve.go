package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/ingestion"
	"github.com/jonathan/career-compass/internal/recommend"
	"github.com/jonathan/career-compass/internal/server"
)

var (
	serveConfigPath string
	serveHost       string
	servePort       int
	serveSeed       int64
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for the career guidance flow.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Bind address (default 0.0.0.0)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().Int64Var(&serveSeed, "seed", 0, "RNG seed for reproducible recommendations (0 = time-based)")
	serveCmd.Flags().BoolVar(&serveVerbose, "verbose", false, "Print detailed session information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{
		Host:    serveHost,
		Port:    servePort,
		Seed:    serveSeed,
		Verbose: serveVerbose,
	}

	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}

	defaults := config.Config{
		Host:            "0.0.0.0",
		Port:            8080,
		FileDelayMS:     int(ingestion.DefaultFileDelay / time.Millisecond),
		LinkedInDelayMS: int(ingestion.DefaultLinkedInDelay / time.Millisecond),
		TextDelayMS:     int(ingestion.DefaultTextDelay / time.Millisecond),
		AnalysisDelayMS: int(recommend.DefaultAnalysisDelay / time.Millisecond),
	}
	merged := cfg.MergeWithDefaults(defaults)
	cfg = &merged

	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Host: cfg.Host,
		Port: cfg.Port,
		Ingest: ingestion.Config{
			FileDelay:     time.Duration(cfg.FileDelayMS) * time.Millisecond,
			LinkedInDelay: time.Duration(cfg.LinkedInDelayMS) * time.Millisecond,
			TextDelay:     time.Duration(cfg.TextDelayMS) * time.Millisecond,
		},
		AnalysisDelay: time.Duration(cfg.AnalysisDelayMS) * time.Millisecond,
		Seed:          cfg.Seed,
		Verbose:       cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
