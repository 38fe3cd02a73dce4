package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/patinfly/internal/client/fixtures"
	"github.com/iudanet/patinfly/internal/config"
	"github.com/iudanet/patinfly/internal/logging"
	"github.com/iudanet/patinfly/internal/server"
	"github.com/iudanet/patinfly/pkg/api"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	envFile := flag.String("env-file", config.DefaultEnvFile(), "Path to .env file")
	address := flag.String("address", "", "Listen address (overrides http.address)")
	fixturesDir := flag.String("fixtures", "", "Directory with bikes.json (default: embedded)")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *address != "" {
		cfg.HTTP.Address = *address
	}
	if *fixturesDir != "" {
		cfg.Fixtures.Dir = *fixturesDir
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	assets := fixtures.Assets()
	if cfg.Fixtures.Dir != "" {
		assets = os.DirFS(cfg.Fixtures.Dir)
	}
	bikes := fixtures.NewBikeStore(assets, logger)
	logger.Info("bike fixtures ready", slog.Int("count", bikes.Len()))

	srv, err := server.New(server.Options{
		Status: api.StatusInfo{
			Version: Version,
			Build:   GitCommit,
			Update:  BuildDate,
			Name:    "patinfly-fixture-server",
		},
		Address:         cfg.HTTP.Address,
		RateLimit:       cfg.HTTP.RateLimit,
		RateBurst:       cfg.HTTP.RateBurst,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}, bikes, logger)
	if err != nil {
		logger.Error("failed to create server", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func printVersion() {
	fmt.Printf("Patinfly Fixture Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
