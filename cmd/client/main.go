package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/patinfly/internal/client/api"
	"github.com/iudanet/patinfly/internal/client/auth"
	"github.com/iudanet/patinfly/internal/client/cli"
	"github.com/iudanet/patinfly/internal/client/fixtures"
	"github.com/iudanet/patinfly/internal/client/iocli"
	"github.com/iudanet/patinfly/internal/client/rental"
	"github.com/iudanet/patinfly/internal/client/repository"
	"github.com/iudanet/patinfly/internal/client/storage"
	"github.com/iudanet/patinfly/internal/client/storage/boltdb"
	"github.com/iudanet/patinfly/internal/client/storage/redisdb"
	"github.com/iudanet/patinfly/internal/client/storage/sqlite"
	"github.com/iudanet/patinfly/internal/config"
	"github.com/iudanet/patinfly/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

var errNoCommand = errors.New("no command given")

type flags struct {
	configPath   string
	envFile      string
	serverURL    string
	cacheDriver  string
	dbPath       string
	fixturesDir  string
	logLevel     string
	email        string
	password     string
	passwordFile string
	lang         string
	showVersion  bool
}

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, errNoCommand) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	var f flags
	flag.StringVar(&f.configPath, "config", "", "Path to YAML config file")
	flag.StringVar(&f.envFile, "env-file", config.DefaultEnvFile(), "Path to .env file")
	flag.StringVar(&f.serverURL, "server", "", "Server URL")
	flag.StringVar(&f.cacheDriver, "cache-driver", "", "Local cache driver: bolt, sqlite or redis")
	flag.StringVar(&f.dbPath, "db", "", "Path to local cache database")
	flag.StringVar(&f.fixturesDir, "fixtures", "", "Directory with fixture JSON documents")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&f.email, "email", "", "Email for login")
	flag.StringVar(&f.password, "password", "", "Password (not recommended, use env var or file)")
	flag.StringVar(&f.passwordFile, "password-file", "", "Path to file containing password")
	flag.StringVar(&f.lang, "lang", "", "Language for pricing plan names")
	flag.BoolVar(&f.showVersion, "version", false, "Show version information")
	flag.Parse()

	stdio := iocli.NewStdio()
	opts := cli.Options{
		Passwords: cli.Passwords{FromFile: f.passwordFile, FromArgs: f.password},
		Build:     cli.BuildInfo{Version: Version, Date: BuildDate, Commit: GitCommit},
		Email:     f.email,
		Lang:      f.lang,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// version и справка не требуют конфигурации и кэша
	if f.showVersion {
		return cli.New(stdio, nil, nil, opts).Run(ctx, "version", nil)
	}
	args := flag.Args()
	if len(args) == 0 {
		cli.New(stdio, nil, nil, opts).PrintUsage()
		return errNoCommand
	}

	cfg, err := config.Load(f.configPath, f.envFile)
	if err != nil {
		return err
	}
	applyFlags(cfg, f)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.Lang == "" {
		opts.Lang = cfg.UI.Lang
	}

	// Логи в stderr, stdout остается за выводом команд
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return err
	}

	cache, err := openCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer func() {
		if err := cache.Close(); err != nil {
			logger.Error("failed to close cache", slog.Any("error", err))
		}
	}()

	assets := fixtures.Assets()
	if cfg.Fixtures.Dir != "" {
		assets = os.DirFS(cfg.Fixtures.Dir)
	}

	c := newCli(stdio, cache, assets, cfg, opts, logger)
	return c.Run(ctx, args[0], args[1:])
}

// applyFlags переопределяет конфигурацию явно заданными флагами
func applyFlags(cfg *config.Config, f flags) {
	if f.serverURL != "" {
		cfg.Remote.URL = f.serverURL
	}
	if f.cacheDriver != "" {
		cfg.Cache.Driver = f.cacheDriver
	}
	if f.dbPath != "" {
		cfg.Cache.Path = f.dbPath
	}
	if f.fixturesDir != "" {
		cfg.Fixtures.Dir = f.fixturesDir
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
}

// openCache открывает локальный кэш выбранным драйвером
func openCache(ctx context.Context, cfg config.CacheConfig) (storage.Storage, error) {
	switch cfg.Driver {
	case config.DriverBolt:
		return boltdb.New(ctx, cfg.Path)
	case config.DriverSQLite:
		return sqlite.New(ctx, cfg.Path)
	case config.DriverRedis:
		return redisdb.New(ctx, cfg.RedisURL, cfg.RedisPrefix)
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}

// newCli собирает репозитории, сервисы и CLI
func newCli(io iocli.IO, cache storage.Storage, assets fs.FS, cfg *config.Config, opts cli.Options, logger *slog.Logger) *cli.Cli {
	remote := api.NewClient(cfg.Remote.URL, cfg.Remote.Timeout, logger.With(slog.String("component", "api")))

	bikes := repository.NewBikeRepository(cache, remote, fixtures.NewBikeStore(assets, logger), logger)
	users := repository.NewUserRepository(cache, fixtures.NewUserStore(assets, logger), logger)
	plans := repository.NewPricingPlanRepository(cache, fixtures.NewPlanStore(assets, logger), logger)

	authService := auth.NewService(users, logger)
	rentalService := rental.NewService(bikes, users, plans, logger)

	return cli.New(io, authService, rentalService, opts)
}
