package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"tours.stagebridge.org/internal/app"
	"tours.stagebridge.org/internal/config"
	"tours.stagebridge.org/internal/report"
	"tours.stagebridge.org/internal/store"
)

const version = "1.0.0"

const (
	configRefreshInterval = time.Minute
	statsInterval         = 30 * time.Second
	shutdownTimeout       = 10 * time.Second
)

func main() {
	var (
		port       = flag.Int("port", 4000, "API server port")
		env        = flag.String("env", "development", "Environment (development|staging|production)")
		configFile = flag.String("config-file", "", "Path to a local JSON configuration file")
		configURL  = flag.String("config-url", "", "URL to a remote JSON configuration file")
		seedFile   = flag.String("seed-file", "", "JSON seed for the in-memory store, used when no database_url is configured")
	)
	flag.Parse()

	if err := config.ValidateConfigFlags(configFile, configURL); err != nil {
		fmt.Println("Error:", err)
		flag.Usage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := report.SetupSentry(*env, version); err != nil {
		logger.Error("failed to initialize Sentry", "error", err)
	}
	defer report.FlushSentry()

	if err := run(*port, *env, *configFile, *configURL, *seedFile, logger); err != nil {
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{Level: sentry.LevelFatal})
		report.FlushSentry()
		logger.Error("tourplanner stopped", "error", err)
		os.Exit(1)
	}
}

func run(port int, env, configFile, configURL, seedFile string, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := app.NewPooledClient()
	configAuthUser := os.Getenv("CONFIG_AUTH_USER")
	configAuthPass := os.Getenv("CONFIG_AUTH_PASS")

	doc := config.Document{Tuning: config.DefaultTuning()}
	var err error
	switch {
	case configFile != "":
		doc, err = config.LoadConfigFromFile(configFile)
	case configURL != "":
		doc, err = config.LoadConfigFromURL(ctx, client, configURL, configAuthUser, configAuthPass)
	default:
		logger.Info("no configuration source given, using defaults")
	}
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	cfg := config.NewConfig(port, env, doc)

	s, closeStore, err := openStore(ctx, cfg.DatabaseURL, seedFile, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	application := app.New(cfg, s, logger, client, version)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      application.Routes(ctx),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env, "version", version)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		application.StartMetricsCollection(gctx, statsInterval)
		return nil
	})

	if configURL != "" {
		g.Go(func() error {
			application.ConfigService.RefreshConfig(gctx, configURL, configAuthUser, configAuthPass, configRefreshInterval)
			return nil
		})
	}

	return g.Wait()
}

// openStore connects to Postgres when a database URL is configured and
// falls back to an in-memory store, optionally seeded, otherwise.
func openStore(ctx context.Context, databaseURL, seedFile string, logger *slog.Logger) (store.Store, func(), error) {
	if databaseURL != "" {
		pool, err := pgxpool.New(ctx, databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("pinging database: %w", err)
		}
		logger.Info("using postgres store")
		return store.NewPostgresStore(pool), pool.Close, nil
	}

	mem := store.NewMemoryStore()
	if seedFile != "" {
		if err := mem.LoadSeedFile(seedFile); err != nil {
			return nil, nil, err
		}
		logger.Info("loaded seed file", "path", seedFile)
	}
	logger.Warn("no database_url configured, using in-memory store")
	return mem, func() {}, nil
}
