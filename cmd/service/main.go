// Package main is the entry point for the question bank service.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jsamuelsen/question-bank/internal/adapters/graphql"
	"github.com/jsamuelsen/question-bank/internal/adapters/http"
	"github.com/jsamuelsen/question-bank/internal/adapters/http/handlers"
	"github.com/jsamuelsen/question-bank/internal/adapters/persistence/memory"
	"github.com/jsamuelsen/question-bank/internal/adapters/persistence/postgres"
	"github.com/jsamuelsen/question-bank/internal/app"
	"github.com/jsamuelsen/question-bank/internal/app/loader"
	"github.com/jsamuelsen/question-bank/internal/domain"
	"github.com/jsamuelsen/question-bank/internal/platform/config"
	"github.com/jsamuelsen/question-bank/internal/platform/logging"
	"github.com/jsamuelsen/question-bank/internal/platform/telemetry"
	"github.com/jsamuelsen/question-bank/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

// store is what the service needs from a record store.
type store interface {
	ports.MultipleChoiceRepository
	ports.HealthChecker
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Local overrides from .env, if present
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	rule, err := domain.ParseAnswerRule(cfg.Question.CorrectAnswerRule)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("store", cfg.Store.Driver),
	)

	// 4. Telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	metrics, err := telemetry.NewQuestionMetrics()
	if err != nil {
		return fmt.Errorf("creating question metrics: %w", err)
	}

	// 5. Record store
	records, closeStore, err := openStore(ctx, &cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(records); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	// 6. Application layer
	loaders := loader.NewContextLoader(records, loader.Config{
		Wait:          cfg.GraphQL.Loader.Wait,
		BatchCapacity: cfg.GraphQL.Loader.BatchCapacity,
	}, metrics)

	service := app.NewMultipleChoiceService(records, loaders, graphql.NewGlobalIDs(), &app.MultipleChoiceServiceConfig{
		Rule:    rule,
		Metrics: metrics,
		Logger:  logger,
	})

	schema, err := graphql.NewSchema(service, graphql.Config{
		DefaultPageSize: cfg.GraphQL.DefaultPageSize,
		MaxPageSize:     cfg.GraphQL.MaxPageSize,
	})
	if err != nil {
		return fmt.Errorf("building graphql schema: %w", err)
	}

	// 7. HTTP server
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime, cfg.Store.Driver)

	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		ServiceName:    cfg.Telemetry.ServiceName,
		GraphQLPath:    cfg.GraphQL.Path,
		RequestTimeout: cfg.Server.RequestTimeout,
		Auth:           &cfg.Auth,
		Health:         handlers.NewHealthHandler(healthRegistry, buildInfo),
		GraphQL:        handlers.NewGraphQLHandler(schema),
		Loaders:        loaders,
	})

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// openStore opens the configured store. The returned func releases it.
func openStore(ctx context.Context, cfg *config.StoreConfig) (store, func(), error) {
	switch cfg.Driver {
	case config.StoreDriverPostgres:
		pg, err := postgres.Open(ctx, postgres.Config{
			DSN:                cfg.Postgres.DSN,
			MaxConns:           cfg.Postgres.MaxConns,
			MinConns:           cfg.Postgres.MinConns,
			ConnectTimeout:     cfg.Postgres.ConnectTimeout,
			AutoMigrate:        cfg.Postgres.AutoMigrate,
			SlowQueryThreshold: cfg.Postgres.SlowQueryThreshold,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("opening postgres store: %w", err)
		}

		return pg, pg.Close, nil
	default:
		mem, err := memory.New()
		if err != nil {
			return nil, nil, fmt.Errorf("opening memory store: %w", err)
		}

		return mem, func() {}, nil
	}
}

// waitForShutdown blocks until a shutdown signal is received or the server
// fails, then drains in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
