package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"keyword-planner/internal/adapter/dataforseo"
	httpadapter "keyword-planner/internal/adapter/http"
	"keyword-planner/internal/adapter/openai"
	"keyword-planner/internal/adapter/postgres"
	rediscache "keyword-planner/internal/adapter/redis"
	"keyword-planner/internal/adapter/usecase"
	"keyword-planner/internal/config"
	"keyword-planner/internal/core/port"
	"keyword-planner/internal/db"
	"keyword-planner/internal/metrics"
)

// main is the entry point of the keyword planner. It loads configuration,
// wires the keyword sources, the completion client and the optional run
// store and cache, then serves HTTP until SIGINT or SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout)
	metrics.Init(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, err := dataforseo.New(cfg.DataForSEO, logger)
	if err != nil {
		logger.Error("keyword source init error", slog.Any("error", err))
		return
	}
	var (
		seeds port.SeedKeywordSource = source
		sites port.SiteKeywordSource = source
	)

	if cfg.Redis.Enabled {
		rdb, err := rediscache.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer rdb.Close()

		cache := rediscache.NewKeywordCache(source, source, rdb, cfg.Redis.TTL, logger)
		seeds, sites = cache, cache
		logger.Info("keyword cache enabled", slog.Duration("ttl", cfg.Redis.TTL))
	}

	var runs port.RunRepository
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		runs = postgres.NewRunRepository(pool)
	}

	completer, err := openai.New(cfg.OpenAI, logger)
	if err != nil {
		logger.Error("completion client init error", slog.Any("error", err))
		return
	}

	svc := usecase.NewResearchService(
		usecase.NewAggregator(seeds, sites, logger),
		usecase.NewPlanner(completer, cfg.Research.TopN, logger),
		runs,
		logger,
	)

	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		ConfigFile:     cfg.Research.ConfigFile,
		Gatherer:       prometheus.DefaultGatherer,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("env", cfg.Env))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			return
		}
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
