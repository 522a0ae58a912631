package main

import (
	"context"
	"errors"
	"fmt"
	"mail-train-service/internal/adapters/cache"
	"mail-train-service/internal/adapters/repositories"
	"mail-train-service/internal/api"
	"mail-train-service/internal/config"
	"mail-train-service/internal/platform/db"
	"mail-train-service/internal/platform/logging"
	"mail-train-service/internal/platform/metrics"
	"mail-train-service/internal/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (Postgres or memory, Redis) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load(config.Get("TRAINS_CONFIG", ""))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatalw("server stopped", "err", err)
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) error {
	m, err := metrics.NewSolverMetrics(nil)
	if err != nil {
		return err
	}

	planner := &services.Planner{
		Observer: m,
		Log:      log,
		CacheTTL: cfg.CacheTTL(),
	}

	// Without a database the service runs on the seed file alone.
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := repositories.InitSchema(ctx, conn); err != nil {
			return err
		}
		planner.Repo = repositories.NewPostgresScenarioRepository(conn, log)
		planner.Store = repositories.NewPostgresPlanStore(conn)
	} else {
		scenarios, err := repositories.LoadSeedFile(cfg.SeedPath)
		if err != nil {
			return err
		}
		planner.Repo = repositories.NewMemoryScenarioRepository(scenarios...)
		planner.Store = repositories.NewMemoryPlanStore()
		log.Infow("using in-memory scenarios", "seed_path", cfg.SeedPath, "scenarios", len(scenarios))
	}

	if cfg.RedisAddr != "" {
		rdb := cache.NewRedisClient(cfg.RedisAddr)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warnw("redis unavailable, plan cache disabled", "addr", cfg.RedisAddr, "err", err)
		} else {
			planner.Cache = cache.NewRedisPlanCache(rdb, log)
		}
	}

	router := api.NewRouter(api.RouterConfig{
		Repo:     planner.Repo,
		Planner:  planner,
		Log:      log,
		Requests: m,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warnw("server shutdown", "err", err)
		}
	}()

	log.Infow("server listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
