package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"trainease/internal/apperr"
	"trainease/internal/authz"
	"trainease/internal/cache"
	"trainease/internal/config"
	"trainease/internal/database"
	"trainease/internal/handler"
	"trainease/internal/router"
	"trainease/internal/seed"
	"trainease/internal/service"
	"trainease/internal/session"
	"trainease/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 10 * time.Second

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	seedFn          = seed.Run
	newWorkerPool   = worker.NewPool
	newGuard        = authz.New
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
)

// run 依序執行 migration、seed，組好相依物件後啟動 HTTP 服務，直到 ctx 結束
func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	slog.SetDefault(log)

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if cfg.Seed {
		if err := seedFn(ctx, db, log); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	wp := newWorkerPool(cfg.WorkerCount, log)
	defer wp.Stop()

	var (
		cch   cache.Cache
		store session.Store
	)
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		cch, err = newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer cch.Close()
		store = session.NewRedisStore(cch)
	default:
		pg := session.NewPostgresStore(db)
		session.StartPruning(ctx, wp, pg, cfg.SessionPruneEvery, log)
		store = pg
	}

	guard, err := newGuard(ctx, cfg.AuthzEngine)
	if err != nil {
		return fmt.Errorf("authorization engine: %w", err)
	}

	e := newEcho(log)
	err = router.Setup(e, router.Deps{
		DB:                  db,
		Cache:               cch,
		Sessions:            session.NewManager(store, []byte(cfg.SessionSecret), cfg.SessionTTL),
		Bookings:            service.NewBookings(db, guard),
		AlternateBackendURL: cfg.AlternateBackendURL,
	})
	if err != nil {
		return err
	}

	log.Info("starting server",
		"addr", cfg.HTTPAddr,
		"session_store", cfg.SessionStore,
		"authz", cfg.AuthzEngine,
	)
	return serveUntilDone(ctx, e, cfg.HTTPAddr, log)
}

func newEcho(log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = apperr.HTTPErrorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				log.Warn("request", append(attrs, "error", v.Error)...)
				return nil
			}
			log.Info("request", attrs...)
			return nil
		},
	}))
	return e
}

func serveUntilDone(ctx context.Context, e *echo.Echo, addr string, log *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, addr) }()

	select {
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return shutdownServer(shutdownCtx, e)
}
