// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

// Command api is the entry point for the Etravel back-office HTTP server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire the upstream gateway, queue publisher, and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/manasse33/etravel/internal/api"
	"github.com/manasse33/etravel/internal/backoffice/account"
	"github.com/manasse33/etravel/internal/backoffice/audit"
	"github.com/manasse33/etravel/internal/booking"
	"github.com/manasse33/etravel/internal/catalog"
	"github.com/manasse33/etravel/internal/editor"
	"github.com/manasse33/etravel/internal/gateway"
	"github.com/manasse33/etravel/internal/platform/config"
	"github.com/manasse33/etravel/internal/platform/constants"
	"github.com/manasse33/etravel/internal/platform/migration"
	pgstore "github.com/manasse33/etravel/internal/platform/postgres"
	redisstore "github.com/manasse33/etravel/internal/platform/redis"
	"github.com/manasse33/etravel/internal/platform/sec"
	"github.com/manasse33/etravel/internal/queue"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Etravel] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("upstream", cfg.UpstreamBaseURL),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Upstream Gateway & Queue ───────────────────────────────────────
	upstream := gateway.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamAPIKey, log)
	publisher := queue.NewPublisher(cfg.AMQPURL, log)

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
		CheckUpstream: func() error {
			_, err := upstream.List(context.Background(), gateway.ResourceCountries)
			return err
		},
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	auditService := audit.NewService(audit.NewRepository(pool), log)

	accountService := account.NewService(account.NewRepository(pool), jwtSvc)

	catalogService := catalog.NewService(upstream, rdb, log)
	catalogAdmin := catalog.NewAdminService(upstream, catalogService, auditService)

	editorService := editor.NewService(editor.NewSessionRepository(rdb), upstream, auditService, log)

	bookingService := booking.NewService(upstream, publisher, log)

	handlers := api.Handlers{
		Liveness:     liveness,
		Readiness:    readiness,
		Catalog:      catalog.NewHandler(catalogService),
		Booking:      booking.NewHandler(bookingService),
		Account:      account.NewHandler(accountService),
		Editor:       editor.NewHandler(editorService),
		CatalogAdmin: catalog.NewAdminHandler(catalogAdmin),
		Audit:        audit.NewHandler(auditService),
	}

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
