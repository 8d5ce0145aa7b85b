// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

The route tree splits in two: /api/v1 is the public marketing surface
(catalog browsing, reservations), /api/v1/backoffice is the authenticated
staff surface (edit sessions, account management, deletes, audit).
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/manasse33/etravel/internal/backoffice/account"
	"github.com/manasse33/etravel/internal/backoffice/audit"
	"github.com/manasse33/etravel/internal/booking"
	"github.com/manasse33/etravel/internal/catalog"
	"github.com/manasse33/etravel/internal/editor"
	"github.com/manasse33/etravel/internal/platform/config"
	"github.com/manasse33/etravel/internal/platform/constants"
	"github.com/manasse33/etravel/internal/platform/middleware"
	"github.com/manasse33/etravel/internal/platform/sec"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Catalog serves the public browse surface.
	Catalog *catalog.Handler

	// Booking accepts visitor reservations.
	Booking *booking.Handler

	// Account handles staff sign-in and enrollment.
	Account *account.Handler

	// Editor manages the back-office edit sessions.
	Editor *editor.Handler

	// CatalogAdmin performs destructive catalog operations.
	CatalogAdmin *catalog.AdminHandler

	// Audit exposes the mutation trail.
	Audit *audit.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		// Public surface: browsing and reservations.
		api.Mount("/catalog", h.Catalog.Routes())
		api.Mount("/", h.Booking.Routes())

		// Staff surface. Login is open inside; everything else carries
		// per-route role requirements on top of this authentication gate.
		api.Route("/backoffice", func(back chi.Router) {
			// Each handler owns a distinct prefix; chi rejects two mounts
			// on the same pattern.
			back.Mount("/", h.Account.Routes())
			back.Mount("/audit", h.Audit.Routes())
			back.Mount("/catalog", h.CatalogAdmin.Routes())

			back.Group(func(editors chi.Router) {
				editors.Use(middleware.RequireRole(sec.RoleEditor))
				editors.Mount("/sessions", h.Editor.Routes())
			})
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
