// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package audit

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manasse33/etravel/internal/platform/middleware"
	"github.com/manasse33/etravel/internal/platform/respond"
	"github.com/manasse33/etravel/internal/platform/sec"
	"github.com/manasse33/etravel/pkg/pagination"
)

// Handler exposes the audit trail to administrators.
type Handler struct {
	auditService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{auditService: service}
}

// Routes returns a [chi.Router] with the audit endpoints, mounted under
// /audit by the server.
//
// # Endpoints
//   - GET / : Paginated trail, newest first (admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Get("/", handler.list)
	})

	return router
}

// list handles GET /audit.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	entries, meta, err := handler.auditService.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, meta)
}
