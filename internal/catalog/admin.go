// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package catalog

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manasse33/etravel/internal/platform/middleware"
	requestutil "github.com/manasse33/etravel/internal/platform/request"
	"github.com/manasse33/etravel/internal/platform/respond"
	"github.com/manasse33/etravel/internal/platform/sec"
)

// Deleter is the destructive slice of the gateway client.
type Deleter interface {
	Delete(ctx context.Context, resource string, id int) error
}

// Recorder appends one entry to the audit trail.
type Recorder interface {
	Record(ctx context.Context, actorID, action, resource string, recordID *int)
}

// AdminService performs the catalog mutations that bypass edit sessions:
// record deletion. Creation and update always go through a session.
type AdminService struct {
	deleter Deleter
	catalog *Service
	audit   Recorder
}

// NewAdminService constructs an [AdminService].
func NewAdminService(deleter Deleter, catalog *Service, audit Recorder) *AdminService {
	return &AdminService{deleter: deleter, catalog: catalog, audit: audit}
}

/*
Delete removes a record upstream, records the deletion, and drops the
cached listing so public pages stop showing the record immediately.

Parameters:
  - ctx: context.Context
  - actorID: string
  - resource: string
  - id: int

Returns:
  - error: Upstream failures
*/
func (service *AdminService) Delete(ctx context.Context, actorID, resource string, id int) error {
	if err := service.deleter.Delete(ctx, resource, id); err != nil {
		return err
	}

	service.audit.Record(ctx, actorID, "delete", resource, &id)
	service.catalog.Invalidate(ctx, resource)
	return nil
}

// AdminHandler exposes the destructive catalog endpoints. Admin only.
type AdminHandler struct {
	adminService *AdminService
}

// NewAdminHandler constructs a new [AdminHandler] with its service dependency.
func NewAdminHandler(service *AdminService) *AdminHandler {
	return &AdminHandler{adminService: service}
}

// Routes returns a [chi.Router] with the admin catalog endpoints.
//
// # Endpoints
//   - DELETE /{section}/{id} : Permanently removes a record upstream (admin).
func (handler *AdminHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Delete("/{section}/{id}", handler.delete)
	})

	return router
}

// delete handles DELETE /{section}/{id}.
func (handler *AdminHandler) delete(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	resource, err := ParseSection(requestutil.Param(request, "section"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.adminService.Delete(request.Context(), actorID, resource, id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
