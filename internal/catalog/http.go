// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/manasse33/etravel/internal/platform/request"
	"github.com/manasse33/etravel/internal/platform/respond"
	"github.com/manasse33/etravel/pkg/convert"
)

// Handler exposes the public catalog endpoints. No authentication; this is
// the marketing surface.
type Handler struct {
	catalogService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{catalogService: service}
}

// Routes returns a [chi.Router] with the catalog endpoints.
//
// # Endpoints
//   - GET /{section}       : List a section (countries, cities, packages, weekends, tours).
//   - GET /{section}/{id}  : One record with its full price grid and inclusions.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{section}", handler.list)
	router.Get("/{section}/{id}", handler.get)

	return router
}

// list handles GET /{section}. Optional country_id and city_id query
// parameters narrow the listing; anything non-numeric is ignored.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	resource, err := ParseSection(requestutil.Param(request, "section"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := ListFilter{
		CountryID: convert.ToInt(request.URL.Query().Get("country_id")),
		CityID:    convert.ToInt(request.URL.Query().Get("city_id")),
	}

	offers, err := handler.catalogService.List(request.Context(), resource, filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, offers)
}

// get handles GET /{section}/{id}.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
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

	offer, err := handler.catalogService.Get(request.Context(), resource, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, offer)
}
