// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/manasse33/etravel/internal/platform/request"
	"github.com/manasse33/etravel/internal/platform/respond"
	"github.com/manasse33/etravel/internal/platform/validate"
)

// Handler exposes the public reservation endpoint.
type Handler struct {
	bookingService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{bookingService: service}
}

// Routes returns a [chi.Router] with the reservation endpoint.
//
// # Endpoints
//   - POST /reservations : Submit a reservation request.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/reservations", handler.reserve)

	return router
}

// reserve handles POST /reservations.
func (handler *Handler) reserve(writer http.ResponseWriter, request *http.Request) {
	var input ReservationInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	confirmation, err := handler.bookingService.Reserve(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Accepted(writer, confirmation)
}
