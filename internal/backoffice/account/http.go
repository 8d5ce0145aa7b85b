// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manasse33/etravel/internal/platform/middleware"
	requestutil "github.com/manasse33/etravel/internal/platform/request"
	"github.com/manasse33/etravel/internal/platform/respond"
	"github.com/manasse33/etravel/internal/platform/sec"
	"github.com/manasse33/etravel/internal/platform/validate"
)

// Handler implements the staff account HTTP endpoints.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] with the account endpoints.
//
// # Endpoints
//   - POST  /login                     : Authenticates and returns a JWT.
//   - GET   /accounts                  : Lists staff accounts (admin).
//   - POST  /accounts                  : Enrolls a new staff member (admin).
//   - PATCH /accounts/{id}/activation  : Activates or deactivates an account (admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Get("/accounts", handler.list)
		admin.Post("/accounts", handler.register)
		admin.Patch("/accounts/{id}/activation", handler.setActivation)
	})

	return router
}

// loginRequest is the JSON payload for POST /login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login handles POST /login.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.Required("username", input.Username).
		Required("password", input.Password)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.accountService.Login(request.Context(), input.Username, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// registerRequest is the JSON payload for POST /accounts.
type registerRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// register handles POST /accounts.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.Required("username", input.Username).
		MinLen("username", input.Username, 3).
		MaxLen("username", input.Username, 40).
		Required("password", input.Password).
		MinLen("password", input.Password, 8).
		MaxLen("display_name", input.DisplayName, 120).
		OneOf("role", input.Role, string(sec.RoleAdmin), string(sec.RoleEditor), string(sec.RoleAgent))
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.accountService.Register(request.Context(), RegisterInput{
		Username:    input.Username,
		Password:    input.Password,
		DisplayName: input.DisplayName,
		Role:        sec.Role(input.Role),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

// list handles GET /accounts.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	accounts, err := handler.accountService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, accounts)
}

// activationRequest is the JSON payload for PATCH /accounts/{id}/activation.
type activationRequest struct {
	Active bool `json:"active"`
}

// setActivation handles PATCH /accounts/{id}/activation.
func (handler *Handler) setActivation(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input activationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.accountService.SetActive(request.Context(), actorID, requestutil.Param(request, "id"), input.Active); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
