// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package editor

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manasse33/etravel/internal/platform/apperr"
	"github.com/manasse33/etravel/internal/platform/constants"
	requestutil "github.com/manasse33/etravel/internal/platform/request"
	"github.com/manasse33/etravel/internal/platform/respond"
	"github.com/manasse33/etravel/internal/platform/validate"
)

// Handler exposes the edit session lifecycle over HTTP. Every route requires
// an authenticated editor; ownership of individual sessions is enforced in
// the service.
type Handler struct {
	editorService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{editorService: service}
}

// Routes returns a [chi.Router] with the session endpoints, mounted under
// /sessions by the server.
//
// # Endpoints
//   - POST   /                                   : Open a session.
//   - GET    /{id}                               : Inspect a session.
//   - PUT    /{id}/scalars/{field}               : Set a top-level field.
//   - POST   /{id}/collections/{name}/items      : Append a default item.
//   - PATCH  /{id}/collections/{name}/items/{index} : Edit one item field.
//   - DELETE /{id}/collections/{name}/items/{index} : Remove an item.
//   - PUT    /{id}/image                          : Stage a new image.
//   - POST   /{id}/submit                         : Serialize and send upstream.
//   - DELETE /{id}                                : Discard the session.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.openSession)
	router.Get("/{id}", handler.getSession)
	router.Delete("/{id}", handler.cancelSession)
	router.Post("/{id}/submit", handler.submitSession)

	router.Put("/{id}/scalars/{field}", handler.setScalar)
	router.Put("/{id}/image", handler.attachImage)

	router.Post("/{id}/collections/{name}/items", handler.addItem)
	router.Patch("/{id}/collections/{name}/items/{index}", handler.updateItem)
	router.Delete("/{id}/collections/{name}/items/{index}", handler.removeItem)

	return router
}

// openSessionRequest is the JSON payload for POST /sessions.
type openSessionRequest struct {
	Kind     string `json:"kind"`
	RecordID *int   `json:"record_id"`
}

// openSession handles POST /sessions.
func (handler *Handler) openSession(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input openSessionRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	kind, err := ParseKind(input.Kind)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.editorService.OpenSession(request.Context(), userID, kind, input.RecordID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, session)
}

// getSession handles GET /sessions/{id}.
func (handler *Handler) getSession(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.editorService.GetSession(request.Context(), userID, requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

// setScalarRequest is the JSON payload for PUT /sessions/{id}/scalars/{field}.
type setScalarRequest struct {
	Value string `json:"value"`
}

// setScalar handles PUT /sessions/{id}/scalars/{field}.
func (handler *Handler) setScalar(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input setScalarRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	session, err := handler.editorService.SetScalar(
		request.Context(),
		userID,
		requestutil.Param(request, "id"),
		requestutil.Param(request, "field"),
		input.Value,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session.Summarize())
}

// addItem handles POST /sessions/{id}/collections/{name}/items.
func (handler *Handler) addItem(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.editorService.AddItem(
		request.Context(),
		userID,
		requestutil.Param(request, "id"),
		requestutil.Param(request, "name"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, session.Summarize())
}

// updateItemRequest is the JSON payload for PATCH .../items/{index}.
// Value stays a raw string; coercion is the session's job.
type updateItemRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// updateItem handles PATCH /sessions/{id}/collections/{name}/items/{index}.
func (handler *Handler) updateItem(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	index, err := requestutil.IntParam(request, "index")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateItemRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.Field == "" {
		respond.Error(writer, request, apperr.ValidationError("Field name is required"))
		return
	}

	session, err := handler.editorService.UpdateItem(
		request.Context(),
		userID,
		requestutil.Param(request, "id"),
		requestutil.Param(request, "name"),
		index,
		input.Field,
		input.Value,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session.Summarize())
}

// removeItem handles DELETE /sessions/{id}/collections/{name}/items/{index}.
func (handler *Handler) removeItem(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	index, err := requestutil.IntParam(request, "index")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.editorService.RemoveItem(
		request.Context(),
		userID,
		requestutil.Param(request, "id"),
		requestutil.Param(request, "name"),
		index,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session.Summarize())
}

// attachImage handles PUT /sessions/{id}/image (multipart/form-data with an
// "image" part).
func (handler *Handler) attachImage(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := request.ParseMultipartForm(constants.MaxImageBytes); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Request must be multipart/form-data with an image part"))
		return
	}

	file, header, err := request.FormFile(constants.ImageField)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Image part is missing"))
		return
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(io.LimitReader(file, constants.MaxImageBytes+1))
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	session, err := handler.editorService.AttachImage(
		request.Context(),
		userID,
		requestutil.Param(request, "id"),
		header.Filename,
		header.Header.Get("Content-Type"),
		content,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session.Summarize())
}

// submitSession handles POST /sessions/{id}/submit.
func (handler *Handler) submitSession(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.editorService.Submit(request.Context(), userID, requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// cancelSession handles DELETE /sessions/{id}.
func (handler *Handler) cancelSession(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.editorService.Cancel(request.Context(), userID, requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
