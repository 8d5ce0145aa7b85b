// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"sort"

	"github.com/manasse33/etravel/internal/platform/apperr"
)

// upstreamErrorBody is the error envelope the remote API returns. Validation
// failures carry a per-field message map (Laravel convention); other errors
// only a message.
type upstreamErrorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// mapErrorResponse converts a non-2xx upstream response into an
// [apperr.AppError]. Validation details are surfaced verbatim so the admin
// can correct inputs and resubmit; the editor state is never touched here.
func mapErrorResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var body upstreamErrorBody
	_ = json.Unmarshal(raw, &body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperr.NotFound("Record")

	case resp.StatusCode == http.StatusUnprocessableEntity || resp.StatusCode == http.StatusBadRequest:
		message := body.Message
		if message == "" {
			message = "The travel service rejected the submission"
		}
		return apperr.ValidationError(message, fieldDetails(body.Errors)...)

	case resp.StatusCode == http.StatusConflict:
		message := body.Message
		if message == "" {
			message = "The record conflicts with an existing one"
		}
		return apperr.Conflict(message)

	default:
		return apperr.Upstream(&statusError{status: resp.StatusCode, message: body.Message})
	}
}

// fieldDetails flattens the upstream's field→messages map into ordered
// [apperr.FieldError] values. Fields are sorted so responses are stable.
func fieldDetails(errors map[string][]string) []apperr.FieldError {
	if len(errors) == 0 {
		return nil
	}

	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var details []apperr.FieldError
	for _, field := range fields {
		for _, message := range errors[field] {
			details = append(details, apperr.FieldError{Field: field, Message: message})
		}
	}
	return details
}

// statusError preserves the upstream status for server-side logs.
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string {
	if e.message != "" {
		return e.message
	}
	return http.StatusText(e.status)
}
