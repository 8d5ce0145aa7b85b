// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

/*
Package gateway is the HTTP client for the remote Etravel REST API — the
system of record for countries, cities, packages, weekends, tours, and
reservations.

It is a thin collaborator by design: it authenticates requests, decodes
upstream records into the normalized [Record] shape, encodes submission
payloads as multipart form data, and maps upstream failures into the
service's error taxonomy. No business rules live here.

# PUT Tunneling

The upstream router only accepts POST for mutations; updates are expressed
by posting to the record URL with a `_method=PUT` override field. The field
is part of the serialized payload, not something this client invents.
*/
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/manasse33/etravel/internal/platform/apperr"
)

// Upstream resource paths.
const (
	ResourceCountries    = "countries"
	ResourceCities       = "cities"
	ResourcePackages     = "packages"
	ResourceWeekends     = "weekends"
	ResourceTours        = "tours"
	ResourceReservations = "reservations"
)

// requestTimeout bounds any single upstream call.
const requestTimeout = 15 * time.Second

// Client performs authenticated requests against the remote Etravel API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient constructs a gateway client. apiKey may be empty: the current
// upstream deployment enforces no guard, the header is sent only when
// configured.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// listEnvelope tolerates both enveloped ({"data": [...]}) and bare-array
// list responses; the upstream mixes the two across resources.
type listEnvelope struct {
	Data []*Record `json:"data"`
}

// List fetches every record of a resource.
func (client *Client) List(ctx context.Context, resource string) ([]*Record, error) {
	raw, err := client.do(ctx, http.MethodGet, client.url(resource), nil, "")
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}

	var records []*Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, apperr.Upstream(fmt.Errorf("gateway: malformed list response for %s: %w", resource, err))
	}
	return records, nil
}

// Get fetches a single record by identity.
func (client *Client) Get(ctx context.Context, resource string, id int) (*Record, error) {
	raw, err := client.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", client.url(resource), id), nil, "")
	if err != nil {
		return nil, err
	}
	return decodeRecord(raw, resource)
}

// Submit posts a serialized payload. recordID selects between creation
// (POST /resource) and update (POST /resource/{id} with the payload's
// _method=PUT override).
func (client *Client) Submit(ctx context.Context, resource string, recordID *int, payload *Payload) (*Record, error) {
	url := client.url(resource)
	if recordID != nil {
		url = fmt.Sprintf("%s/%d", url, *recordID)
	}

	body, contentType, err := payload.EncodeMultipart()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	raw, err := client.do(ctx, http.MethodPost, url, body, contentType)
	if err != nil {
		return nil, err
	}
	return decodeRecord(raw, resource)
}

// Delete removes a record upstream.
func (client *Client) Delete(ctx context.Context, resource string, id int) error {
	_, err := client.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", client.url(resource), id), nil, "")
	return err
}

// do executes one request and returns the raw response body on 2xx.
func (client *Client) do(ctx context.Context, method, url string, body io.Reader, contentType string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	request.Header.Set("Accept", "application/json")
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	if client.apiKey != "" {
		request.Header.Set("Authorization", "Bearer "+client.apiKey)
	}

	startTime := time.Now()
	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.Error("upstream_request_failed",
			slog.String("method", method),
			slog.String("url", url),
			slog.Any("error", err),
		)
		return nil, apperr.Upstream(err)
	}
	defer func() { _ = response.Body.Close() }()

	client.logger.Debug("upstream_request_finished",
		slog.String("method", method),
		slog.String("url", url),
		slog.Int("status", response.StatusCode),
		slog.Int64("latency_ms", time.Since(startTime).Milliseconds()),
	)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, mapErrorResponse(response)
	}

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	return raw, nil
}

func (client *Client) url(resource string) string {
	return client.baseURL + "/" + resource
}

// decodeRecord unwraps a single-record response, tolerating the {"data": {}}
// envelope. Empty bodies (204-style deletes, some creates) yield nil.
func decodeRecord(raw []byte, resource string) (*Record, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, nil
	}

	var envelope struct {
		Data *Record `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}

	record := &Record{}
	if err := json.Unmarshal(raw, record); err != nil {
		return nil, apperr.Upstream(fmt.Errorf("gateway: malformed record response for %s: %w", resource, err))
	}
	return record, nil
}
