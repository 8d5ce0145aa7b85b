// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/manasse33/etravel/internal/gateway"
	"github.com/manasse33/etravel/internal/platform/apperr"
	"github.com/manasse33/etravel/internal/queue"
)

// Upstream is the slice of the gateway client the booking flow needs.
type Upstream interface {
	Get(ctx context.Context, resource string, id int) (*gateway.Record, error)
	Submit(ctx context.Context, resource string, recordID *int, payload *gateway.Payload) (*gateway.Record, error)
}

// Service orchestrates reservation submissions.
type Service struct {
	upstream  Upstream
	publisher queue.Publisher
	logger    *slog.Logger
}

// NewService constructs a booking [Service].
func NewService(upstream Upstream, publisher queue.Publisher, logger *slog.Logger) *Service {
	return &Service{upstream: upstream, publisher: publisher, logger: logger}
}

/*
Reserve validates and submits a reservation request.

Description: The referenced offer is fetched first so a reservation can never
target a record that no longer exists, and so the confirmation (and the
published event) can carry the offer title. Event publishing is best-effort.

Parameters:
  - ctx: context.Context
  - input: ReservationInput

Returns:
  - *Confirmation: Accepted reservation summary
  - error: Validation, missing offer, or upstream failures
*/
func (service *Service) Reserve(ctx context.Context, input ReservationInput) (*Confirmation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	resource := offerResources[input.OfferType]
	offer, err := service.upstream.Get(ctx, resource, input.OfferID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, apperr.NotFound("Offer")
	}

	record, err := service.upstream.Submit(ctx, gateway.ResourceReservations, nil, input.payload())
	if err != nil {
		return nil, err
	}

	confirmation := &Confirmation{
		OfferType:  input.OfferType,
		OfferID:    input.OfferID,
		OfferTitle: offerTitle(offer),
		Status:     "submitted",
	}
	if record != nil {
		confirmation.ReservationID = record.ID
	}

	event := queue.ReservationSubmittedEvent{
		ReservationID: confirmation.ReservationID,
		OfferType:     input.OfferType,
		OfferID:       input.OfferID,
		OfferTitle:    confirmation.OfferTitle,
		FullName:      input.FullName,
		Email:         input.Email,
		Phone:         input.Phone,
		People:        input.People,
		TravelDate:    input.TravelDate,
		SubmittedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := service.publisher.PublishReservationSubmitted(ctx, event); err != nil {
		service.logger.Warn("reservation_event_publish_failed",
			slog.String("offer_type", input.OfferType),
			slog.Int("offer_id", input.OfferID),
			slog.Any("error", err),
		)
	}

	return confirmation, nil
}

func offerTitle(record *gateway.Record) string {
	if record.Title != "" {
		return record.Title
	}
	return record.Name
}
