// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package booking_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manasse33/etravel/internal/booking"
	"github.com/manasse33/etravel/internal/gateway"
	"github.com/manasse33/etravel/internal/platform/apperr"
	"github.com/manasse33/etravel/internal/queue"
)

func validInput() booking.ReservationInput {
	return booking.ReservationInput{
		OfferType:  booking.OfferWeekend,
		OfferID:    12,
		FullName:   "Awa Ndiaye",
		Email:      "awa.ndiaye@example.sn",
		Phone:      "+221 77 123 45 67",
		People:     2,
		TravelDate: "2027-03-12",
	}
}

/*
TestReservationInput_Validate covers the reservation business rules.
*/
func TestReservationInput_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*booking.ReservationInput)
		wantField string
	}{
		{"valid", func(*booking.ReservationInput) {}, ""},
		{"missing_name", func(in *booking.ReservationInput) { in.FullName = "" }, "full_name"},
		{"bad_email", func(in *booking.ReservationInput) { in.Email = "not-an-email" }, "email"},
		{"bad_phone", func(in *booking.ReservationInput) { in.Phone = "abc" }, "phone"},
		{"zero_people", func(in *booking.ReservationInput) { in.People = 0 }, "people"},
		{"too_many_people", func(in *booking.ReservationInput) { in.People = 80 }, "people"},
		{"unknown_offer_type", func(in *booking.ReservationInput) { in.OfferType = "cruise" }, "offer_type"},
		{"missing_offer_id", func(in *booking.ReservationInput) { in.OfferID = 0 }, "offer_id"},
		{"past_date", func(in *booking.ReservationInput) { in.TravelDate = "2020-01-01" }, "travel_date"},
		{"malformed_date", func(in *booking.ReservationInput) { in.TravelDate = "12/03/2027" }, "travel_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			err := input.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			appError := apperr.As(err)
			require.NotNil(t, appError)

			fields := make([]string, 0, len(appError.Details))
			for _, detail := range appError.Details {
				fields = append(fields, detail.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

/*
TestReservationInput_PackageNeedsDate verifies packages require a travel
date while dated offers do not.
*/
func TestReservationInput_PackageNeedsDate(t *testing.T) {
	input := validInput()
	input.OfferType = booking.OfferPackage
	input.TravelDate = ""
	assert.Error(t, input.Validate())

	input = validInput()
	input.TravelDate = ""
	assert.NoError(t, input.Validate(), "weekends carry their own date")
}

// fakeUpstream serves one offer and records the submission.
type fakeUpstream struct {
	offer     *gateway.Record
	submitted *gateway.Payload
	resource  string
}

func (up *fakeUpstream) Get(_ context.Context, _ string, id int) (*gateway.Record, error) {
	if up.offer == nil || up.offer.ID != id {
		return nil, apperr.NotFound("Record")
	}
	return up.offer, nil
}

func (up *fakeUpstream) Submit(_ context.Context, resource string, _ *int, payload *gateway.Payload) (*gateway.Record, error) {
	up.resource = resource
	up.submitted = payload
	return &gateway.Record{ID: 555}, nil
}

// capturePublisher records events and optionally fails.
type capturePublisher struct {
	events []queue.ReservationSubmittedEvent
	err    error
}

func (pub *capturePublisher) PublishReservationSubmitted(_ context.Context, event queue.ReservationSubmittedEvent) error {
	if pub.err != nil {
		return pub.err
	}
	pub.events = append(pub.events, event)
	return nil
}

/*
TestService_Reserve verifies the happy path: offer lookup, reservation
submission, event publication.
*/
func TestService_Reserve(t *testing.T) {
	upstream := &fakeUpstream{offer: &gateway.Record{ID: 12, Title: "Weekend Lac Rose"}}
	publisher := &capturePublisher{}
	service := booking.NewService(upstream, publisher, slog.New(slog.DiscardHandler))

	confirmation, err := service.Reserve(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, 555, confirmation.ReservationID)
	assert.Equal(t, "Weekend Lac Rose", confirmation.OfferTitle)
	assert.Equal(t, "submitted", confirmation.Status)

	assert.Equal(t, gateway.ResourceReservations, upstream.resource)
	email, _ := upstream.submitted.Get("email")
	assert.Equal(t, "awa.ndiaye@example.sn", email)
	people, _ := upstream.submitted.Get("people")
	assert.Equal(t, "2", people)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, 555, publisher.events[0].ReservationID)
	assert.Equal(t, "Weekend Lac Rose", publisher.events[0].OfferTitle)
}

/*
TestService_Reserve_MissingOffer verifies a reservation cannot target an
offer that no longer exists.
*/
func TestService_Reserve_MissingOffer(t *testing.T) {
	service := booking.NewService(&fakeUpstream{}, &capturePublisher{}, slog.New(slog.DiscardHandler))

	_, err := service.Reserve(context.Background(), validInput())
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_Reserve_PublishFailureTolerated verifies a broker outage never
fails the reservation.
*/
func TestService_Reserve_PublishFailureTolerated(t *testing.T) {
	upstream := &fakeUpstream{offer: &gateway.Record{ID: 12, Title: "Weekend Lac Rose"}}
	publisher := &capturePublisher{err: errors.New("broker down")}
	service := booking.NewService(upstream, publisher, slog.New(slog.DiscardHandler))

	confirmation, err := service.Reserve(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "submitted", confirmation.Status)
}
