// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

/*
Package booking handles visitor reservation requests: the one write
operation exposed on the public surface.

A reservation references an offer (package, weekend, or tour), carries the
visitor's contact details, and is forwarded to the remote Etravel API. On
acceptance a domain event is published for downstream consumers; publish
failures are logged, never surfaced, since the reservation already landed.
*/
package booking

import (
	"strconv"

	"github.com/manasse33/etravel/internal/gateway"
	"github.com/manasse33/etravel/internal/platform/validate"
)

// Offer types a reservation can reference.
const (
	OfferPackage = "package"
	OfferWeekend = "weekend"
	OfferTour    = "tour"
)

// offerResources maps an offer type to the upstream resource holding it.
var offerResources = map[string]string{
	OfferPackage: gateway.ResourcePackages,
	OfferWeekend: gateway.ResourceWeekends,
	OfferTour:    gateway.ResourceTours,
}

// ReservationInput is a visitor's reservation request.
type ReservationInput struct {
	OfferType string `json:"offer_type"`
	OfferID   int    `json:"offer_id"`

	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	People   int    `json:"people"`

	// TravelDate is optional for dated offers (weekends and tours carry
	// their own date); required for packages.
	TravelDate string `json:"travel_date,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Validate applies the reservation business rules.
func (input ReservationInput) Validate() error {
	v := &validate.Validator{}

	v.Required("full_name", input.FullName).
		MaxLen("full_name", input.FullName, 120).
		Required("email", input.Email).
		Email("email", input.Email).
		Required("phone", input.Phone).
		Phone("phone", input.Phone).
		Positive("people", input.People).
		Range("people", input.People, 1, 50).
		OneOf("offer_type", input.OfferType, OfferPackage, OfferWeekend, OfferTour).
		Custom("offer_id", input.OfferID <= 0, "A valid offer is required").
		MaxLen("message", input.Message, 1000)

	if input.TravelDate != "" {
		v.Date("travel_date", input.TravelDate).
			FutureDate("travel_date", input.TravelDate)
	} else if input.OfferType == OfferPackage {
		v.Custom("travel_date", true, "A travel date is required for packages")
	}

	return v.Err()
}

// payload renders the reservation as the multipart submission the upstream
// expects.
func (input ReservationInput) payload() *gateway.Payload {
	payload := &gateway.Payload{}
	payload.Set("offer_type", input.OfferType)
	payload.Set("offer_id", strconv.Itoa(input.OfferID))
	payload.Set("full_name", input.FullName)
	payload.Set("email", input.Email)
	payload.Set("phone", input.Phone)
	payload.Set("people", strconv.Itoa(input.People))
	if input.TravelDate != "" {
		payload.Set("travel_date", input.TravelDate)
	}
	if input.Message != "" {
		payload.Set("message", input.Message)
	}
	return payload
}

// Confirmation is returned to the visitor after a successful submission.
type Confirmation struct {
	ReservationID int    `json:"reservation_id,omitempty"`
	OfferType     string `json:"offer_type"`
	OfferID       int    `json:"offer_id"`
	OfferTitle    string `json:"offer_title,omitempty"`
	Status        string `json:"status"`
}
