// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

// Package queue publishes domain events to RabbitMQ for downstream
// consumers (confirmation mails, the agency's CRM, analytics).
package queue

// ReservationSubmittedEvent is published when a visitor's reservation
// request was accepted by the upstream API. It carries enough context for
// consumers to act without calling back into the service.
type ReservationSubmittedEvent struct {
	ReservationID int    `json:"reservation_id,omitempty"`
	OfferType     string `json:"offer_type"`
	OfferID       int    `json:"offer_id"`
	OfferTitle    string `json:"offer_title,omitempty"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	People        int    `json:"people"`
	TravelDate    string `json:"travel_date,omitempty"`
	SubmittedAt   string `json:"submitted_at"`
}
