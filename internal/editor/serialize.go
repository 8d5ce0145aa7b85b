// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package editor

import (
	"encoding/json"

	"github.com/manasse33/etravel/internal/gateway"
	"github.com/manasse33/etravel/internal/platform/apperr"
	"github.com/manasse33/etravel/internal/platform/constants"
	"github.com/manasse33/etravel/pkg/pointer"
)

// wireTier is the upstream shape of one price grid row. MaxPeople stays a
// pointer so "unbounded" drops off the wire entirely.
type wireTier struct {
	DepartureCountryID *int   `json:"departure_country_id,omitempty"`
	ArrivalCityID      *int   `json:"arrival_city_id,omitempty"`
	MinPeople          int    `json:"min_people"`
	MaxPeople          *int   `json:"max_people,omitempty"`
	Price              int    `json:"price"`
	Currency           string `json:"currency"`
}

// Serialize renders the session into a transport-ready payload: the ordered
// scalar fields, one JSON-encoded field per collection under its wire name,
// the staged image if any, and the _method=PUT override when the session
// updates an existing record.
//
// Serialize reads the session without mutating it; calling it twice on
// unchanged state yields identical payloads.
func (s *Session) Serialize() (*gateway.Payload, error) {
	spec := Spec(s.Kind)
	payload := &gateway.Payload{}

	if s.RecordID != nil {
		payload.Set(constants.MethodOverrideField, constants.MethodOverridePut)
	}

	for _, field := range spec.Scalars {
		if value := s.Scalars[field]; value != "" {
			payload.Set(field, value)
		}
	}

	for _, c := range spec.Collections {
		encoded, err := encodeCollection(c, s.Collections[c.Name])
		if err != nil {
			return nil, err
		}
		payload.Set(c.WireName, encoded)
	}

	if s.Image != nil {
		payload.Attach(s.Image.FieldName, s.Image.Filename, s.Image.ContentType, s.Image.Content)
	}

	return payload, nil
}

// encodeCollection renders one collection as the JSON array string the
// upstream expects under the collection's wire field. Empty collections
// serialize as "[]", which the upstream reads as "remove all rows".
func encodeCollection(spec CollectionSpec, items []Item) (string, error) {
	switch spec.Relation {
	case RelationPriceTier:
		tiers := make([]wireTier, 0, len(items))
		for _, item := range items {
			tiers = append(tiers, tierToWire(item.Price))
		}
		return marshalCollection(tiers)

	case RelationInclusion:
		labels := make([]string, 0, len(items))
		for _, item := range items {
			labels = append(labels, item.Inclusion.Label)
		}
		return marshalCollection(labels)

	case RelationLinkedEntity:
		ids := make([]int, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.Link.ID)
		}
		return marshalCollection(ids)

	default:
		return "", apperr.Internal(nil)
	}
}

// tierToWire applies the submission fallbacks: a tier whose minimum was
// cleared ships as 1, a cleared price ships as 0.
func tierToWire(tier *PriceTier) wireTier {
	wire := wireTier{
		DepartureCountryID: tier.DepartureCountryID,
		ArrivalCityID:      tier.ArrivalCityID,
		MinPeople:          pointer.Fallback(tier.MinPeople, DefaultMinPeople),
		MaxPeople:          tier.MaxPeople,
		Price:              pointer.Val(tier.Price),
		Currency:           tier.Currency,
	}
	if wire.Currency == "" {
		wire.Currency = DefaultCurrency
	}
	return wire
}

func marshalCollection(value any) (string, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return string(encoded), nil
}

// ResourcePath returns the upstream resource the session submits to.
func (s *Session) ResourcePath() string {
	return Spec(s.Kind).Resource
}

// Summary is the compact session projection rendered in list views and
// mutation responses.
type Summary struct {
	ID        string         `json:"id"`
	Kind      Kind           `json:"kind"`
	RecordID  *int           `json:"record_id,omitempty"`
	Mode      string         `json:"mode"`
	Counts    map[string]int `json:"counts"`
	UpdatedAt string         `json:"updated_at"`
}

// Summarize builds the projection for s.
func (s *Session) Summarize() Summary {
	counts := make(map[string]int, len(s.Collections))
	for name, items := range s.Collections {
		counts[name] = len(items)
	}

	mode := "create"
	if s.RecordID != nil {
		mode = "update"
	}

	return Summary{
		ID:        s.ID,
		Kind:      s.Kind,
		RecordID:  s.RecordID,
		Mode:      mode,
		Counts:    counts,
		UpdatedAt: s.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
