// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

/*
Package editor implements the back-office edit sessions: short-lived,
per-admin working copies of a catalog record and its nested relation
collections (price grids, inclusions, linked cities).

A session is a value-typed snapshot. Opening one copies the upstream record
field by field; edits mutate only the session; nothing reaches the remote
API until Submit serializes the whole state into one multipart payload.
Cancelling a session discards every change at zero cost.
*/
package editor

import (
	"strconv"
	"time"

	"github.com/manasse33/etravel/internal/gateway"
	"github.com/manasse33/etravel/internal/platform/apperr"
	"github.com/manasse33/etravel/internal/platform/constants"
	"github.com/manasse33/etravel/pkg/uuidv7"
)

// Session is one in-flight edit. RecordID is nil when creating a new record
// and set when editing an existing one; the distinction drives the
// _method=PUT override at serialization time.
type Session struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Kind    Kind   `json:"kind"`

	RecordID *int `json:"record_id,omitempty"`

	Scalars     map[string]string `json:"scalars"`
	Collections map[string][]Item `json:"collections"`

	// Image is set only when the admin picked a new file this session.
	// Absent means "keep whatever the record already has".
	Image *gateway.FilePart `json:"image,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Open starts a session for kind. When record is non-nil the session is an
// update of that record and its current state is copied in; otherwise the
// session is a creation seeded with the kind's defaults.
func Open(ownerID string, kind Kind, record *gateway.Record) *Session {
	spec := Spec(kind)
	now := time.Now().UTC()

	session := &Session{
		ID:          uuidv7.New(),
		OwnerID:     ownerID,
		Kind:        kind,
		Scalars:     make(map[string]string, len(spec.Scalars)),
		Collections: make(map[string][]Item, len(spec.Collections)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, c := range spec.Collections {
		session.Collections[c.Name] = []Item{}
	}

	if record == nil {
		for field, value := range spec.Defaults {
			session.Scalars[field] = value
		}
		return session
	}

	session.RecordID = &record.ID
	session.copyScalars(spec, record)
	session.copyCollections(spec, record)
	return session
}

// SetScalar updates one top-level field of the working copy.
func (s *Session) SetScalar(field, value string) error {
	if !Spec(s.Kind).hasScalar(field) {
		return apperr.ValidationError("Unknown field '" + field + "' for " + string(s.Kind))
	}
	s.Scalars[field] = value
	s.touch()
	return nil
}

// AddItem appends the default template item to the named collection and
// returns its index.
func (s *Session) AddItem(collection string) (int, error) {
	spec, ok := Spec(s.Kind).collection(collection)
	if !ok {
		return 0, apperr.ValidationError("Unknown collection '" + collection + "' for " + string(s.Kind))
	}

	s.Collections[collection] = append(s.Collections[collection], NewItem(spec.Relation))
	s.touch()
	return len(s.Collections[collection]) - 1, nil
}

// UpdateItem coerces raw into the named field of the item at index. The slot
// is replaced with an edited clone so any previously returned item value
// never observes the change. An out-of-range index is a caller bug and
// fails loudly.
func (s *Session) UpdateItem(collection string, index int, field, raw string) error {
	items, err := s.items(collection, index)
	if err != nil {
		return err
	}

	edited := items[index].clone()
	if err := edited.setField(field, raw); err != nil {
		return err
	}

	items[index] = edited
	s.touch()
	return nil
}

// RemoveItem deletes the item at index. An out-of-range index is a silent
// no-op: remove races a concurrent tab's remove of the same row, and the
// end state the admin wanted is identical either way.
func (s *Session) RemoveItem(collection string, index int) error {
	if _, ok := Spec(s.Kind).collection(collection); !ok {
		return apperr.ValidationError("Unknown collection '" + collection + "' for " + string(s.Kind))
	}

	items := s.Collections[collection]
	if index < 0 || index >= len(items) {
		return nil
	}

	s.Collections[collection] = append(items[:index], items[index+1:]...)
	s.touch()
	return nil
}

// AttachImage stages a newly selected image for the next submission.
func (s *Session) AttachImage(filename, contentType string, content []byte) {
	s.Image = &gateway.FilePart{
		FieldName:   constants.ImageField,
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
	}
	s.touch()
}

func (s *Session) items(collection string, index int) ([]Item, error) {
	if _, ok := Spec(s.Kind).collection(collection); !ok {
		return nil, apperr.ValidationError("Unknown collection '" + collection + "' for " + string(s.Kind))
	}

	items := s.Collections[collection]
	if index < 0 || index >= len(items) {
		return nil, apperr.ValidationError("No item at position " + strconv.Itoa(index) + " in '" + collection + "'")
	}
	return items, nil
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}

// copyScalars installs the record's current values for every scalar the kind
// declares, falling back to the kind's defaults for fields the record does
// not carry.
func (s *Session) copyScalars(spec KindSpec, record *gateway.Record) {
	for _, field := range spec.Scalars {
		if value, ok := recordScalar(record, field); ok {
			s.Scalars[field] = value
			continue
		}
		if value, ok := spec.Defaults[field]; ok {
			s.Scalars[field] = value
		}
	}
}

// copyCollections rebuilds every collection from the record's nested rows.
// Items are fresh values; the session shares nothing with the record.
func (s *Session) copyCollections(spec KindSpec, record *gateway.Record) {
	for _, c := range spec.Collections {
		switch c.Relation {
		case RelationPriceTier:
			for _, row := range record.Prices {
				s.Collections[c.Name] = append(s.Collections[c.Name], Item{
					Kind: RelationPriceTier,
					Price: &PriceTier{
						DepartureCountryID: cloneInt(row.DepartureCountryID),
						ArrivalCityID:      cloneInt(row.ArrivalCityID),
						MinPeople:          cloneInt(row.MinPeople),
						MaxPeople:          cloneInt(row.MaxPeople),
						Price:              cloneInt(row.Price),
						Currency:           fallbackCurrency(row.Currency),
					},
				})
			}
		case RelationInclusion:
			for _, label := range record.Inclusions {
				s.Collections[c.Name] = append(s.Collections[c.Name], Item{
					Kind:      RelationInclusion,
					Inclusion: &Inclusion{Label: label},
				})
			}
		case RelationLinkedEntity:
			for _, city := range record.AdditionalCities {
				s.Collections[c.Name] = append(s.Collections[c.Name], Item{
					Kind: RelationLinkedEntity,
					Link: &LinkedEntityRef{ID: city.ID, Label: city.Name},
				})
			}
		}
	}
}

// recordScalar extracts the record value backing a scalar field name.
func recordScalar(record *gateway.Record, field string) (string, bool) {
	switch field {
	case "name":
		return record.Name, record.Name != ""
	case "title":
		return record.Title, record.Title != ""
	case "description":
		return record.Description, record.Description != ""
	case "currency":
		return record.Currency, record.Currency != ""
	case "date":
		return record.Date, record.Date != ""
	case "price":
		return intScalar(record.Price)
	case "min_people":
		return intScalar(record.MinPeople)
	case "max_people":
		return intScalar(record.MaxPeople)
	case "country_id":
		return intScalar(record.CountryID)
	case "city_id":
		return intScalar(record.CityID)
	case "departure_country_id":
		return intScalar(record.DepartureCountryID)
	}
	return "", false
}

func intScalar(p *int) (string, bool) {
	if p == nil {
		return "", false
	}
	return strconv.Itoa(*p), true
}

func fallbackCurrency(currency string) string {
	if currency == "" {
		return DefaultCurrency
	}
	return currency
}
