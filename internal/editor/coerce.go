// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package editor

import (
	"strconv"

	"github.com/manasse33/etravel/internal/platform/apperr"
)

// FieldType declares how raw input-control strings are coerced before being
// stored on a relation item.
//
// The legacy front end derived this by substring-matching field names
// ("_id", "price", "people") on every keystroke. Here the rule is a
// declarative per-variant table, resolved once, so the coercion policy is
// explicit and independently testable.
type FieldType int

const (
	// FieldText stores the raw string verbatim.
	FieldText FieldType = iota
	// FieldInteger parses the raw string as an integer; empty or invalid
	// input normalizes to nil, never to an error. Typing must never throw.
	FieldInteger
)

// fieldTypes maps each relation variant's editable fields to their type.
var fieldTypes = map[RelationKind]map[string]FieldType{
	RelationPriceTier: {
		"departure_country_id": FieldInteger,
		"arrival_city_id":      FieldInteger,
		"min_people":           FieldInteger,
		"max_people":           FieldInteger,
		"price":                FieldInteger,
		"currency":             FieldText,
	},
	RelationInclusion: {
		"label": FieldText,
	},
	RelationLinkedEntity: {
		"id":    FieldInteger,
		"label": FieldText,
	},
}

// coerceInt parses raw as an integer. Empty and malformed input both
// normalize to nil — the session-level representation of "no value".
func coerceInt(raw string) *int {
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

// setField writes the coerced value of raw into the named field of the item.
// The item must already be a private clone; setField mutates in place.
//
// An unknown field for the item's variant is a caller bug and returns a
// VALIDATION_ERROR rather than being silently dropped.
func (item *Item) setField(field, raw string) error {
	types, ok := fieldTypes[item.Kind]
	if !ok {
		return apperr.Internal(nil)
	}
	if _, ok := types[field]; !ok {
		return apperr.ValidationError("Unknown field '" + field + "' for " + string(item.Kind))
	}

	switch item.Kind {
	case RelationPriceTier:
		item.setPriceTierField(field, raw)
	case RelationInclusion:
		item.Inclusion.Label = raw
	case RelationLinkedEntity:
		item.setLinkField(field, raw)
	}

	return nil
}

func (item *Item) setPriceTierField(field, raw string) {
	tier := item.Price
	switch field {
	case "departure_country_id":
		tier.DepartureCountryID = coerceInt(raw)
	case "arrival_city_id":
		tier.ArrivalCityID = coerceInt(raw)
	case "min_people":
		tier.MinPeople = coerceInt(raw)
	case "max_people":
		tier.MaxPeople = coerceInt(raw)
	case "price":
		tier.Price = coerceInt(raw)
	case "currency":
		tier.Currency = raw
	}
}

func (item *Item) setLinkField(field, raw string) {
	switch field {
	case "id":
		if id := coerceInt(raw); id != nil {
			item.Link.ID = *id
		} else {
			item.Link.ID = 0
		}
	case "label":
		item.Link.Label = raw
	}
}
