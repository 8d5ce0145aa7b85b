// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package editor

import "github.com/manasse33/etravel/internal/platform/apperr"

// Kind identifies which catalog entity an edit session operates on.
type Kind string

const (
	KindCountry Kind = "country"
	KindCity    Kind = "city"
	KindPackage Kind = "package"
	KindWeekend Kind = "weekend"
	KindTour    Kind = "tour"
)

// CollectionSpec declares one nested collection carried by a kind: its
// session-local name, the relation variant its items hold, and the multipart
// field name the upstream API expects it under.
type CollectionSpec struct {
	Name     string
	Relation RelationKind
	WireName string
}

// KindSpec is the declarative description of an editable kind: the upstream
// resource path, the ordered scalar field list, per-field defaults for create
// mode, and the nested collections.
//
// The editor never hard-codes behavior per kind; everything it does is driven
// by this table.
type KindSpec struct {
	Kind        Kind
	Resource    string
	Scalars     []string
	Defaults    map[string]string
	Collections []CollectionSpec
}

// kindSpecs is the closed registry of editable kinds.
var kindSpecs = map[Kind]KindSpec{
	KindCountry: {
		Kind:     KindCountry,
		Resource: "countries",
		Scalars:  []string{"name", "description"},
	},
	KindCity: {
		Kind:     KindCity,
		Resource: "cities",
		Scalars:  []string{"name", "description", "country_id"},
	},
	KindPackage: {
		Kind:     KindPackage,
		Resource: "packages",
		Scalars:  []string{"title", "description", "price", "currency", "min_people", "max_people", "country_id"},
		Defaults: map[string]string{"currency": DefaultCurrency},
		Collections: []CollectionSpec{
			{Name: "prices", Relation: RelationPriceTier, WireName: "grids"},
			{Name: "inclusions", Relation: RelationInclusion, WireName: "services"},
		},
	},
	KindWeekend: {
		Kind:     KindWeekend,
		Resource: "weekends",
		Scalars:  []string{"title", "description", "price", "currency", "min_people", "max_people", "date", "departure_country_id"},
		Defaults: map[string]string{"currency": DefaultCurrency},
		Collections: []CollectionSpec{
			{Name: "prices", Relation: RelationPriceTier, WireName: "grids"},
			{Name: "inclusions", Relation: RelationInclusion, WireName: "inclusions"},
		},
	},
	KindTour: {
		Kind:     KindTour,
		Resource: "tours",
		Scalars:  []string{"title", "description", "price", "currency", "min_people", "max_people", "date", "city_id"},
		Defaults: map[string]string{"currency": DefaultCurrency},
		Collections: []CollectionSpec{
			{Name: "prices", Relation: RelationPriceTier, WireName: "grids"},
			{Name: "inclusions", Relation: RelationInclusion, WireName: "inclusions"},
			{Name: "additional_cities", Relation: RelationLinkedEntity, WireName: "additional_cities"},
		},
	},
}

// ParseKind resolves a kind tag received over HTTP.
func ParseKind(raw string) (Kind, error) {
	kind := Kind(raw)
	if _, ok := kindSpecs[kind]; !ok {
		return "", apperr.ValidationError("Unknown record kind '" + raw + "'")
	}
	return kind, nil
}

// Spec returns the declarative table for a kind. Kind values are only ever
// produced by [ParseKind], so a miss is a programming error.
func Spec(kind Kind) KindSpec {
	spec, ok := kindSpecs[kind]
	if !ok {
		panic("editor: unregistered kind " + string(kind))
	}
	return spec
}

// collection returns the spec of a named collection, or false when the kind
// does not carry it.
func (s KindSpec) collection(name string) (CollectionSpec, bool) {
	for _, c := range s.Collections {
		if c.Name == name {
			return c, true
		}
	}
	return CollectionSpec{}, false
}

// hasScalar reports whether the kind recognizes the scalar field.
func (s KindSpec) hasScalar(field string) bool {
	for _, f := range s.Scalars {
		if f == field {
			return true
		}
	}
	return false
}
