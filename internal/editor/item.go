// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package editor

import "github.com/manasse33/etravel/pkg/pointer"

// Supported currencies for price tiers. The upstream API quotes everything
// in CFA by default; USD and EUR appear on a handful of international packages.
const (
	CurrencyCFA = "CFA"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"

	DefaultCurrency = CurrencyCFA
)

// Default quantities installed on a fresh price tier.
const (
	DefaultMinPeople = 1
	DefaultMaxPeople = 2
)

// RelationKind tags the variant an [Item] holds.
type RelationKind string

const (
	RelationPriceTier    RelationKind = "price_tier"
	RelationInclusion    RelationKind = "inclusion"
	RelationLinkedEntity RelationKind = "linked_entity"
)

// PriceTier is one row of a package's price grid.
//
// Numeric fields are pointers while editing: an admin may clear an input
// mid-edit, and nil is how the session represents "not typed yet".
// Serialization applies the documented fallbacks (min_people→1, price→0);
// a nil MaxPeople means "unbounded" and is omitted from the wire entirely.
type PriceTier struct {
	DepartureCountryID *int   `json:"departure_country_id,omitempty"`
	ArrivalCityID      *int   `json:"arrival_city_id,omitempty"`
	MinPeople          *int   `json:"min_people,omitempty"`
	MaxPeople          *int   `json:"max_people,omitempty"`
	Price              *int   `json:"price,omitempty"`
	Currency           string `json:"currency"`
}

// Inclusion is one line item of what a package covers (transport, hotel,
// breakfast...). The label may be empty while the admin is still typing.
type Inclusion struct {
	Label string `json:"label"`
}

// LinkedEntityRef points at an existing catalog record (e.g. an additional
// city visited by a tour). The label is denormalized for display only; the
// wire format carries bare identifiers.
type LinkedEntityRef struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// Item is the tagged variant stored in a session collection. Exactly one arm
// matching Kind is non-nil.
type Item struct {
	Kind      RelationKind     `json:"kind"`
	Price     *PriceTier       `json:"price,omitempty"`
	Inclusion *Inclusion       `json:"inclusion,omitempty"`
	Link      *LinkedEntityRef `json:"link,omitempty"`
}

// NewItem returns the default template item for a relation kind — the value
// appended when the admin clicks "add a row".
func NewItem(kind RelationKind) Item {
	switch kind {
	case RelationPriceTier:
		return Item{Kind: kind, Price: &PriceTier{
			MinPeople: pointer.To(DefaultMinPeople),
			MaxPeople: pointer.To(DefaultMaxPeople),
			Price:     pointer.To(0),
			Currency:  DefaultCurrency,
		}}
	case RelationInclusion:
		return Item{Kind: kind, Inclusion: &Inclusion{}}
	case RelationLinkedEntity:
		return Item{Kind: kind, Link: &LinkedEntityRef{}}
	default:
		panic("editor: unknown relation kind " + string(kind))
	}
}

// clone returns a deep copy of the item. Sessions never share item pointers
// with callers or with previous versions of themselves: UpdateItem replaces
// the slot with a clone so references held elsewhere never observe the edit.
func (item Item) clone() Item {
	cloned := Item{Kind: item.Kind}

	if item.Price != nil {
		tier := *item.Price
		tier.DepartureCountryID = cloneInt(item.Price.DepartureCountryID)
		tier.ArrivalCityID = cloneInt(item.Price.ArrivalCityID)
		tier.MinPeople = cloneInt(item.Price.MinPeople)
		tier.MaxPeople = cloneInt(item.Price.MaxPeople)
		tier.Price = cloneInt(item.Price.Price)
		cloned.Price = &tier
	}

	if item.Inclusion != nil {
		inclusion := *item.Inclusion
		cloned.Inclusion = &inclusion
	}

	if item.Link != nil {
		link := *item.Link
		cloned.Link = &link
	}

	return cloned
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
