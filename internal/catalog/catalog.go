// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

/*
Package catalog is the public read surface of the travel offering: the
countries, cities, packages, weekend getaways, and city tours visitors
browse before reserving.

It never talks to a database. Records come from the remote Etravel API
through the gateway, are reshaped into presentation-friendly views (slugs,
sorted price grids), and are cached in Redis for a few minutes to keep the
browse pages fast and the upstream quiet.
*/
package catalog

import (
	"sort"

	"github.com/manasse33/etravel/internal/gateway"
	"github.com/manasse33/etravel/pkg/slug"
)

// Offer is the public projection of any catalog record.
type Offer struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`

	Price    *int   `json:"price,omitempty"`
	Currency string `json:"currency,omitempty"`

	MinPeople *int   `json:"min_people,omitempty"`
	MaxPeople *int   `json:"max_people,omitempty"`
	Date      string `json:"date,omitempty"`

	CountryID          *int `json:"country_id,omitempty"`
	CityID             *int `json:"city_id,omitempty"`
	DepartureCountryID *int `json:"departure_country_id,omitempty"`

	Prices           []gateway.PriceRow `json:"prices,omitempty"`
	Inclusions       []string           `json:"inclusions,omitempty"`
	AdditionalCities []gateway.CityRef  `json:"additional_cities,omitempty"`
}

// NewOffer projects an upstream record into its public view. The price grid
// is sorted cheapest-first; visitors scan for the entry price.
func NewOffer(record *gateway.Record) Offer {
	title := record.Title
	if title == "" {
		title = record.Name
	}

	prices := make([]gateway.PriceRow, len(record.Prices))
	copy(prices, record.Prices)
	sort.SliceStable(prices, func(i, j int) bool {
		left, right := prices[i].Price, prices[j].Price
		if left == nil {
			return false
		}
		if right == nil {
			return true
		}
		return *left < *right
	})

	return Offer{
		ID:                 record.ID,
		Slug:               slug.From(title),
		Title:              title,
		Description:        record.Description,
		Image:              record.Image,
		Price:              record.Price,
		Currency:           record.Currency,
		MinPeople:          record.MinPeople,
		MaxPeople:          record.MaxPeople,
		Date:               record.Date,
		CountryID:          record.CountryID,
		CityID:             record.CityID,
		DepartureCountryID: record.DepartureCountryID,
		Prices:             prices,
		Inclusions:         record.Inclusions,
		AdditionalCities:   record.AdditionalCities,
	}
}
