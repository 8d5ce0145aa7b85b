// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package gateway

import "encoding/json"

// Record is the normalized shape of any catalog entity fetched from the
// upstream Etravel API.
//
// # Legacy Field Names
//
// The upstream grew organically and spells the same concept differently per
// resource: `title` vs `nom`, `min_people` vs `places_min`, `date` vs
// `tour_date`, `inclusions` vs `services`. Decoding tolerates every known
// spelling and normalizes to one canonical field here, so the rest of the
// service never sees the historical mess.
type Record struct {
	ID          int    `json:"id"`
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
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

	Prices           []PriceRow `json:"prices,omitempty"`
	Inclusions       []string   `json:"inclusions,omitempty"`
	AdditionalCities []CityRef  `json:"additional_cities,omitempty"`
}

// PriceRow is one entry of a record's nested price grid.
type PriceRow struct {
	DepartureCountryID *int   `json:"departure_country_id,omitempty"`
	ArrivalCityID      *int   `json:"arrival_city_id,omitempty"`
	MinPeople          *int   `json:"min_people,omitempty"`
	MaxPeople          *int   `json:"max_people,omitempty"`
	Price              *int   `json:"price,omitempty"`
	Currency           string `json:"currency,omitempty"`
}

// CityRef is a bare reference to a city record, as used by a tour's
// additional-cities list.
type CityRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UnmarshalJSON decodes a raw upstream record, folding legacy field
// spellings into the canonical ones.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Title       string `json:"title"`
		Nom         string `json:"nom"`
		Description string `json:"description"`
		Image       string `json:"image"`

		Price    *int   `json:"price"`
		Currency string `json:"currency"`

		MinPeople *int `json:"min_people"`
		PlacesMin *int `json:"places_min"`
		MaxPeople *int `json:"max_people"`
		PlacesMax *int `json:"places_max"`

		Date     string `json:"date"`
		TourDate string `json:"tour_date"`

		CountryID          *int `json:"country_id"`
		CityID             *int `json:"city_id"`
		DepartureCountryID *int `json:"departure_country_id"`

		Prices           []rawPriceRow     `json:"prices"`
		Inclusions       []rawInclusionRow `json:"inclusions"`
		Services         []rawInclusionRow `json:"services"`
		AdditionalCities []CityRef         `json:"additional_cities"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.ID = raw.ID
	r.Name = firstNonEmpty(raw.Name, raw.Nom)
	r.Title = firstNonEmpty(raw.Title, raw.Nom)
	r.Description = raw.Description
	r.Image = raw.Image
	r.Price = raw.Price
	r.Currency = raw.Currency
	r.MinPeople = firstNonNil(raw.MinPeople, raw.PlacesMin)
	r.MaxPeople = firstNonNil(raw.MaxPeople, raw.PlacesMax)
	r.Date = firstNonEmpty(raw.Date, raw.TourDate)
	r.CountryID = raw.CountryID
	r.CityID = raw.CityID
	r.DepartureCountryID = raw.DepartureCountryID
	r.AdditionalCities = raw.AdditionalCities

	for _, row := range raw.Prices {
		r.Prices = append(r.Prices, PriceRow(row.normalize()))
	}

	inclusions := raw.Inclusions
	if len(inclusions) == 0 {
		inclusions = raw.Services
	}
	for _, row := range inclusions {
		r.Inclusions = append(r.Inclusions, row.Label)
	}

	// Some list endpoints omit the scalar price and only ship the grid;
	// the display price is then the first grid row.
	if r.Price == nil && len(r.Prices) > 0 {
		r.Price = r.Prices[0].Price
		if r.Currency == "" {
			r.Currency = r.Prices[0].Currency
		}
	}

	return nil
}

// rawPriceRow tolerates the legacy places_min/places_max spellings.
type rawPriceRow struct {
	DepartureCountryID *int   `json:"departure_country_id"`
	ArrivalCityID      *int   `json:"arrival_city_id"`
	MinPeople          *int   `json:"min_people"`
	PlacesMin          *int   `json:"places_min"`
	MaxPeople          *int   `json:"max_people"`
	PlacesMax          *int   `json:"places_max"`
	Price              *int   `json:"price"`
	Currency           string `json:"currency"`
}

func (row rawPriceRow) normalize() PriceRow {
	return PriceRow{
		DepartureCountryID: row.DepartureCountryID,
		ArrivalCityID:      row.ArrivalCityID,
		MinPeople:          firstNonNil(row.MinPeople, row.PlacesMin),
		MaxPeople:          firstNonNil(row.MaxPeople, row.PlacesMax),
		Price:              row.Price,
		Currency:           row.Currency,
	}
}

// rawInclusionRow accepts both a bare string and an object with a label.
type rawInclusionRow struct {
	Label string
}

func (row *rawInclusionRow) UnmarshalJSON(data []byte) error {
	// Bare string form: "Petit déjeuner inclus"
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		row.Label = label
		return nil
	}

	// Object form: {"label": "..."} or {"name": "..."}
	var obj struct {
		Label string `json:"label"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	row.Label = firstNonEmpty(obj.Label, obj.Name)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonNil(values ...*int) *int {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
