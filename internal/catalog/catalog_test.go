// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package catalog_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manasse33/etravel/internal/catalog"
	"github.com/manasse33/etravel/internal/gateway"
)

func intptr(v int) *int { return &v }

/*
TestNewOffer verifies the public projection: slug derivation and a
cheapest-first price grid.
*/
func TestNewOffer(t *testing.T) {
	record := &gateway.Record{
		ID:    4,
		Title: "Séjour à Gorée",
		Prices: []gateway.PriceRow{
			{MinPeople: intptr(1), Price: intptr(120000), Currency: "CFA"},
			{MinPeople: intptr(4), Price: intptr(90000), Currency: "CFA"},
			{MinPeople: intptr(2), Price: nil, Currency: "CFA"},
		},
	}

	offer := catalog.NewOffer(record)

	assert.Equal(t, "sejour-a-goree", offer.Slug)
	assert.Equal(t, "Séjour à Gorée", offer.Title)

	require.Len(t, offer.Prices, 3)
	assert.Equal(t, 90000, *offer.Prices[0].Price)
	assert.Equal(t, 120000, *offer.Prices[1].Price)
	assert.Nil(t, offer.Prices[2].Price, "unpriced rows sink to the end")

	// The source record's grid order is untouched.
	assert.Equal(t, 120000, *record.Prices[0].Price)
}

/*
TestNewOffer_NameFallback verifies countries and cities (which carry a name,
not a title) still get a slug.
*/
func TestNewOffer_NameFallback(t *testing.T) {
	offer := catalog.NewOffer(&gateway.Record{ID: 1, Name: "Sénégal"})

	assert.Equal(t, "Sénégal", offer.Title)
	assert.Equal(t, "senegal", offer.Slug)
}

/*
TestParseSection covers the public section whitelist.
*/
func TestParseSection(t *testing.T) {
	for section, want := range map[string]string{
		"countries": gateway.ResourceCountries,
		"packages":  gateway.ResourcePackages,
		"tours":     gateway.ResourceTours,
	} {
		resource, err := catalog.ParseSection(section)
		require.NoError(t, err)
		assert.Equal(t, want, resource)
	}

	_, err := catalog.ParseSection("reservations")
	assert.Error(t, err, "reservations are write-only")
}

// fakeUpstream serves canned listings.
type fakeUpstream struct {
	records map[string][]*gateway.Record
}

func (up *fakeUpstream) List(_ context.Context, resource string) ([]*gateway.Record, error) {
	return up.records[resource], nil
}

func (up *fakeUpstream) Get(_ context.Context, resource string, id int) (*gateway.Record, error) {
	for _, record := range up.records[resource] {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, nil
}

// deadCache is a redis client with nothing listening; every call fails fast
// and the service degrades to direct upstream reads.
func deadCache() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
}

/*
TestService_List_Filters verifies listing filters and the upstream fallback
when the cache is unreachable.
*/
func TestService_List_Filters(t *testing.T) {
	upstream := &fakeUpstream{records: map[string][]*gateway.Record{
		gateway.ResourceCities: {
			{ID: 1, Name: "Dakar", CountryID: intptr(7)},
			{ID: 2, Name: "Banjul", CountryID: intptr(8)},
			{ID: 3, Name: "Thiès", CountryID: intptr(7)},
		},
	}}
	service := catalog.NewService(upstream, deadCache(), slog.New(slog.DiscardHandler))

	offers, err := service.List(context.Background(), gateway.ResourceCities, catalog.ListFilter{CountryID: 7})
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "Dakar", offers[0].Title)
	assert.Equal(t, "Thiès", offers[1].Title)

	offers, err = service.List(context.Background(), gateway.ResourceCities, catalog.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, offers, 3)
}

/*
TestService_Get verifies detail reads and the missing-record case.
*/
func TestService_Get(t *testing.T) {
	upstream := &fakeUpstream{records: map[string][]*gateway.Record{
		gateway.ResourcePackages: {{ID: 9, Title: "Escapade Saly"}},
	}}
	service := catalog.NewService(upstream, deadCache(), slog.New(slog.DiscardHandler))

	offer, err := service.Get(context.Background(), gateway.ResourcePackages, 9)
	require.NoError(t, err)
	assert.Equal(t, "Escapade Saly", offer.Title)

	_, err = service.Get(context.Background(), gateway.ResourcePackages, 404)
	assert.Error(t, err)
}
