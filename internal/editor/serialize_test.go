// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manasse33/etravel/internal/editor"
	"github.com/manasse33/etravel/internal/gateway"
)

/*
TestSerialize_CreateMode verifies a creation payload: no method override,
scalars in declaration order, empty collections as "[]".
*/
func TestSerialize_CreateMode(t *testing.T) {
	session := editor.Open("admin-1", editor.KindPackage, nil)
	require.NoError(t, session.SetScalar("title", "Escapade Saly"))
	require.NoError(t, session.SetScalar("price", "180000"))

	payload, err := session.Serialize()
	require.NoError(t, err)

	_, hasOverride := payload.Get("_method")
	assert.False(t, hasOverride)

	names := fieldNames(payload)
	assert.Equal(t, []string{"title", "price", "currency", "grids", "services"}, names)

	grids, _ := payload.Get("grids")
	assert.Equal(t, "[]", grids)
	services, _ := payload.Get("services")
	assert.Equal(t, "[]", services)
}

/*
TestSerialize_UpdateMode verifies the _method=PUT override leads the payload
when the session edits an existing record.
*/
func TestSerialize_UpdateMode(t *testing.T) {
	record := &gateway.Record{ID: 9, Title: "Weekend Cap Skirring"}
	session := editor.Open("admin-1", editor.KindWeekend, record)

	payload, err := session.Serialize()
	require.NoError(t, err)

	require.NotEmpty(t, payload.Fields)
	assert.Equal(t, "_method", payload.Fields[0].Name)
	assert.Equal(t, "PUT", payload.Fields[0].Value)
}

/*
TestSerialize_EmptyScalarsOmitted verifies untouched scalars never reach the
wire; the upstream treats absent and empty differently.
*/
func TestSerialize_EmptyScalarsOmitted(t *testing.T) {
	session := editor.Open("admin-1", editor.KindCity, nil)
	require.NoError(t, session.SetScalar("name", "Thiès"))

	payload, err := session.Serialize()
	require.NoError(t, err)

	_, hasDescription := payload.Get("description")
	assert.False(t, hasDescription)
	_, hasCountry := payload.Get("country_id")
	assert.False(t, hasCountry)
}

/*
TestSerialize_TierFallbacks verifies the documented price grid fallbacks: a
cleared min_people ships as 1, a cleared price as 0, and a nil max_people is
omitted from the row entirely.
*/
func TestSerialize_TierFallbacks(t *testing.T) {
	session := editor.Open("admin-1", editor.KindPackage, nil)
	_, err := session.AddItem("prices")
	require.NoError(t, err)

	require.NoError(t, session.UpdateItem("prices", 0, "min_people", ""))
	require.NoError(t, session.UpdateItem("prices", 0, "max_people", ""))
	require.NoError(t, session.UpdateItem("prices", 0, "price", ""))

	payload, err := session.Serialize()
	require.NoError(t, err)

	grids, ok := payload.Get("grids")
	require.True(t, ok)
	assert.JSONEq(t, `[{"min_people":1,"price":0,"currency":"CFA"}]`, grids)
	assert.NotContains(t, grids, "max_people")
}

/*
TestSerialize_WeekendScenario walks the full flow the back office performs
for a weekend package with a two-row price grid.
*/
func TestSerialize_WeekendScenario(t *testing.T) {
	session := editor.Open("admin-1", editor.KindWeekend, nil)
	require.NoError(t, session.SetScalar("title", "Weekend à Saint-Louis"))
	require.NoError(t, session.SetScalar("date", "2026-10-16"))
	require.NoError(t, session.SetScalar("departure_country_id", "7"))

	for range [2]int{} {
		_, err := session.AddItem("prices")
		require.NoError(t, err)
	}
	require.NoError(t, session.UpdateItem("prices", 0, "min_people", "2"))
	require.NoError(t, session.UpdateItem("prices", 0, "max_people", "4"))
	require.NoError(t, session.UpdateItem("prices", 0, "price", "95000"))
	require.NoError(t, session.UpdateItem("prices", 1, "min_people", "5"))
	require.NoError(t, session.UpdateItem("prices", 1, "max_people", "8"))
	require.NoError(t, session.UpdateItem("prices", 1, "price", "80000"))

	_, err := session.AddItem("inclusions")
	require.NoError(t, err)
	require.NoError(t, session.UpdateItem("inclusions", 0, "label", "Transport aller-retour"))

	payload, err := session.Serialize()
	require.NoError(t, err)

	grids, _ := payload.Get("grids")
	assert.JSONEq(t, `[
		{"min_people":2,"max_people":4,"price":95000,"currency":"CFA"},
		{"min_people":5,"max_people":8,"price":80000,"currency":"CFA"}
	]`, grids)

	inclusions, _ := payload.Get("inclusions")
	assert.JSONEq(t, `["Transport aller-retour"]`, inclusions)
}

/*
TestSerialize_TourLinkedCities verifies additional cities serialize as bare
identifiers; display labels never reach the wire.
*/
func TestSerialize_TourLinkedCities(t *testing.T) {
	session := editor.Open("admin-1", editor.KindTour, nil)

	for range [2]int{} {
		_, err := session.AddItem("additional_cities")
		require.NoError(t, err)
	}
	require.NoError(t, session.UpdateItem("additional_cities", 0, "id", "11"))
	require.NoError(t, session.UpdateItem("additional_cities", 0, "label", "Mbour"))
	require.NoError(t, session.UpdateItem("additional_cities", 1, "id", "12"))

	payload, err := session.Serialize()
	require.NoError(t, err)

	cities, ok := payload.Get("additional_cities")
	require.True(t, ok)
	assert.Equal(t, "[11,12]", cities)
}

/*
TestSerialize_Deterministic verifies serializing unchanged state twice
yields identical payloads.
*/
func TestSerialize_Deterministic(t *testing.T) {
	record := &gateway.Record{
		ID:    3,
		Title: "Circuit Casamance",
		Prices: []gateway.PriceRow{
			{MinPeople: intptr(2), MaxPeople: intptr(6), Price: intptr(310000), Currency: "CFA"},
		},
		Inclusions: []string{"Guide", "Hébergement"},
	}
	session := editor.Open("admin-1", editor.KindTour, record)

	first, err := session.Serialize()
	require.NoError(t, err)
	second, err := session.Serialize()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

/*
TestSerialize_RoundTrip verifies opening from a record and serializing
without edits preserves collection counts and row contents.
*/
func TestSerialize_RoundTrip(t *testing.T) {
	record := &gateway.Record{
		ID: 5,
		Prices: []gateway.PriceRow{
			{MinPeople: intptr(1), MaxPeople: intptr(2), Price: intptr(50000), Currency: "CFA"},
			{MinPeople: intptr(3), MaxPeople: intptr(6), Price: intptr(45000), Currency: "CFA"},
		},
		Inclusions: []string{"Transport", "Hôtel", "Petit déjeuner"},
	}
	session := editor.Open("admin-1", editor.KindPackage, record)

	payload, err := session.Serialize()
	require.NoError(t, err)

	grids, _ := payload.Get("grids")
	assert.JSONEq(t, `[
		{"min_people":1,"max_people":2,"price":50000,"currency":"CFA"},
		{"min_people":3,"max_people":6,"price":45000,"currency":"CFA"}
	]`, grids)

	services, _ := payload.Get("services")
	assert.JSONEq(t, `["Transport","Hôtel","Petit déjeuner"]`, services)
}

/*
TestSerialize_ImageOnlyWhenStaged verifies the file part appears only after
the admin picked a new image.
*/
func TestSerialize_ImageOnlyWhenStaged(t *testing.T) {
	record := &gateway.Record{ID: 8, Title: "Safari Niokolo", Image: "uploads/niokolo.jpg"}
	session := editor.Open("admin-1", editor.KindPackage, record)

	payload, err := session.Serialize()
	require.NoError(t, err)
	assert.Nil(t, payload.File, "existing image is kept upstream, not re-sent")

	session.AttachImage("new.jpg", "image/jpeg", []byte{0xFF, 0xD8})
	payload, err = session.Serialize()
	require.NoError(t, err)

	require.NotNil(t, payload.File)
	assert.Equal(t, "image", payload.File.FieldName)
	assert.Equal(t, "new.jpg", payload.File.Filename)
}

/*
TestSummarize verifies the compact projection returned by mutation endpoints:
mode tracks the presence of a record ID and counts follow the collections.
*/
func TestSummarize(t *testing.T) {
	session := editor.Open("admin-1", editor.KindTour, nil)
	for _, collection := range []string{"prices", "prices", "additional_cities"} {
		_, err := session.AddItem(collection)
		require.NoError(t, err)
	}

	summary := session.Summarize()
	assert.Equal(t, session.ID, summary.ID)
	assert.Equal(t, "create", summary.Mode)
	assert.Equal(t, 2, summary.Counts["prices"])
	assert.Equal(t, 0, summary.Counts["inclusions"])
	assert.Equal(t, 1, summary.Counts["additional_cities"])

	record := &gateway.Record{ID: 3, Title: "Tour de Dakar"}
	updating := editor.Open("admin-1", editor.KindTour, record)
	assert.Equal(t, "update", updating.Summarize().Mode)
}

func fieldNames(payload *gateway.Payload) []string {
	names := make([]string, 0, len(payload.Fields))
	for _, field := range payload.Fields {
		names = append(names, field.Name)
	}
	return names
}
