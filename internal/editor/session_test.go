// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manasse33/etravel/internal/editor"
	"github.com/manasse33/etravel/internal/gateway"
	"github.com/manasse33/etravel/internal/platform/apperr"
)

func intptr(v int) *int { return &v }

/*
TestOpen_CreateMode verifies a fresh session starts from the kind's defaults
with empty collections.
*/
func TestOpen_CreateMode(t *testing.T) {
	session := editor.Open("admin-1", editor.KindPackage, nil)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "admin-1", session.OwnerID)
	assert.Nil(t, session.RecordID)

	// Currency default is installed, nothing else.
	assert.Equal(t, editor.DefaultCurrency, session.Scalars["currency"])
	assert.Empty(t, session.Scalars["title"])

	// Both package collections exist and are empty.
	assert.Len(t, session.Collections["prices"], 0)
	assert.Len(t, session.Collections["inclusions"], 0)
}

/*
TestOpen_UpdateMode verifies opening against an existing record copies its
scalars and nested rows into the working set.
*/
func TestOpen_UpdateMode(t *testing.T) {
	record := &gateway.Record{
		ID:          42,
		Title:       "Dakar Découverte",
		Description: "Trois jours à Dakar",
		Price:       intptr(250000),
		Currency:    "CFA",
		CountryID:   intptr(7),
		Prices: []gateway.PriceRow{
			{MinPeople: intptr(2), MaxPeople: intptr(4), Price: intptr(220000), Currency: "CFA"},
		},
		Inclusions: []string{"Transport", "Petit déjeuner"},
	}

	session := editor.Open("admin-1", editor.KindPackage, record)

	require.NotNil(t, session.RecordID)
	assert.Equal(t, 42, *session.RecordID)
	assert.Equal(t, "Dakar Découverte", session.Scalars["title"])
	assert.Equal(t, "250000", session.Scalars["price"])
	assert.Equal(t, "7", session.Scalars["country_id"])

	require.Len(t, session.Collections["prices"], 1)
	tier := session.Collections["prices"][0].Price
	require.NotNil(t, tier)
	assert.Equal(t, 2, *tier.MinPeople)
	assert.Equal(t, 220000, *tier.Price)

	require.Len(t, session.Collections["inclusions"], 2)
	assert.Equal(t, "Transport", session.Collections["inclusions"][0].Inclusion.Label)
}

/*
TestOpen_NoStructuralSharing verifies session edits never leak back into the
record the session was opened from.
*/
func TestOpen_NoStructuralSharing(t *testing.T) {
	record := &gateway.Record{
		ID: 42,
		Prices: []gateway.PriceRow{
			{MinPeople: intptr(2), Price: intptr(100000), Currency: "CFA"},
		},
	}

	session := editor.Open("admin-1", editor.KindPackage, record)
	require.NoError(t, session.UpdateItem("prices", 0, "price", "999"))

	assert.Equal(t, 100000, *record.Prices[0].Price)
	assert.Equal(t, 999, *session.Collections["prices"][0].Price.Price)
}

/*
TestSession_SetScalar verifies scalar writes and the unknown-field guard.
*/
func TestSession_SetScalar(t *testing.T) {
	session := editor.Open("admin-1", editor.KindCountry, nil)

	require.NoError(t, session.SetScalar("name", "Sénégal"))
	assert.Equal(t, "Sénégal", session.Scalars["name"])

	err := session.SetScalar("price", "100")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestSession_AddItem verifies template rows carry the documented defaults.
*/
func TestSession_AddItem(t *testing.T) {
	session := editor.Open("admin-1", editor.KindWeekend, nil)

	index, err := session.AddItem("prices")
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	tier := session.Collections["prices"][0].Price
	require.NotNil(t, tier)
	assert.Equal(t, editor.DefaultMinPeople, *tier.MinPeople)
	assert.Equal(t, editor.DefaultMaxPeople, *tier.MaxPeople)
	assert.Equal(t, 0, *tier.Price)
	assert.Equal(t, editor.DefaultCurrency, tier.Currency)
	assert.Nil(t, tier.DepartureCountryID)

	_, err = session.AddItem("additional_cities")
	require.Error(t, err, "weekends carry no linked-city collection")
}

/*
TestSession_UpdateItem_Coercion verifies input coercion through the session:
numeric fields parse, empty and garbage normalize to nil, text fields store
verbatim.
*/
func TestSession_UpdateItem_Coercion(t *testing.T) {
	session := editor.Open("admin-1", editor.KindPackage, nil)
	_, err := session.AddItem("prices")
	require.NoError(t, err)

	require.NoError(t, session.UpdateItem("prices", 0, "price", "75000"))
	assert.Equal(t, 75000, *session.Collections["prices"][0].Price.Price)

	require.NoError(t, session.UpdateItem("prices", 0, "price", ""))
	assert.Nil(t, session.Collections["prices"][0].Price.Price)

	require.NoError(t, session.UpdateItem("prices", 0, "max_people", "abc"))
	assert.Nil(t, session.Collections["prices"][0].Price.MaxPeople)

	require.NoError(t, session.UpdateItem("prices", 0, "currency", "EUR"))
	assert.Equal(t, "EUR", session.Collections["prices"][0].Price.Currency)
}

/*
TestSession_UpdateItem_Isolation verifies the edited slot is replaced with a
clone: item values handed out before the edit never observe it.
*/
func TestSession_UpdateItem_Isolation(t *testing.T) {
	session := editor.Open("admin-1", editor.KindPackage, nil)
	_, err := session.AddItem("prices")
	require.NoError(t, err)

	before := session.Collections["prices"][0]
	require.NoError(t, session.UpdateItem("prices", 0, "price", "5000"))

	assert.Equal(t, 0, *before.Price.Price)
	assert.Equal(t, 5000, *session.Collections["prices"][0].Price.Price)
}

/*
TestSession_UpdateItem_Errors verifies out-of-range indexes and unknown
fields fail loudly.
*/
func TestSession_UpdateItem_Errors(t *testing.T) {
	session := editor.Open("admin-1", editor.KindPackage, nil)
	_, err := session.AddItem("prices")
	require.NoError(t, err)

	assert.Error(t, session.UpdateItem("prices", 3, "price", "1"))
	assert.Error(t, session.UpdateItem("prices", -1, "price", "1"))
	assert.Error(t, session.UpdateItem("prices", 0, "label", "x"))
	assert.Error(t, session.UpdateItem("grids", 0, "price", "1"))
}

/*
TestSession_RemoveItem verifies removal semantics: in-range removes shift the
tail, out-of-range removes are silent no-ops even on an empty collection.
*/
func TestSession_RemoveItem(t *testing.T) {
	session := editor.Open("admin-1", editor.KindPackage, nil)

	for range [2]int{} {
		_, err := session.AddItem("inclusions")
		require.NoError(t, err)
	}
	require.NoError(t, session.UpdateItem("inclusions", 0, "label", "Transport"))
	require.NoError(t, session.UpdateItem("inclusions", 1, "label", "Hôtel"))

	// Out of range on a 2-item collection: nothing happens.
	require.NoError(t, session.RemoveItem("inclusions", 5))
	assert.Len(t, session.Collections["inclusions"], 2)

	require.NoError(t, session.RemoveItem("inclusions", 0))
	require.Len(t, session.Collections["inclusions"], 1)
	assert.Equal(t, "Hôtel", session.Collections["inclusions"][0].Inclusion.Label)

	require.NoError(t, session.RemoveItem("inclusions", 0))
	assert.Len(t, session.Collections["inclusions"], 0)

	// Empty collection stays empty.
	require.NoError(t, session.RemoveItem("inclusions", 0))
	assert.Len(t, session.Collections["inclusions"], 0)

	// Unknown collection still errors.
	assert.Error(t, session.RemoveItem("rooms", 0))
}

/*
TestParseKind covers the closed kind registry.
*/
func TestParseKind(t *testing.T) {
	for _, raw := range []string{"country", "city", "package", "weekend", "tour"} {
		kind, err := editor.ParseKind(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, string(kind))
	}

	_, err := editor.ParseKind("hotel")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}
