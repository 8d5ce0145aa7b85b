// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manasse33/etravel/internal/platform/apperr"
	"github.com/manasse33/etravel/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Etravel", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Phone checks the loose E.164 phone rule.
*/
func TestValidator_Phone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		isValid bool
	}{
		{"international", "+221771234567", true},
		{"spaced", "+221 77 123 45 67", true},
		{"local", "0771234567", true},
		{"letters", "call-me", false},
		{"too_short", "+2217", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Phone("phone", tt.phone)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Dates checks date parsing and the future-only rule.
*/
func TestValidator_Dates(t *testing.T) {
	v := &validate.Validator{}
	v.Date("date", "2026-10-16")
	assert.False(t, v.HasErrors())

	v = &validate.Validator{}
	v.Date("date", "16/10/2026")
	assert.True(t, v.HasErrors())

	v = &validate.Validator{}
	v.FutureDate("date", "2020-01-01")
	assert.True(t, v.HasErrors())

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	v = &validate.Validator{}
	v.FutureDate("date", tomorrow)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_RangeAndOneOf checks the numeric range and enum rules.
*/
func TestValidator_RangeAndOneOf(t *testing.T) {
	v := &validate.Validator{}
	v.Range("people", 2, 1, 50).
		OneOf("offer_type", "weekend", "package", "weekend", "tour")
	assert.False(t, v.HasErrors())

	v = &validate.Validator{}
	v.Range("people", 80, 1, 50).
		OneOf("offer_type", "cruise", "package", "weekend", "tour")
	require.Error(t, v.Err())
	assert.Len(t, apperr.As(v.Err()).Details, 2)
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("username", "awa").
		MinLen("username", "awa", 3).
		MaxLen("username", "awa", 10).
		Email("email", "awa@etravel.app").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "").       // Fails
		MinLen("username", "a", 5).     // Fails
		Email("email", "not-an-email"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
