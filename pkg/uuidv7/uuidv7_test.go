// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package uuidv7_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manasse33/etravel/pkg/uuidv7"
)

/*
TestNew verifies New returns a ready-to-store string that parses as a
version 7 UUID. Callers use the value directly as an ID; no further
conversion is expected of them.
*/
func TestNew(t *testing.T) {
	id := uuidv7.New()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	assert.NotEqual(t, id, uuidv7.New())
}
