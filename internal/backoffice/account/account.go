// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

/*
Package account manages the agency staff accounts that sign in to the back
office.

Accounts are the only state this service owns outright: catalog data lives
upstream, edit sessions live in Redis, but staff identity (credentials and
roles) is local PostgreSQL. The remote Etravel API has no authentication of
its own, so this package is the wall between the public internet and the
write surface.
*/
package account

import (
	"time"

	"github.com/manasse33/etravel/internal/platform/sec"
)

// Account represents one back-office staff member.
//
// # Rules
//   - Username is unique and immutable after creation.
//   - PasswordHash never leaves the service layer.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	Role         sec.Role  `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
