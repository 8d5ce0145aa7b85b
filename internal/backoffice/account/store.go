// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package account

import "context"

// Repository defines the data access contract for staff accounts.
//
// # Implementations
//
// The canonical implementation is PostgreSQL (store_postgres.go).
type Repository interface {
	// FindByID returns the account with the given ID.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	FindByID(ctx context.Context, id string) (*Account, error)

	// FindByUsername returns the account with the given username.
	//
	// Returns [apperr.NotFound] if the username is unknown.
	FindByUsername(ctx context.Context, username string) (*Account, error)

	// List returns every account, newest first.
	List(ctx context.Context) ([]*Account, error)

	// Create persists a brand-new account.
	//
	// Returns a Conflict error if the username is taken.
	Create(ctx context.Context, account *Account) error

	// SetActive flips the account's active flag. Deactivated accounts keep
	// their row (the audit trail references them) but can no longer sign in.
	SetActive(ctx context.Context, id string, active bool) error
}
