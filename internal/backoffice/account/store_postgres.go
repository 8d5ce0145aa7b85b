// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package account

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manasse33/etravel/internal/platform/dberr"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const accountColumns = `id, username, passwordhash, displayname, role, active, createdat, updatedat`

/*
Create persists a new staff account into backoffice.account.

Parameters:
  - ctx: context.Context
  - account: *Account

Returns:
  - error: Conflict on duplicate username, Internal on other failures
*/
func (repository *PostgresRepository) Create(ctx context.Context, account *Account) error {
	const query = `
		INSERT INTO backoffice.account (
			id, username, passwordhash, displayname, role, active, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		account.ID,
		account.Username,
		account.PasswordHash,
		account.DisplayName,
		account.Role,
		account.Active,
		account.CreatedAt,
		account.UpdatedAt,
	)

	return dberr.Wrap(err, "account_create")
}

/*
FindByID retrieves an account by its identifier.

Returns:
  - *Account: The account, if present
  - error: apperr.NotFound or storage failures
*/
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Account, error) {
	const query = `
		SELECT ` + accountColumns + `
		FROM backoffice.account
		WHERE id = $1`

	return repository.scanOne(ctx, query, id)
}

/*
FindByUsername retrieves an account by its unique username.

Returns:
  - *Account: The account, if present
  - error: apperr.NotFound or storage failures
*/
func (repository *PostgresRepository) FindByUsername(ctx context.Context, username string) (*Account, error) {
	const query = `
		SELECT ` + accountColumns + `
		FROM backoffice.account
		WHERE username = $1`

	return repository.scanOne(ctx, query, username)
}

/*
List returns every staff account, newest first.

Returns:
  - []*Account: All accounts
  - error: Storage failures
*/
func (repository *PostgresRepository) List(ctx context.Context) ([]*Account, error) {
	const query = `
		SELECT ` + accountColumns + `
		FROM backoffice.account
		ORDER BY createdat DESC`

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "account_list")
	}
	defer rows.Close()

	var accounts []*Account
	for rows.Next() {
		account := &Account{}
		if err := rows.Scan(
			&account.ID,
			&account.Username,
			&account.PasswordHash,
			&account.DisplayName,
			&account.Role,
			&account.Active,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "account_list_scan")
		}
		accounts = append(accounts, account)
	}

	return accounts, dberr.Wrap(rows.Err(), "account_list_rows")
}

/*
SetActive flips the account's active flag.

Returns:
  - error: apperr.NotFound if the account does not exist
*/
func (repository *PostgresRepository) SetActive(ctx context.Context, id string, active bool) error {
	const query = `
		UPDATE backoffice.account
		SET active = $2, updatedat = $3
		WHERE id = $1`

	tag, err := repository.pool.Exec(ctx, query, id, active, time.Now())
	if err != nil {
		return dberr.Wrap(err, "account_set_active")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) scanOne(ctx context.Context, query string, arg any) (*Account, error) {
	account := &Account{}
	err := repository.pool.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.DisplayName,
		&account.Role,
		&account.Active,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "account_find")
	}

	return account, nil
}
