// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package audit

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manasse33/etravel/internal/platform/dberr"
	"github.com/manasse33/etravel/pkg/pagination"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Insert appends one entry to backoffice.audit.

Parameters:
  - ctx: context.Context
  - entry: *Entry

Returns:
  - error: Storage failures
*/
func (repository *PostgresRepository) Insert(ctx context.Context, entry *Entry) error {
	const query = `
		INSERT INTO backoffice.audit (id, actorid, action, resource, recordid, createdat)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := repository.pool.Exec(ctx, query,
		entry.ID,
		entry.ActorID,
		entry.Action,
		entry.Resource,
		entry.RecordID,
		entry.CreatedAt,
	)

	return dberr.Wrap(err, "audit_insert")
}

/*
List returns a page of the trail, newest first.

Parameters:
  - ctx: context.Context
  - params: pagination.Params

Returns:
  - []*Entry: The page of entries
  - int: Total entry count
  - error: Storage failures
*/
func (repository *PostgresRepository) List(ctx context.Context, params pagination.Params) ([]*Entry, int, error) {
	const countQuery = `SELECT COUNT(*) FROM backoffice.audit`

	var total int
	if err := repository.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "audit_count")
	}

	const query = `
		SELECT id, actorid, action, resource, recordid, createdat
		FROM backoffice.audit
		ORDER BY createdat DESC
		LIMIT $1 OFFSET $2`

	rows, err := repository.pool.Query(ctx, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "audit_list")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry := &Entry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.ActorID,
			&entry.Action,
			&entry.Resource,
			&entry.RecordID,
			&entry.CreatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "audit_list_scan")
		}
		entries = append(entries, entry)
	}

	return entries, total, dberr.Wrap(rows.Err(), "audit_list_rows")
}
