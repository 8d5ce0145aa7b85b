// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package audit

import (
	"context"

	"github.com/manasse33/etravel/pkg/pagination"
)

// Repository defines the data access contract for the audit trail.
type Repository interface {
	// Insert appends one entry to the trail.
	Insert(ctx context.Context, entry *Entry) error

	// List returns entries newest first, with the total count for
	// pagination metadata.
	List(ctx context.Context, params pagination.Params) ([]*Entry, int, error)
}
