// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/manasse33/etravel/pkg/pagination"
	"github.com/manasse33/etravel/pkg/uuidv7"
)

// Service writes and reads the audit trail. Its Record method satisfies the
// recorder contract the editor and the catalog admin operations depend on.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs an audit [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// Record appends one entry to the trail. Failures are logged and swallowed;
// the mutation being recorded has already happened.
func (service *Service) Record(ctx context.Context, actorID, action, resource string, recordID *int) {
	entry := &Entry{
		ID:        uuidv7.New(),
		ActorID:   actorID,
		Action:    action,
		Resource:  resource,
		RecordID:  recordID,
		CreatedAt: time.Now().UTC(),
	}

	if err := service.repository.Insert(ctx, entry); err != nil {
		service.logger.Error("audit_record_failed",
			slog.String("actor_id", actorID),
			slog.String("action", action),
			slog.String("resource", resource),
			slog.Any("error", err),
		)
	}
}

// List returns one page of the trail with pagination metadata.
func (service *Service) List(ctx context.Context, params pagination.Params) ([]*Entry, pagination.Meta, error) {
	entries, total, err := service.repository.List(ctx, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return entries, pagination.NewMeta(params.Page, params.Limit, total), nil
}
