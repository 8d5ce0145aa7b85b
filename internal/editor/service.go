// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package editor

import (
	"context"
	"log/slog"

	"github.com/manasse33/etravel/internal/gateway"
	"github.com/manasse33/etravel/internal/platform/apperr"
	"github.com/manasse33/etravel/internal/platform/constants"
)

// # Contracts

// Upstream is the slice of the gateway client the editor needs: fetching the
// current state of a record when a session opens, and submitting the
// serialized payload when it closes.
type Upstream interface {
	Get(ctx context.Context, resource string, id int) (*gateway.Record, error)
	Submit(ctx context.Context, resource string, recordID *int, payload *gateway.Payload) (*gateway.Record, error)
}

// AuditRecorder records who changed what. Recording failures must not block
// the mutation they describe; implementations log and swallow.
type AuditRecorder interface {
	Record(ctx context.Context, actorID, action, resource string, recordID *int)
}

// Service orchestrates the edit session lifecycle: open, mutate, submit or
// cancel. All state lives in the SessionRepository; the service itself is
// stateless and safe for concurrent use.
type Service struct {
	sessions SessionRepository
	upstream Upstream
	audit    AuditRecorder
	logger   *slog.Logger
}

// NewService constructs an editor [Service].
func NewService(sessions SessionRepository, upstream Upstream, audit AuditRecorder, logger *slog.Logger) *Service {
	return &Service{
		sessions: sessions,
		upstream: upstream,
		audit:    audit,
		logger:   logger,
	}
}

// # Lifecycle

/*
OpenSession starts an edit session for the given kind.

Description: When recordID is non-nil the current upstream state of that
record is fetched and copied into the session; otherwise the session starts
from the kind's defaults.

Parameters:
  - ctx: context.Context
  - ownerID: string
  - kind: Kind
  - recordID: *int

Returns:
  - *Session: The opened session
  - error: Upstream fetch or storage failures
*/
func (service *Service) OpenSession(ctx context.Context, ownerID string, kind Kind, recordID *int) (*Session, error) {
	var record *gateway.Record

	if recordID != nil {
		fetched, err := service.upstream.Get(ctx, Spec(kind).Resource, *recordID)
		if err != nil {
			return nil, err
		}
		record = fetched
	}

	session := Open(ownerID, kind, record)
	if err := service.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// GetSession loads a session and enforces ownership.
func (service *Service) GetSession(ctx context.Context, ownerID, sessionID string) (*Session, error) {
	return service.load(ctx, ownerID, sessionID)
}

// # Mutations
//
// Every mutation follows the same shape: load and authorize, apply the edit
// on the working copy, save the new snapshot back. The snapshot in Redis is
// only replaced after the edit succeeded, so a failed mutation leaves the
// session exactly as it was.

// SetScalar updates a top-level field of the session's working copy.
func (service *Service) SetScalar(ctx context.Context, ownerID, sessionID, field, value string) (*Session, error) {
	return service.mutate(ctx, ownerID, sessionID, func(session *Session) error {
		return session.SetScalar(field, value)
	})
}

// AddItem appends a default item to the named collection.
func (service *Service) AddItem(ctx context.Context, ownerID, sessionID, collection string) (*Session, error) {
	return service.mutate(ctx, ownerID, sessionID, func(session *Session) error {
		_, err := session.AddItem(collection)
		return err
	})
}

// UpdateItem writes one field of the item at index.
func (service *Service) UpdateItem(ctx context.Context, ownerID, sessionID, collection string, index int, field, value string) (*Session, error) {
	return service.mutate(ctx, ownerID, sessionID, func(session *Session) error {
		return session.UpdateItem(collection, index, field, value)
	})
}

// RemoveItem deletes the item at index. Removing a position that no longer
// exists succeeds without effect.
func (service *Service) RemoveItem(ctx context.Context, ownerID, sessionID, collection string, index int) (*Session, error) {
	return service.mutate(ctx, ownerID, sessionID, func(session *Session) error {
		return session.RemoveItem(collection, index)
	})
}

/*
AttachImage stages a newly selected image on the session.

Parameters:
  - ctx: context.Context
  - ownerID: string
  - sessionID: string
  - filename: string
  - contentType: string
  - content: []byte

Returns:
  - *Session: Updated session
  - error: Validation or storage failures
*/
func (service *Service) AttachImage(ctx context.Context, ownerID, sessionID, filename, contentType string, content []byte) (*Session, error) {
	if len(content) == 0 {
		return nil, apperr.ValidationError("Image file is empty")
	}
	if len(content) > constants.MaxImageBytes {
		return nil, apperr.ValidationError("Image exceeds the maximum allowed size")
	}

	return service.mutate(ctx, ownerID, sessionID, func(session *Session) error {
		session.AttachImage(filename, contentType, content)
		return nil
	})
}

// # Submission

/*
Submit serializes the session and posts it upstream.

Description: On success the upstream's view of the record is returned, an
audit entry is recorded, and the session is deleted. On upstream rejection
the session survives untouched so the admin can correct and resubmit.

Parameters:
  - ctx: context.Context
  - ownerID: string
  - sessionID: string

Returns:
  - *gateway.Record: The record as the upstream now sees it (may be nil)
  - error: Serialization, upstream, or storage failures
*/
func (service *Service) Submit(ctx context.Context, ownerID, sessionID string) (*gateway.Record, error) {
	session, err := service.load(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}

	payload, err := session.Serialize()
	if err != nil {
		return nil, err
	}

	record, err := service.upstream.Submit(ctx, session.ResourcePath(), session.RecordID, payload)
	if err != nil {
		return nil, err
	}

	action := "create"
	if session.RecordID != nil {
		action = "update"
	}
	service.audit.Record(ctx, ownerID, action, session.ResourcePath(), session.RecordID)

	if err := service.sessions.Delete(ctx, sessionID); err != nil {
		// The submission already landed upstream. The orphaned session will
		// age out on its TTL.
		service.logger.Warn("edit_session_cleanup_failed",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)
	}

	return record, nil
}

// Cancel discards the session and every change it held.
func (service *Service) Cancel(ctx context.Context, ownerID, sessionID string) error {
	if _, err := service.load(ctx, ownerID, sessionID); err != nil {
		return err
	}
	return service.sessions.Delete(ctx, sessionID)
}

// # Helpers

// mutate runs the load-edit-save cycle shared by every session mutation.
func (service *Service) mutate(ctx context.Context, ownerID, sessionID string, edit func(*Session) error) (*Session, error) {
	session, err := service.load(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := edit(session); err != nil {
		return nil, err
	}

	if err := service.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// load fetches a session and verifies the caller owns it. A foreign session
// reads as Forbidden, not NotFound: the identifier was valid, the access
// was not.
func (service *Service) load(ctx context.Context, ownerID, sessionID string) (*Session, error) {
	session, err := service.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.OwnerID != ownerID {
		return nil, apperr.Forbidden("Edit session belongs to another account")
	}

	return session, nil
}
