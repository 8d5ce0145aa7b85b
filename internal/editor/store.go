// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package editor

import "context"

// SessionRepository persists in-flight edit sessions between requests.
// Implementations own the TTL policy; an expired session surfaces as
// apperr.NotFound on Get.
type SessionRepository interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
