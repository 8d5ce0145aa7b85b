// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/manasse33/etravel/internal/platform/apperr"
	"github.com/manasse33/etravel/internal/platform/constants"
)

// RedisSessionRepository implements SessionRepository using Redis. Sessions
// live under a keyspace prefix with a sliding TTL: every Save re-arms the
// expiry, so an actively edited session never dies under the admin.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed SessionRepository.
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

/*
Save writes the session snapshot and re-arms its TTL.

Parameters:
  - ctx: context.Context
  - session: *Session

Returns:
  - error: Serialization or storage failures
*/
func (repository *RedisSessionRepository) Save(ctx context.Context, session *Session) error {
	encoded, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_encode_failed: %w", err)
	}

	key := constants.RedisPrefixEditSession + session.ID
	if err := repository.client.Set(ctx, key, encoded, constants.EditSessionTTL).Err(); err != nil {
		return fmt.Errorf("redis_session_save_failed: %w", err)
	}

	return nil
}

/*
Get loads a session by identifier.

Description: Returns apperr.NotFound when the session is absent or expired.

Parameters:
  - ctx: context.Context
  - id: string

Returns:
  - *Session: The stored session
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisSessionRepository) Get(ctx context.Context, id string) (*Session, error) {
	key := constants.RedisPrefixEditSession + id

	encoded, err := repository.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Edit session")
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(encoded, session); err != nil {
		return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
	}

	return session, nil
}

/*
Delete removes a session. Deleting an absent session is not an error.

Parameters:
  - ctx: context.Context
  - id: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	key := constants.RedisPrefixEditSession + id

	if err := repository.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	return nil
}
