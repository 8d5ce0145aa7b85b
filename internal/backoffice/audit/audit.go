// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

/*
Package audit records who changed what in the back office.

The upstream Etravel API keeps no history, so this trail is the only answer
to "who deleted that tour". Every catalog mutation (submit, delete) writes
one entry. Recording is best-effort: a failed write is logged and the
mutation proceeds; the trail supports investigations, it does not gate
operations.
*/
package audit

import "time"

// Actions recorded in the trail.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Entry is one recorded mutation.
type Entry struct {
	ID       string `json:"id"`
	ActorID  string `json:"actor_id"`
	Action   string `json:"action"`
	Resource string `json:"resource"`

	// RecordID is nil for creations; the upstream assigns the ID after the
	// fact and the trail does not wait for it.
	RecordID *int `json:"record_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
