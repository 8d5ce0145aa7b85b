// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package sec

// # Back-Office Roles

// Role represents the authorization level granted to a back-office account.
type Role string

const (
	// Unrestricted access: account management, deletes, audit trail
	RoleAdmin Role = "admin"

	// Can create and edit catalog records through edit sessions
	RoleEditor Role = "editor"

	// Read-only back-office access: listings and reservations
	RoleAgent Role = "agent"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {

	// Linear scale (10-30) leaves room for future intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleEditor:
		return 20
	case RoleAgent:
		return 10
	default:
		return 0
	}
}
