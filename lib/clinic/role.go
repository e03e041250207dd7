// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinic

import "strings"

// Role is a user's role in the clinic. The API additionally knows a
// read-only "patient" role on legacy accounts; on the write side only
// the three constants below are valid, and anything else normalizes
// to student.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleProfessor Role = "professor"
	RoleStudent   Role = "student"
)

// ParseRole normalizes a raw role value to one of the three valid
// roles. Matching is case-insensitive; unrecognized input (including
// empty) defaults to student.
func ParseRole(value string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleProfessor:
		return RoleProfessor
	default:
		return RoleStudent
	}
}

// Label returns the display label for a role. Unrecognized read-side
// values return their literal string.
func (role Role) Label() string {
	switch role {
	case RoleAdmin:
		return "Administrator"
	case RoleProfessor:
		return "Professor"
	case RoleStudent:
		return "Student"
	default:
		return string(role)
	}
}
