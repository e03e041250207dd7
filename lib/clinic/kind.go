// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinic

// Kind identifies one of the four resource collections served by the
// scheduling API. The string value is the API path segment
// (GET /api/{kind}, POST /api/{kind}, DELETE /api/{kind}/{id}).
type Kind string

const (
	KindAppointments Kind = "appointments"
	KindPatients     Kind = "patients"
	KindRooms        Kind = "rooms"
	KindUsers        Kind = "users"
)

// AllKinds lists every resource kind in display order (the order of
// the dashboard tabs).
var AllKinds = []Kind{KindAppointments, KindPatients, KindRooms, KindUsers}

// Singular returns the singular noun for a kind, used in notices
// ("appointment created", "room deleted").
func (kind Kind) Singular() string {
	switch kind {
	case KindAppointments:
		return "appointment"
	case KindPatients:
		return "patient"
	case KindRooms:
		return "room"
	case KindUsers:
		return "user"
	default:
		return string(kind)
	}
}

// Label returns the capitalized plural noun for a kind, used as the
// tab title.
func (kind Kind) Label() string {
	switch kind {
	case KindAppointments:
		return "Appointments"
	case KindPatients:
		return "Patients"
	case KindRooms:
		return "Rooms"
	case KindUsers:
		return "Users"
	default:
		return string(kind)
	}
}
