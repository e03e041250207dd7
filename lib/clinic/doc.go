// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

// Package clinic defines the entity schema shared by the API client
// and the dashboard UI: the four resource kinds (appointments,
// patients, rooms, users), their record types as served by the
// scheduling API, the status and role enumerations with display
// labels, and the create-request payload shapes.
//
// Records are immutable within a snapshot. The client replaces whole
// collections; nothing in this package mutates a record in place.
package clinic
