// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

// Package clinicclient talks JSON over HTTP to the scheduling API.
//
// Reads are deliberately forgiving: a list fetch never returns an
// error. Transport failures, timeouts, and non-2xx responses log a
// diagnostic and yield an empty collection with a false success flag,
// so one slow or broken resource degrades to a stale view instead of
// taking down the refresh cycle. Response bodies may be a bare JSON
// array or an {"items": [...]} wrapper; any other shape normalizes to
// an empty collection.
//
// Writes (Create, Delete) return errors. Structured error bodies from
// the API decode into [*APIError], whose Error method applies a fixed
// precedence when deriving the user-facing message: field-level
// validation issues, then a detail string, then a message string,
// then the raw body.
//
// Every request is bounded by the client's per-request timeout
// (default ten seconds) enforced through context cancellation. There
// are no retries; a failed fetch is dropped, not queued.
package clinicclient
