// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

// Package clinicui implements the terminal dashboard for the clinic
// scheduling API. Built on bubbletea (Elm architecture), it shows the
// four resource collections as filterable tables on tabs, with create
// forms, confirmed deletes, and transient outcome notices.
//
// Data flow:
//
//	[scheduling API]
//	      | (Backend interface, polled every cycle)
//	  [Store] — one snapshot per resource kind, replace-on-success
//	      |
//	  [Model] <- bubbletea event loop
//	      |
//	[terminal output]
//
// A refresh cycle fetches all four collections concurrently under a
// per-request time budget; kinds that fail keep their prior snapshot,
// so the view degrades to stale-but-consistent rather than blanking.
// Derived rows and the dependent pickers inside the appointment form
// are recomputed after every cycle — except that a picker holding
// input focus is left alone for that cycle, so a refresh never
// discards a choice the operator is in the middle of making.
//
// The Backend interface decouples the UI from the HTTP client; tests
// drive the Model with an in-memory backend.
package clinicui
