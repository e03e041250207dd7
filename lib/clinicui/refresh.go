// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinicui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clinicboard/clinicboard/lib/clinic"
	"github.com/clinicboard/clinicboard/lib/clinicclient"
)

// Backend is the server surface the dashboard drives. Satisfied by
// *clinicclient.Client; tests substitute an in-memory fake.
type Backend interface {
	// FetchAll retrieves all four collections concurrently. Failures
	// are per-collection, never an error for the whole cycle.
	FetchAll(ctx context.Context) clinicclient.RefreshResult

	// Create posts a new record of the given kind.
	Create(ctx context.Context, kind clinic.Kind, payload any) error

	// Delete removes a record by ID.
	Delete(ctx context.Context, kind clinic.Kind, id int64) error
}

// refreshTickMsg fires when the poll interval elapses and a new
// refresh cycle should start.
type refreshTickMsg struct{}

// refreshResultMsg delivers the outcome of a refresh cycle.
type refreshResultMsg struct {
	result clinicclient.RefreshResult
}

// mutationResultMsg delivers the outcome of a create or delete.
type mutationResultMsg struct {
	kind clinic.Kind
	verb string // "create" or "delete"
	err  error
}

// scheduleRefresh returns the command that fires the next poll tick.
func scheduleRefresh(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// fetchAll runs one refresh cycle against the backend.
func fetchAll(ctx context.Context, backend Backend) tea.Cmd {
	return func() tea.Msg {
		return refreshResultMsg{result: backend.FetchAll(ctx)}
	}
}

// createRecord posts a new record and reports the outcome.
func createRecord(ctx context.Context, backend Backend, kind clinic.Kind, payload any) tea.Cmd {
	return func() tea.Msg {
		return mutationResultMsg{
			kind: kind,
			verb: "create",
			err:  backend.Create(ctx, kind, payload),
		}
	}
}

// deleteRecord removes a record and reports the outcome.
func deleteRecord(ctx context.Context, backend Backend, kind clinic.Kind, id int64) tea.Cmd {
	return func() tea.Msg {
		return mutationResultMsg{
			kind: kind,
			verb: "delete",
			err:  backend.Delete(ctx, kind, id),
		}
	}
}
