// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinic

// Status is the lifecycle state of an appointment as reported by the
// API. The set is open-ended from the client's perspective: a value
// outside the known constants still renders, with its literal string
// as the label and neutral severity.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusPending    Status = "pending"
	StatusCancelled  Status = "cancelled"
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in_progress"
	StatusNoShow     Status = "no_show"
)

// Severity classifies a value for visual coding in the dashboard.
// The theme maps each severity to a color.
type Severity int

const (
	// SeverityNeutral is the default for unrecognized or uncolored values.
	SeverityNeutral Severity = iota
	// SeverityInfo marks informational states (scheduled, completed).
	SeverityInfo
	// SeveritySuccess marks positive states (confirmed).
	SeveritySuccess
	// SeverityWarning marks states needing attention (pending).
	SeverityWarning
	// SeverityDanger marks negative states (cancelled).
	SeverityDanger
)

// Label returns the display label for a status. Unrecognized values
// return their literal string so new server-side statuses degrade
// readably instead of disappearing.
func (status Status) Label() string {
	switch status {
	case StatusScheduled:
		return "Scheduled"
	case StatusConfirmed:
		return "Confirmed"
	case StatusPending:
		return "Pending"
	case StatusCancelled:
		return "Cancelled"
	case StatusCompleted:
		return "Completed"
	case StatusInProgress:
		return "In progress"
	case StatusNoShow:
		return "No-show"
	default:
		return string(status)
	}
}

// Severity returns the visual class for a status. Only the states
// with an established badge color are mapped; everything else,
// including in_progress and no_show, is neutral.
func (status Status) Severity() Severity {
	switch status {
	case StatusConfirmed:
		return SeveritySuccess
	case StatusPending:
		return SeverityWarning
	case StatusCancelled:
		return SeverityDanger
	case StatusCompleted, StatusScheduled:
		return SeverityInfo
	default:
		return SeverityNeutral
	}
}
