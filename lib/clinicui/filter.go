// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinicui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FilterModel implements case-insensitive substring matching across
// every rendered cell of a row. The filter composes with tabs: the tab
// chooses the collection, and the filter narrows it client-side
// without round-tripping to the server.
type FilterModel struct {
	// Input is the current filter query text.
	Input string

	// Active is true when the filter input has keyboard focus
	// (the user pressed / to start typing).
	Active bool
}

// MatchesRow returns true if the row matches the current filter. An
// empty filter matches everything. If any cell contains the query,
// the row matches.
func (filter *FilterModel) MatchesRow(row Row) bool {
	if filter.Input == "" {
		return true
	}
	query := strings.ToLower(filter.Input)
	for _, cell := range row.Cells {
		if strings.Contains(strings.ToLower(cell), query) {
			return true
		}
	}
	return false
}

// Apply filters a slice of rows, returning only those that match the
// current filter text. Row order is preserved.
func (filter *FilterModel) Apply(rows []Row) []Row {
	if filter.Input == "" {
		return rows
	}
	var result []Row
	for _, row := range rows {
		if filter.MatchesRow(row) {
			result = append(result, row)
		}
	}
	return result
}

// HandleRune processes a character typed while the filter is active.
// Returns true if the input changed.
func (filter *FilterModel) HandleRune(character rune) bool {
	filter.Input += string(character)
	return true
}

// HandleBackspace removes the last character from the filter input.
// Returns true if the input changed.
func (filter *FilterModel) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the filter input and deactivates it.
func (filter *FilterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}

// View renders the filter bar. When active, shows the input with a
// cursor. When inactive with text, shows the filter text. When
// inactive with no text, returns empty string (hidden).
func (filter *FilterModel) View(theme Theme, width int) string {
	if !filter.Active && filter.Input == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Foreground(theme.NormalText).
		Width(width)

	if filter.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return style.Render(" / " + filter.Input + cursor)
	}

	// Inactive but has text — show the filter as a subtle indicator.
	dimStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width)
	return dimStyle.Render(" filter: " + filter.Input)
}
