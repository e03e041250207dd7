// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinicui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/clinicboard/clinicboard/lib/clinic"
)

// PickerOption is a single selectable record in a picker.
type PickerOption struct {
	Label string // Display text shown in the option list.
	Value int64  // Record ID sent to the server on submit.
}

// Picker is a single-select field over a record collection. Its option
// list is rebuilt from each refresh, with two guarantees: a refresh
// never disturbs a picker the user is interacting with, and a selected
// value survives repopulation as long as the record still exists.
type Picker struct {
	Placeholder string // Shown when no value is selected.
	Options     []PickerOption

	// Value is the selected record ID, or zero for no selection.
	Value int64

	// Cursor is the highlighted option index while the list is open.
	Cursor int

	// Open is true while the option list is expanded.
	Open bool

	// Focused is true while the picker has keyboard focus. A focused
	// picker skips repopulation entirely: swapping options mid-
	// interaction would yank the list out from under the user.
	Focused bool
}

// Sync replaces the option list with a fresh snapshot. Skipped when
// the picker is focused. If the current value no longer exists in the
// new options, the selection is cleared.
func (picker *Picker) Sync(options []PickerOption) {
	if picker.Focused {
		return
	}
	picker.Options = options
	if picker.Value == 0 {
		return
	}
	for _, option := range options {
		if option.Value == picker.Value {
			return
		}
	}
	picker.Value = 0
}

// SelectedLabel returns the label of the selected option, or the
// placeholder when nothing is selected.
func (picker *Picker) SelectedLabel() string {
	if picker.Value != 0 {
		for _, option := range picker.Options {
			if option.Value == picker.Value {
				return option.Label
			}
		}
	}
	return picker.Placeholder
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (picker *Picker) MoveUp() {
	if len(picker.Options) == 0 {
		return
	}
	picker.Cursor--
	if picker.Cursor < 0 {
		picker.Cursor = len(picker.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (picker *Picker) MoveDown() {
	if len(picker.Options) == 0 {
		return
	}
	picker.Cursor++
	if picker.Cursor >= len(picker.Options) {
		picker.Cursor = 0
	}
}

// Select commits the highlighted option as the picker's value and
// closes the list. No-op when the list is empty.
func (picker *Picker) Select() {
	if len(picker.Options) == 0 {
		picker.Open = false
		return
	}
	picker.Value = picker.Options[picker.Cursor].Value
	picker.Open = false
}

// Toggle opens or closes the option list. Opening positions the cursor
// on the current selection when there is one.
func (picker *Picker) Toggle() {
	picker.Open = !picker.Open
	if !picker.Open {
		return
	}
	picker.Cursor = 0
	for index, option := range picker.Options {
		if option.Value == picker.Value {
			picker.Cursor = index
			return
		}
	}
}

// RoomOptions builds picker options from the room collection in
// server order.
func RoomOptions(rooms []clinic.Room) []PickerOption {
	options := make([]PickerOption, 0, len(rooms))
	for _, room := range rooms {
		options = append(options, PickerOption{Label: room.Name, Value: room.ID})
	}
	return options
}

// PatientOptions builds picker options from the patient collection in
// server order.
func PatientOptions(patients []clinic.Patient) []PickerOption {
	options := make([]PickerOption, 0, len(patients))
	for _, patient := range patients {
		options = append(options, PickerOption{Label: patient.Name, Value: patient.ID})
	}
	return options
}

// StudentOptions builds picker options from the users that hold the
// student role.
func StudentOptions(users []clinic.User) []PickerOption {
	var options []PickerOption
	for _, user := range users {
		if user.Role == clinic.RoleStudent {
			options = append(options, PickerOption{Label: user.Name, Value: user.ID})
		}
	}
	return options
}

// SupervisorOptions builds picker options from the users eligible to
// supervise: professors and admins.
func SupervisorOptions(users []clinic.User) []PickerOption {
	var options []PickerOption
	for _, user := range users {
		if user.Role == clinic.RoleProfessor || user.Role == clinic.RoleAdmin {
			options = append(options, PickerOption{Label: user.Name, Value: user.ID})
		}
	}
	return options
}

// View renders the picker field line, plus the expanded option list
// when open. The field line shows the selected label or the dimmed
// placeholder.
func (picker *Picker) View(theme Theme, width int) string {
	label := picker.SelectedLabel()
	labelStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	if picker.Value == 0 {
		labelStyle = lipgloss.NewStyle().Foreground(theme.PlaceholderText)
	}

	arrow := "▸"
	if picker.Open {
		arrow = "▾"
	}
	line := " " + arrow + " " + labelStyle.Render(label)

	if !picker.Open {
		return line
	}

	selectedStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)
	normalStyle := lipgloss.NewStyle().Foreground(theme.NormalText)

	var builder strings.Builder
	builder.WriteString(line)
	if len(picker.Options) == 0 {
		builder.WriteString("\n   ")
		builder.WriteString(lipgloss.NewStyle().
			Foreground(theme.FaintText).
			Render("(no options)"))
		return builder.String()
	}
	for index, option := range picker.Options {
		builder.WriteString("\n")
		marker := "   "
		if index == picker.Cursor {
			marker = " > "
		}
		text := marker + option.Label
		if pad := width - ansi.StringWidth(text); pad > 0 && index == picker.Cursor {
			text += strings.Repeat(" ", pad)
		}
		if index == picker.Cursor {
			builder.WriteString(selectedStyle.Render(text))
		} else {
			builder.WriteString(normalStyle.Render(text))
		}
	}
	return builder.String()
}
