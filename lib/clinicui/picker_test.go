// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinicui

import (
	"testing"

	"github.com/clinicboard/clinicboard/lib/clinic"
)

func TestPickerSyncSkipsWhileFocused(t *testing.T) {
	picker := Picker{
		Options: []PickerOption{{Label: "Room A", Value: 1}},
		Value:   1,
		Focused: true,
	}

	picker.Sync([]PickerOption{{Label: "Room B", Value: 2}})

	if len(picker.Options) != 1 || picker.Options[0].Value != 1 {
		t.Error("sync must not repopulate a focused picker")
	}
	if picker.Value != 1 {
		t.Errorf("focused picker selection changed to %d", picker.Value)
	}
}

func TestPickerSyncRestoresSurvivingSelection(t *testing.T) {
	picker := Picker{
		Options: []PickerOption{{Label: "Room A", Value: 1}, {Label: "Room B", Value: 2}},
		Value:   2,
	}

	picker.Sync([]PickerOption{
		{Label: "Room B (renamed)", Value: 2},
		{Label: "Room C", Value: 3},
	})

	if picker.Value != 2 {
		t.Errorf("selection should survive repopulation, got %d", picker.Value)
	}
	if picker.SelectedLabel() != "Room B (renamed)" {
		t.Errorf("label should come from the fresh options, got %q", picker.SelectedLabel())
	}
}

func TestPickerSyncClearsDeletedSelection(t *testing.T) {
	picker := Picker{
		Placeholder: "select a room",
		Options:     []PickerOption{{Label: "Room A", Value: 1}},
		Value:       1,
	}

	picker.Sync([]PickerOption{{Label: "Room B", Value: 2}})

	if picker.Value != 0 {
		t.Errorf("selection of a deleted record should clear, got %d", picker.Value)
	}
	if picker.SelectedLabel() != "select a room" {
		t.Errorf("cleared picker should show placeholder, got %q", picker.SelectedLabel())
	}
}

func TestPickerToggleOpensOnCurrentSelection(t *testing.T) {
	picker := Picker{
		Options: []PickerOption{
			{Label: "A", Value: 1},
			{Label: "B", Value: 2},
			{Label: "C", Value: 3},
		},
		Value: 3,
	}

	picker.Toggle()
	if !picker.Open {
		t.Fatal("toggle should open the list")
	}
	if picker.Cursor != 2 {
		t.Errorf("cursor should start on the current selection, got %d", picker.Cursor)
	}

	picker.MoveUp()
	picker.Select()
	if picker.Open {
		t.Error("select should close the list")
	}
	if picker.Value != 2 {
		t.Errorf("expected selected value 2, got %d", picker.Value)
	}
}

func TestPickerCursorWraps(t *testing.T) {
	picker := Picker{Options: []PickerOption{{Value: 1}, {Value: 2}}}

	picker.MoveUp()
	if picker.Cursor != 1 {
		t.Errorf("moving up from the top should wrap to the bottom, got %d", picker.Cursor)
	}
	picker.MoveDown()
	if picker.Cursor != 0 {
		t.Errorf("moving down from the bottom should wrap to the top, got %d", picker.Cursor)
	}
}

func TestStudentAndSupervisorOptionsFilterByRole(t *testing.T) {
	users := []clinic.User{
		{ID: 1, Name: "Student One", Role: clinic.RoleStudent},
		{ID: 2, Name: "Prof", Role: clinic.RoleProfessor},
		{ID: 3, Name: "Admin", Role: clinic.RoleAdmin},
		{ID: 4, Name: "Student Two", Role: clinic.RoleStudent},
	}

	students := StudentOptions(users)
	if len(students) != 2 || students[0].Value != 1 || students[1].Value != 4 {
		t.Errorf("unexpected student options: %v", students)
	}

	supervisors := SupervisorOptions(users)
	if len(supervisors) != 2 || supervisors[0].Value != 2 || supervisors[1].Value != 3 {
		t.Errorf("unexpected supervisor options: %v", supervisors)
	}
}
