// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinicui

import (
	"strings"
	"testing"
	"time"

	"github.com/clinicboard/clinicboard/lib/clinic"
)

var validationNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestValidateAppointmentRequiresDateAndTimes(t *testing.T) {
	input := AppointmentInput{
		RoomID: 1, PatientID: 2, StudentID: 3, SupervisorID: 4,
	}

	_, problems := ValidateAppointment(input, validationNow)
	if len(problems) != 1 {
		t.Fatalf("expected 1 problem, got %v", problems)
	}
	if !strings.Contains(problems[0], "date, start and end time") {
		t.Errorf("unexpected message: %q", problems[0])
	}
}

func TestValidateAppointmentRequiresAllPickers(t *testing.T) {
	input := AppointmentInput{
		Date: "2026-03-02", StartTime: "09:00", EndTime: "10:00",
		RoomID: 1, PatientID: 2, StudentID: 3,
		// Supervisor missing.
	}

	_, problems := ValidateAppointment(input, validationNow)
	if len(problems) != 1 {
		t.Fatalf("expected 1 problem, got %v", problems)
	}
	if !strings.Contains(problems[0], "room, patient, student and supervisor") {
		t.Errorf("unexpected message: %q", problems[0])
	}
}

func TestValidateAppointmentRejectsPastStart(t *testing.T) {
	input := AppointmentInput{
		Date: "2026-02-28", StartTime: "09:00", EndTime: "10:00",
		RoomID: 1, PatientID: 2, StudentID: 3, SupervisorID: 4,
	}

	_, problems := ValidateAppointment(input, validationNow)
	if len(problems) != 1 || !strings.Contains(problems[0], "start in the future") {
		t.Errorf("expected future-start problem, got %v", problems)
	}
}

func TestValidateAppointmentRejectsEndBeforeStart(t *testing.T) {
	input := AppointmentInput{
		Date: "2026-03-02", StartTime: "10:00", EndTime: "09:00",
		RoomID: 1, PatientID: 2, StudentID: 3, SupervisorID: 4,
	}

	_, problems := ValidateAppointment(input, validationNow)
	if len(problems) != 1 || !strings.Contains(problems[0], "after start") {
		t.Errorf("expected end-after-start problem, got %v", problems)
	}
}

func TestValidateAppointmentRejectsMalformedTime(t *testing.T) {
	input := AppointmentInput{
		Date: "2026-03-02", StartTime: "9am", EndTime: "10:00",
		RoomID: 1, PatientID: 2, StudentID: 3, SupervisorID: 4,
	}

	_, problems := ValidateAppointment(input, validationNow)
	if len(problems) != 1 || !strings.Contains(problems[0], "invalid date or time") {
		t.Errorf("expected format problem, got %v", problems)
	}
}

func TestValidateAppointmentBuildsPayload(t *testing.T) {
	input := AppointmentInput{
		Date: "2026-03-02", StartTime: "09:00", EndTime: "10:30",
		RoomID: 1, PatientID: 2, StudentID: 3, SupervisorID: 4,
		Notes: "first session",
	}

	create, problems := ValidateAppointment(input, validationNow)
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if create.StartAt.Hour() != 9 || create.EndAt.Minute() != 30 {
		t.Errorf("unexpected times: %v – %v", create.StartAt, create.EndAt)
	}
	if create.Notes == nil || *create.Notes != "first session" {
		t.Errorf("notes not carried: %v", create.Notes)
	}
}

func TestValidateAppointmentOmitsEmptyNotes(t *testing.T) {
	input := AppointmentInput{
		Date: "2026-03-02", StartTime: "09:00", EndTime: "10:00",
		RoomID: 1, PatientID: 2, StudentID: 3, SupervisorID: 4,
	}

	create, problems := ValidateAppointment(input, validationNow)
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if create.Notes != nil {
		t.Errorf("empty notes should serialize as null, got %q", *create.Notes)
	}
}

func TestValidatePatientCoercions(t *testing.T) {
	create, problems := ValidatePatient(PatientInput{
		Name:      "Alice",
		Birthdate: "2015-06-01",
		IsChild:   "TRUE",
	})
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if !create.IsChild {
		t.Error("is_child 'TRUE' should coerce to true")
	}
	if create.Birthdate == nil || *create.Birthdate != "2015-06-01" {
		t.Errorf("birthdate not carried: %v", create.Birthdate)
	}
	if create.Notes != nil {
		t.Error("empty notes should be nil")
	}
}

func TestValidatePatientRequiresName(t *testing.T) {
	_, problems := ValidatePatient(PatientInput{IsChild: "false"})
	if len(problems) != 1 || !strings.Contains(problems[0], "name is required") {
		t.Errorf("expected name problem, got %v", problems)
	}
}

func TestValidatePatientRejectsBadBirthdate(t *testing.T) {
	_, problems := ValidatePatient(PatientInput{Name: "Alice", Birthdate: "01/06/2015"})
	if len(problems) != 1 || !strings.Contains(problems[0], "YYYY-MM-DD") {
		t.Errorf("expected birthdate format problem, got %v", problems)
	}
}

func TestValidateRoomCapacity(t *testing.T) {
	create, problems := ValidateRoom(RoomInput{Name: "Room A", Capacity: "6"})
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if create.Capacity == nil || *create.Capacity != 6 {
		t.Errorf("capacity not carried: %v", create.Capacity)
	}

	create, problems = ValidateRoom(RoomInput{Name: "Room B"})
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if create.Capacity != nil {
		t.Error("empty capacity should stay nil for the server default")
	}

	_, problems = ValidateRoom(RoomInput{Name: "Room C", Capacity: "lots"})
	if len(problems) != 1 || !strings.Contains(problems[0], "capacity") {
		t.Errorf("expected capacity problem, got %v", problems)
	}
}

func TestValidateUserPasswordLength(t *testing.T) {
	_, problems := ValidateUser(UserInput{
		Name: "Bob", Email: "bob@clinic.test", Password: "short",
	})
	if len(problems) != 1 || !strings.Contains(problems[0], "at least 8") {
		t.Errorf("expected password problem, got %v", problems)
	}
}

func TestValidateUserNormalizesRole(t *testing.T) {
	create, problems := ValidateUser(UserInput{
		Name: "Bob", Email: "bob@clinic.test", Password: "hunter22!",
		Role: "Professor",
	})
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if create.Role != clinic.RoleProfessor {
		t.Errorf("expected professor, got %q", create.Role)
	}

	create, _ = ValidateUser(UserInput{
		Name: "Eve", Email: "eve@clinic.test", Password: "hunter22!",
		Role: "superuser",
	})
	if create.Role != clinic.RoleStudent {
		t.Errorf("unknown role should default to student, got %q", create.Role)
	}
}

func TestFormSubmitRecordsErrors(t *testing.T) {
	form := NewForm(clinic.KindRooms, nil, nil, nil)

	payload := form.Submit(validationNow)
	if payload != nil {
		t.Fatal("empty room form should not produce a payload")
	}
	if len(form.Errors) == 0 {
		t.Error("failed submit should record validation errors")
	}
}

func TestFormFocusCycles(t *testing.T) {
	form := NewForm(clinic.KindUsers, nil, nil, nil)

	if !form.Fields[0].Input.Focused() {
		t.Error("first field should start focused")
	}
	form.NextField()
	if form.Focus != 1 || !form.Fields[1].Input.Focused() {
		t.Error("next field should move focus to Email")
	}
	form.PrevField()
	form.PrevField()
	if form.Focus != len(form.Fields)-1 {
		t.Errorf("focus should wrap to the last field, got %d", form.Focus)
	}
}

func TestFormSyncPickersRespectsFocus(t *testing.T) {
	rooms := []clinic.Room{{ID: 1, Name: "Room A"}}
	form := NewForm(clinic.KindAppointments, rooms, nil, nil)

	// Move focus onto the room picker and select the room.
	form.setFocus(appointmentFieldRoom)
	form.Fields[appointmentFieldRoom].Picker.Value = 1

	// A refresh lands while the picker is focused: its options must
	// not move.
	form.SyncPickers([]clinic.Room{{ID: 2, Name: "Room B"}}, nil, nil)
	if form.Fields[appointmentFieldRoom].Picker.Options[0].Value != 1 {
		t.Error("focused picker repopulated during refresh")
	}

	// After focus moves away, the next refresh repopulates and the
	// now-deleted selection clears.
	form.setFocus(appointmentFieldDate)
	form.SyncPickers([]clinic.Room{{ID: 2, Name: "Room B"}}, nil, nil)
	picker := form.Fields[appointmentFieldRoom].Picker
	if picker.Options[0].Value != 2 {
		t.Error("unfocused picker should repopulate")
	}
	if picker.Value != 0 {
		t.Errorf("deleted selection should clear, got %d", picker.Value)
	}
}
