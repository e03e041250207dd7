// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinicui

import (
	"strconv"

	"github.com/clinicboard/clinicboard/lib/clinic"
)

// Row is one renderable table line. Cells align with the active tab's
// column set. ID carries the record identity for selection tracking
// across refreshes.
type Row struct {
	ID       int64
	Cells    []string
	Severity clinic.Severity
}

// Column describes one table column: a header title and a relative
// width weight. Actual widths are computed from the terminal width at
// render time.
type Column struct {
	Title  string
	Weight int
}

// placeholder stands in for any field the record does not carry.
const placeholder = "-"

// Columns returns the column set for a collection kind.
func Columns(kind clinic.Kind) []Column {
	switch kind {
	case clinic.KindAppointments:
		return []Column{
			{Title: "Date", Weight: 3},
			{Title: "Time", Weight: 3},
			{Title: "Patient", Weight: 4},
			{Title: "Room", Weight: 3},
			{Title: "Student", Weight: 4},
			{Title: "Supervisor", Weight: 4},
			{Title: "Status", Weight: 3},
		}
	case clinic.KindPatients:
		return []Column{
			{Title: "Name", Weight: 4},
			{Title: "Email", Weight: 5},
			{Title: "Phone", Weight: 3},
			{Title: "Birthdate", Weight: 3},
			{Title: "Child", Weight: 2},
			{Title: "Notes", Weight: 4},
		}
	case clinic.KindRooms:
		return []Column{
			{Title: "Name", Weight: 3},
			{Title: "Description", Weight: 6},
			{Title: "Capacity", Weight: 2},
		}
	case clinic.KindUsers:
		return []Column{
			{Title: "Name", Weight: 4},
			{Title: "Email", Weight: 5},
			{Title: "Role", Weight: 3},
		}
	}
	return nil
}

// AppointmentRows builds rows for the appointments tab. Related names
// resolve in three steps: the denormalized *_name field from the list
// endpoint, then the nested record if the server inlined one, then a
// lookup by ID against the other collections. Server order is
// preserved.
func AppointmentRows(appointments []clinic.Appointment, patients []clinic.Patient, rooms []clinic.Room, users []clinic.User) []Row {
	patientNames := make(map[int64]string, len(patients))
	for _, patient := range patients {
		patientNames[patient.ID] = patient.Name
	}
	roomNames := make(map[int64]string, len(rooms))
	for _, room := range rooms {
		roomNames[room.ID] = room.Name
	}
	userNames := make(map[int64]string, len(users))
	for _, user := range users {
		userNames[user.ID] = user.Name
	}

	rows := make([]Row, 0, len(appointments))
	for _, appointment := range appointments {
		patientName := appointment.PatientName
		if patientName == "" && appointment.Patient != nil {
			patientName = appointment.Patient.Name
		}
		if patientName == "" {
			patientName = patientNames[appointment.PatientID]
		}

		roomName := appointment.RoomName
		if roomName == "" && appointment.Room != nil {
			roomName = appointment.Room.Name
		}
		if roomName == "" {
			roomName = roomNames[appointment.RoomID]
		}

		studentName := appointment.StudentName
		if studentName == "" && appointment.Student != nil {
			studentName = appointment.Student.Name
		}
		if studentName == "" {
			studentName = userNames[appointment.StudentID]
		}

		supervisorName := appointment.SupervisorName
		if supervisorName == "" && appointment.Supervisor != nil {
			supervisorName = appointment.Supervisor.Name
		}
		if supervisorName == "" {
			supervisorName = userNames[appointment.SupervisorID]
		}

		rows = append(rows, Row{
			ID: appointment.ID,
			Cells: []string{
				formatDate(appointment.StartAt),
				formatTimeRange(appointment.StartAt, appointment.EndAt),
				orPlaceholder(patientName),
				orPlaceholder(roomName),
				orPlaceholder(studentName),
				orPlaceholder(supervisorName),
				appointment.Status.Label(),
			},
			Severity: appointment.Status.Severity(),
		})
	}
	return rows
}

// PatientRows builds rows for the patients tab in server order.
func PatientRows(patients []clinic.Patient) []Row {
	rows := make([]Row, 0, len(patients))
	for _, patient := range patients {
		// "yes"/"no" rather than a placeholder: the filter matches
		// against the rendered label, so "no" finds adult patients.
		child := "no"
		if patient.IsChild {
			child = "yes"
		}
		rows = append(rows, Row{
			ID: patient.ID,
			Cells: []string{
				orPlaceholder(patient.Name),
				orPlaceholder(patient.Email),
				orPlaceholder(patient.Phone),
				formatDate(patient.Birthdate),
				child,
				orPlaceholder(patient.Notes),
			},
		})
	}
	return rows
}

// RoomRows builds rows for the rooms tab in server order.
func RoomRows(rooms []clinic.Room) []Row {
	rows := make([]Row, 0, len(rooms))
	for _, room := range rooms {
		capacity := placeholder
		if room.Capacity > 0 {
			capacity = strconv.Itoa(room.Capacity)
		}
		rows = append(rows, Row{
			ID: room.ID,
			Cells: []string{
				orPlaceholder(room.Name),
				orPlaceholder(room.Description),
				capacity,
			},
		})
	}
	return rows
}

// UserRows builds rows for the users tab in server order.
func UserRows(users []clinic.User) []Row {
	rows := make([]Row, 0, len(users))
	for _, user := range users {
		rows = append(rows, Row{
			ID: user.ID,
			Cells: []string{
				orPlaceholder(user.Name),
				orPlaceholder(user.Email),
				user.Role.Label(),
			},
		})
	}
	return rows
}

// formatDate renders a timestamp's date portion as dd/mm/yyyy, or the
// placeholder when the timestamp is unset.
func formatDate(value clinic.Time) string {
	if value.IsZero() {
		return placeholder
	}
	return value.Format("02/01/2006")
}

// formatTimeRange renders "HH:MM–HH:MM" from two timestamps, dropping
// either end when unset.
func formatTimeRange(start, end clinic.Time) string {
	if start.IsZero() && end.IsZero() {
		return placeholder
	}
	from := placeholder
	if !start.IsZero() {
		from = start.Format("15:04")
	}
	to := placeholder
	if !end.IsZero() {
		to = end.Format("15:04")
	}
	return from + "–" + to
}

func orPlaceholder(value string) string {
	if value == "" {
		return placeholder
	}
	return value
}
