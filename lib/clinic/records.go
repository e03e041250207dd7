// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinic

// Room is a treatment room.
type Room struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Capacity    int    `json:"capacity"`
}

// Patient is a clinic patient.
type Patient struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Birthdate Time   `json:"birthdate,omitempty"`
	Notes     string `json:"notes,omitempty"`
	IsChild   bool   `json:"is_child"`
}

// User is a clinic staff account. The password is write-only: it
// appears in UserCreate but never in a read snapshot.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Appointment is a scheduled session. The list endpoint serves a
// denormalized shape with related names inlined (*_name fields); the
// detail shape nests the full related records instead. Either may be
// present, and display code falls back from the denormalized name to
// the nested record's name to a placeholder.
type Appointment struct {
	ID      int64  `json:"id"`
	StartAt Time   `json:"start_dt"`
	EndAt   Time   `json:"end_dt"`
	Status  Status `json:"status"`
	Notes   string `json:"notes,omitempty"`

	RoomID       int64 `json:"room_id,omitempty"`
	PatientID    int64 `json:"patient_id,omitempty"`
	StudentID    int64 `json:"student_id,omitempty"`
	SupervisorID int64 `json:"supervisor_id,omitempty"`

	RoomName       string `json:"room_name,omitempty"`
	PatientName    string `json:"patient_name,omitempty"`
	StudentName    string `json:"student_name,omitempty"`
	SupervisorName string `json:"supervisor_name,omitempty"`

	Room       *Room    `json:"room,omitempty"`
	Patient    *Patient `json:"patient,omitempty"`
	Student    *User    `json:"student,omitempty"`
	Supervisor *User    `json:"supervisor,omitempty"`
}

// AppointmentCreate is the POST /api/appointments request body.
type AppointmentCreate struct {
	StartAt      Time    `json:"start_dt"`
	EndAt        Time    `json:"end_dt"`
	RoomID       int64   `json:"room_id"`
	PatientID    int64   `json:"patient_id"`
	StudentID    int64   `json:"student_id"`
	SupervisorID int64   `json:"supervisor_id"`
	Notes        *string `json:"notes"`
}

// PatientCreate is the POST /api/patients request body. Birthdate and
// Notes are pointers so that an empty form field serializes as an
// explicit null rather than an empty string.
type PatientCreate struct {
	Name      string  `json:"name"`
	Email     string  `json:"email,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Birthdate *string `json:"birthdate"`
	Notes     *string `json:"notes"`
	IsChild   bool    `json:"is_child"`
}

// RoomCreate is the POST /api/rooms request body. A nil Capacity lets
// the server apply its default.
type RoomCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Capacity    *int   `json:"capacity,omitempty"`
}

// UserCreate is the POST /api/users request body.
type UserCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}
