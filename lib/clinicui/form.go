// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinicui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clinicboard/clinicboard/lib/clinic"
)

// fieldKind distinguishes free-text fields from record pickers.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldPicker
)

// FormField is one labeled input in a create form.
type FormField struct {
	Label  string
	Kind   fieldKind
	Input  textinput.Model
	Picker Picker
}

// Form is a create form for one record kind. Fields appear in a fixed
// order per kind; Focus tracks which field receives keystrokes.
// Validation runs on submit only, so a half-typed form never flashes
// errors.
type Form struct {
	Kind   clinic.Kind
	Fields []FormField
	Focus  int

	// Errors holds the validation messages from the last failed
	// submit attempt. Cleared on the next submit.
	Errors []string
}

// Field indices per form layout. Validators read fields by these
// positions, so constructors and validators must agree.
const (
	appointmentFieldDate = iota
	appointmentFieldStart
	appointmentFieldEnd
	appointmentFieldRoom
	appointmentFieldPatient
	appointmentFieldStudent
	appointmentFieldSupervisor
	appointmentFieldNotes
)

const (
	patientFieldName = iota
	patientFieldEmail
	patientFieldPhone
	patientFieldBirthdate
	patientFieldNotes
	patientFieldIsChild
)

const (
	roomFieldName = iota
	roomFieldDescription
	roomFieldCapacity
)

const (
	userFieldName = iota
	userFieldEmail
	userFieldPassword
	userFieldRole
)

func newTextField(label, placeholder string) FormField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 256
	input.Width = 40
	input.Prompt = ""
	return FormField{Label: label, Kind: fieldText, Input: input}
}

func newPickerField(label, placeholder string, options []PickerOption) FormField {
	return FormField{
		Label: label,
		Kind:  fieldPicker,
		Picker: Picker{
			Placeholder: placeholder,
			Options:     options,
		},
	}
}

// NewForm builds an empty create form for a kind, with pickers
// populated from the current snapshots. The first field starts
// focused.
func NewForm(kind clinic.Kind, rooms []clinic.Room, patients []clinic.Patient, users []clinic.User) *Form {
	form := &Form{Kind: kind}
	switch kind {
	case clinic.KindAppointments:
		form.Fields = []FormField{
			newTextField("Date", "YYYY-MM-DD"),
			newTextField("Start", "HH:MM"),
			newTextField("End", "HH:MM"),
			newPickerField("Room", "select a room", RoomOptions(rooms)),
			newPickerField("Patient", "select a patient", PatientOptions(patients)),
			newPickerField("Student", "select a student", StudentOptions(users)),
			newPickerField("Supervisor", "select a supervisor", SupervisorOptions(users)),
			newTextField("Notes", "optional"),
		}
	case clinic.KindPatients:
		form.Fields = []FormField{
			newTextField("Name", ""),
			newTextField("Email", "optional"),
			newTextField("Phone", "optional"),
			newTextField("Birthdate", "YYYY-MM-DD, optional"),
			newTextField("Notes", "optional"),
			newTextField("Child", "true/false"),
		}
	case clinic.KindRooms:
		form.Fields = []FormField{
			newTextField("Name", ""),
			newTextField("Description", "optional"),
			newTextField("Capacity", "optional"),
		}
	case clinic.KindUsers:
		form.Fields = []FormField{
			newTextField("Name", ""),
			newTextField("Email", ""),
			newTextField("Password", "at least 8 characters"),
			newTextField("Role", "student/professor/admin"),
		}
	}
	form.setFocus(0)
	return form
}

func (form *Form) setFocus(index int) {
	for i := range form.Fields {
		field := &form.Fields[i]
		if field.Kind == fieldText {
			field.Input.Blur()
		} else {
			field.Picker.Focused = false
			field.Picker.Open = false
		}
	}
	form.Focus = index
	field := &form.Fields[index]
	if field.Kind == fieldText {
		field.Input.Focus()
	} else {
		field.Picker.Focused = true
	}
}

// NextField advances focus to the next field, wrapping.
func (form *Form) NextField() {
	form.setFocus((form.Focus + 1) % len(form.Fields))
}

// PrevField moves focus to the previous field, wrapping.
func (form *Form) PrevField() {
	form.setFocus((form.Focus - 1 + len(form.Fields)) % len(form.Fields))
}

// SyncPickers refreshes every picker's option list from new
// snapshots. Pickers the user is interacting with are left alone (see
// Picker.Sync).
func (form *Form) SyncPickers(rooms []clinic.Room, patients []clinic.Patient, users []clinic.User) {
	if form.Kind != clinic.KindAppointments {
		return
	}
	form.Fields[appointmentFieldRoom].Picker.Sync(RoomOptions(rooms))
	form.Fields[appointmentFieldPatient].Picker.Sync(PatientOptions(patients))
	form.Fields[appointmentFieldStudent].Picker.Sync(StudentOptions(users))
	form.Fields[appointmentFieldSupervisor].Picker.Sync(SupervisorOptions(users))
}

// Update routes a keystroke to the focused field. Returns any command
// produced by the field (textinput cursor blink).
func (form *Form) Update(message tea.KeyMsg) tea.Cmd {
	field := &form.Fields[form.Focus]
	if field.Kind == fieldPicker {
		picker := &field.Picker
		switch message.Type {
		case tea.KeyEnter, tea.KeySpace:
			if picker.Open {
				picker.Select()
			} else {
				picker.Toggle()
			}
		case tea.KeyUp:
			picker.MoveUp()
		case tea.KeyDown:
			picker.MoveDown()
		}
		return nil
	}
	var cmd tea.Cmd
	field.Input, cmd = field.Input.Update(message)
	return cmd
}

// OpenPicker reports whether the focused field is a picker with its
// option list expanded, in which case navigation keys belong to it.
func (form *Form) OpenPicker() bool {
	field := &form.Fields[form.Focus]
	return field.Kind == fieldPicker && field.Picker.Open
}

func (form *Form) textValue(index int) string {
	return strings.TrimSpace(form.Fields[index].Input.Value())
}

// Submit validates the form and, when valid, returns the create
// payload to send. On validation failure it records the messages in
// form.Errors and returns nil.
func (form *Form) Submit(now time.Time) any {
	var payload any
	var problems []string

	switch form.Kind {
	case clinic.KindAppointments:
		input := AppointmentInput{
			Date:         form.textValue(appointmentFieldDate),
			StartTime:    form.textValue(appointmentFieldStart),
			EndTime:      form.textValue(appointmentFieldEnd),
			RoomID:       form.Fields[appointmentFieldRoom].Picker.Value,
			PatientID:    form.Fields[appointmentFieldPatient].Picker.Value,
			StudentID:    form.Fields[appointmentFieldStudent].Picker.Value,
			SupervisorID: form.Fields[appointmentFieldSupervisor].Picker.Value,
			Notes:        form.textValue(appointmentFieldNotes),
		}
		create, errs := ValidateAppointment(input, now)
		payload, problems = create, errs
		if len(errs) > 0 {
			payload = nil
		}
	case clinic.KindPatients:
		input := PatientInput{
			Name:      form.textValue(patientFieldName),
			Email:     form.textValue(patientFieldEmail),
			Phone:     form.textValue(patientFieldPhone),
			Birthdate: form.textValue(patientFieldBirthdate),
			Notes:     form.textValue(patientFieldNotes),
			IsChild:   form.textValue(patientFieldIsChild),
		}
		create, errs := ValidatePatient(input)
		payload, problems = create, errs
		if len(errs) > 0 {
			payload = nil
		}
	case clinic.KindRooms:
		input := RoomInput{
			Name:        form.textValue(roomFieldName),
			Description: form.textValue(roomFieldDescription),
			Capacity:    form.textValue(roomFieldCapacity),
		}
		create, errs := ValidateRoom(input)
		payload, problems = create, errs
		if len(errs) > 0 {
			payload = nil
		}
	case clinic.KindUsers:
		input := UserInput{
			Name:     form.textValue(userFieldName),
			Email:    form.textValue(userFieldEmail),
			Password: form.textValue(userFieldPassword),
			Role:     form.textValue(userFieldRole),
		}
		create, errs := ValidateUser(input)
		payload, problems = create, errs
		if len(errs) > 0 {
			payload = nil
		}
	}

	form.Errors = problems
	return payload
}

// AppointmentInput is the raw appointment form state fed to
// validation.
type AppointmentInput struct {
	Date      string
	StartTime string
	EndTime   string

	RoomID       int64
	PatientID    int64
	StudentID    int64
	SupervisorID int64

	Notes string
}

// ValidateAppointment checks an appointment form and builds the create
// payload. The start must be strictly in the future relative to now,
// and the end strictly after the start.
func ValidateAppointment(input AppointmentInput, now time.Time) (clinic.AppointmentCreate, []string) {
	var problems []string

	if input.Date == "" || input.StartTime == "" || input.EndTime == "" {
		problems = append(problems, "please fill in the date, start and end time")
	}
	if input.RoomID == 0 || input.PatientID == 0 || input.StudentID == 0 || input.SupervisorID == 0 {
		problems = append(problems, "please select a room, patient, student and supervisor")
	}
	if len(problems) > 0 {
		return clinic.AppointmentCreate{}, problems
	}

	start, startErr := time.ParseInLocation("2006-01-02 15:04", input.Date+" "+input.StartTime, now.Location())
	end, endErr := time.ParseInLocation("2006-01-02 15:04", input.Date+" "+input.EndTime, now.Location())
	if startErr != nil || endErr != nil {
		return clinic.AppointmentCreate{}, []string{"invalid date or time format"}
	}

	if !start.After(now) {
		problems = append(problems, "appointment must start in the future")
	}
	if !end.After(start) {
		problems = append(problems, "end time must be after start time")
	}
	if len(problems) > 0 {
		return clinic.AppointmentCreate{}, problems
	}

	create := clinic.AppointmentCreate{
		StartAt:      clinic.At(start),
		EndAt:        clinic.At(end),
		RoomID:       input.RoomID,
		PatientID:    input.PatientID,
		StudentID:    input.StudentID,
		SupervisorID: input.SupervisorID,
	}
	if input.Notes != "" {
		create.Notes = &input.Notes
	}
	return create, nil
}

// PatientInput is the raw patient form state fed to validation.
type PatientInput struct {
	Name      string
	Email     string
	Phone     string
	Birthdate string
	Notes     string
	IsChild   string
}

// ValidatePatient checks a patient form and builds the create payload.
// Empty birthdate and notes serialize as explicit nulls.
func ValidatePatient(input PatientInput) (clinic.PatientCreate, []string) {
	var problems []string
	if input.Name == "" {
		problems = append(problems, "name is required")
	}
	if input.Birthdate != "" {
		if _, err := time.Parse("2006-01-02", input.Birthdate); err != nil {
			problems = append(problems, "birthdate must be YYYY-MM-DD")
		}
	}
	if len(problems) > 0 {
		return clinic.PatientCreate{}, problems
	}

	create := clinic.PatientCreate{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		IsChild: strings.EqualFold(input.IsChild, "true"),
	}
	if input.Birthdate != "" {
		create.Birthdate = &input.Birthdate
	}
	if input.Notes != "" {
		create.Notes = &input.Notes
	}
	return create, nil
}

// RoomInput is the raw room form state fed to validation.
type RoomInput struct {
	Name        string
	Description string
	Capacity    string
}

// ValidateRoom checks a room form and builds the create payload. An
// empty capacity leaves the server default in place.
func ValidateRoom(input RoomInput) (clinic.RoomCreate, []string) {
	var problems []string
	if input.Name == "" {
		problems = append(problems, "room name is required")
	}
	var capacity *int
	if input.Capacity != "" {
		parsed, err := strconv.Atoi(input.Capacity)
		if err != nil || parsed < 1 {
			problems = append(problems, "capacity must be a positive number")
		} else {
			capacity = &parsed
		}
	}
	if len(problems) > 0 {
		return clinic.RoomCreate{}, problems
	}
	return clinic.RoomCreate{
		Name:        input.Name,
		Description: input.Description,
		Capacity:    capacity,
	}, nil
}

// UserInput is the raw user form state fed to validation.
type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// ValidateUser checks a user form and builds the create payload. An
// unrecognized or empty role falls back to student (see
// clinic.ParseRole).
func ValidateUser(input UserInput) (clinic.UserCreate, []string) {
	var problems []string
	if input.Name == "" || input.Email == "" || input.Password == "" {
		problems = append(problems, "name, email and password are required")
	}
	if input.Password != "" && len([]rune(input.Password)) < 8 {
		problems = append(problems, "password must be at least 8 characters")
	}
	if len(problems) > 0 {
		return clinic.UserCreate{}, problems
	}
	return clinic.UserCreate{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     clinic.ParseRole(input.Role),
	}, nil
}

// View renders the form panel: title, labeled fields with a focus
// marker, validation errors, and the key hints.
func (form *Form) View(theme Theme, width int) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	focusedLabel := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true)
	errorStyle := lipgloss.NewStyle().
		Foreground(theme.SeverityColor(clinic.SeverityDanger))
	hintStyle := lipgloss.NewStyle().Foreground(theme.HelpText)

	var builder strings.Builder
	builder.WriteString(titleStyle.Render(" New " + form.Kind.Singular()))
	builder.WriteString("\n\n")

	for index := range form.Fields {
		field := &form.Fields[index]
		marker := "  "
		style := labelStyle
		if index == form.Focus {
			marker = "> "
			style = focusedLabel
		}
		builder.WriteString(" " + marker + style.Render(padLabel(field.Label)))
		if field.Kind == fieldText {
			builder.WriteString(" " + field.Input.View())
		} else {
			builder.WriteString(field.Picker.View(theme, width-16))
		}
		builder.WriteString("\n")
	}

	for _, problem := range form.Errors {
		builder.WriteString("\n " + errorStyle.Render("✗ "+problem))
	}

	builder.WriteString("\n\n " + hintStyle.Render("tab: next field · C-d: submit · esc: cancel"))
	return builder.String()
}

func padLabel(label string) string {
	const width = 11
	if len(label) >= width {
		return label
	}
	return label + strings.Repeat(" ", width-len(label))
}
