// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinicui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/clinicboard/clinicboard/lib/clinic"
)

// FocusRegion identifies which surface has keyboard focus.
type FocusRegion int

const (
	// FocusTable routes keys to the active tab's table.
	FocusTable FocusRegion = iota

	// FocusFilter routes all input to the filter text.
	FocusFilter

	// FocusForm routes all input to the open create form.
	FocusForm

	// FocusConfirm routes input to the delete confirmation prompt.
	FocusConfirm
)

// tabState is the per-tab view state that survives tab switches:
// filter text, cursor position, and the selected record identity used
// to re-find the row after a refresh reorders or removes records.
type tabState struct {
	filter       FilterModel
	cursor       int
	scrollOffset int
	selectedID   int64
}

// ModelConfig carries the dependencies for NewModel.
type ModelConfig struct {
	Backend      Backend
	Theme        Theme
	Keys         KeyMap
	Logger       *slog.Logger
	PollInterval time.Duration
}

// Model is the bubbletea model for the dashboard: four tabbed
// collection tables, a background poll loop, create forms, and
// transient notices.
type Model struct {
	backend Backend
	store   *Store
	theme   Theme
	keys    KeyMap
	logger  *slog.Logger

	pollInterval time.Duration

	width  int
	height int
	ready  bool

	activeTab   clinic.Kind
	tabs        map[clinic.Kind]*tabState
	rows        []Row
	focusRegion FocusRegion

	form *Form

	// Pending delete awaiting confirmation.
	confirmKind clinic.Kind
	confirmID   int64

	notices NoticeArea

	// refreshInFlight suppresses overlapping refresh cycles: a poll
	// tick that lands while a fetch is still running is skipped, and
	// the next tick picks up.
	refreshInFlight bool

	// staleKinds counts the collections whose last fetch failed and
	// are therefore showing data from an earlier cycle.
	staleKinds  int
	lastRefresh time.Time
}

// NewModel creates the dashboard model. The first refresh starts from
// Init.
func NewModel(config ModelConfig) Model {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.PollInterval <= 0 {
		config.PollInterval = 10 * time.Second
	}
	tabs := make(map[clinic.Kind]*tabState, len(clinic.AllKinds))
	for _, kind := range clinic.AllKinds {
		tabs[kind] = &tabState{}
	}
	return Model{
		backend:      config.Backend,
		store:        NewStore(),
		theme:        config.Theme,
		keys:         config.Keys,
		logger:       config.Logger,
		pollInterval: config.PollInterval,
		activeTab:    clinic.KindAppointments,
		tabs:         tabs,
	}
}

func (model Model) Init() tea.Cmd {
	// The initial tick both starts the first refresh and arms the
	// poll loop.
	return func() tea.Msg { return refreshTickMsg{} }
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		// When filter is active, route all input to the filter first.
		if model.focusRegion == FocusFilter {
			return model.handleFilterKeys(message)
		}
		// When a create form is open, it owns the keyboard.
		if model.focusRegion == FocusForm {
			return model.handleFormKeys(message)
		}
		// When a delete is awaiting confirmation.
		if model.focusRegion == FocusConfirm {
			return model.handleConfirmKeys(message)
		}

		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit

		case key.Matches(message, model.keys.TabAppointments):
			model.switchTab(clinic.KindAppointments)
		case key.Matches(message, model.keys.TabPatients):
			model.switchTab(clinic.KindPatients)
		case key.Matches(message, model.keys.TabRooms):
			model.switchTab(clinic.KindRooms)
		case key.Matches(message, model.keys.TabUsers):
			model.switchTab(clinic.KindUsers)

		case key.Matches(message, model.keys.NextTab):
			model.switchTab(model.adjacentTab(1))
		case key.Matches(message, model.keys.PrevTab):
			model.switchTab(model.adjacentTab(-1))

		case key.Matches(message, model.keys.FilterActivate):
			model.focusRegion = FocusFilter
			tab := model.tab()
			tab.filter.Active = true
			tab.cursor = 0
			tab.scrollOffset = 0
			model.rebuildRows()

		case key.Matches(message, model.keys.FilterClear):
			tab := model.tab()
			if tab.filter.Input != "" {
				tab.filter.Clear()
				model.rebuildRows()
				model.restoreSelection()
			}

		case key.Matches(message, model.keys.Create):
			model.form = NewForm(model.activeTab,
				model.store.Rooms(), model.store.Patients(), model.store.Users())
			model.focusRegion = FocusForm

		case key.Matches(message, model.keys.Delete):
			if len(model.rows) > 0 {
				tab := model.tab()
				model.confirmKind = model.activeTab
				model.confirmID = model.rows[tab.cursor].ID
				model.focusRegion = FocusConfirm
			}

		case key.Matches(message, model.keys.Refresh):
			if !model.refreshInFlight {
				model.refreshInFlight = true
				return model, fetchAll(context.Background(), model.backend)
			}

		case key.Matches(message, model.keys.Dismiss):
			model.notices.DismissOldest()

		default:
			model.handleTableKeys(message)
		}

	case refreshTickMsg:
		// Always reschedule; skip the fetch when one is still running
		// so slow servers don't stack cycles.
		commands := []tea.Cmd{scheduleRefresh(model.pollInterval)}
		if !model.refreshInFlight {
			model.refreshInFlight = true
			commands = append(commands, fetchAll(context.Background(), model.backend))
		}
		return model, tea.Batch(commands...)

	case refreshResultMsg:
		return model.handleRefreshResult(message)

	case mutationResultMsg:
		return model.handleMutationResult(message)

	case noticeExpiredMsg:
		model.notices.Expire(message.id)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
	}
	return model, nil
}

func (model *Model) tab() *tabState {
	return model.tabs[model.activeTab]
}

func (model *Model) adjacentTab(step int) clinic.Kind {
	for index, kind := range clinic.AllKinds {
		if kind == model.activeTab {
			next := (index + step + len(clinic.AllKinds)) % len(clinic.AllKinds)
			return clinic.AllKinds[next]
		}
	}
	return clinic.KindAppointments
}

func (model *Model) switchTab(kind clinic.Kind) {
	if model.activeTab == kind {
		return
	}
	model.activeTab = kind
	model.rebuildRows()
	model.restoreSelection()
}

// rebuildRows recomputes the visible rows for the active tab from the
// store snapshot and the tab's filter. Server order is preserved.
func (model *Model) rebuildRows() {
	var rows []Row
	switch model.activeTab {
	case clinic.KindAppointments:
		rows = AppointmentRows(model.store.Appointments(),
			model.store.Patients(), model.store.Rooms(), model.store.Users())
	case clinic.KindPatients:
		rows = PatientRows(model.store.Patients())
	case clinic.KindRooms:
		rows = RoomRows(model.store.Rooms())
	case clinic.KindUsers:
		rows = UserRows(model.store.Users())
	}
	tab := model.tab()
	model.rows = tab.filter.Apply(rows)
}

// restoreSelection re-finds the previously selected record in the
// rebuilt rows. When the record is gone, the cursor clamps to the
// nearest valid position and selection follows the row now there.
func (model *Model) restoreSelection() {
	tab := model.tab()
	if tab.selectedID != 0 {
		for index, row := range model.rows {
			if row.ID == tab.selectedID {
				tab.cursor = index
				model.ensureCursorVisible()
				return
			}
		}
	}
	if tab.cursor >= len(model.rows) {
		tab.cursor = len(model.rows) - 1
	}
	if tab.cursor < 0 {
		tab.cursor = 0
	}
	if len(model.rows) > 0 {
		tab.selectedID = model.rows[tab.cursor].ID
	} else {
		tab.selectedID = 0
	}
	model.ensureCursorVisible()
}

func (model *Model) handleTableKeys(message tea.KeyMsg) {
	tab := model.tab()
	page := model.tableHeight()
	if page < 1 {
		page = 1
	}

	switch {
	case key.Matches(message, model.keys.Up):
		if tab.cursor > 0 {
			tab.cursor--
		}
	case key.Matches(message, model.keys.Down):
		if tab.cursor < len(model.rows)-1 {
			tab.cursor++
		}
	case key.Matches(message, model.keys.PageUp):
		tab.cursor -= page
		if tab.cursor < 0 {
			tab.cursor = 0
		}
	case key.Matches(message, model.keys.PageDown):
		tab.cursor += page
		if tab.cursor > len(model.rows)-1 {
			tab.cursor = len(model.rows) - 1
		}
		if tab.cursor < 0 {
			tab.cursor = 0
		}
	case key.Matches(message, model.keys.Home):
		tab.cursor = 0
	case key.Matches(message, model.keys.End):
		tab.cursor = len(model.rows) - 1
		if tab.cursor < 0 {
			tab.cursor = 0
		}
	default:
		return
	}

	if len(model.rows) > 0 {
		tab.selectedID = model.rows[tab.cursor].ID
	}
	model.ensureCursorVisible()
}

func (model *Model) ensureCursorVisible() {
	tab := model.tab()
	visible := model.tableHeight()
	if visible < 1 {
		return
	}
	if tab.cursor < tab.scrollOffset {
		tab.scrollOffset = tab.cursor
	}
	if tab.cursor >= tab.scrollOffset+visible {
		tab.scrollOffset = tab.cursor - visible + 1
	}
	if tab.scrollOffset < 0 {
		tab.scrollOffset = 0
	}
}

func (model Model) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	tab := model.tab()
	switch message.Type {
	case tea.KeyEscape:
		tab.filter.Clear()
		model.focusRegion = FocusTable
		model.rebuildRows()
		model.restoreSelection()

	case tea.KeyEnter:
		// Keep the filter text, return focus to the table.
		tab.filter.Active = false
		model.focusRegion = FocusTable

	case tea.KeyBackspace:
		if tab.filter.HandleBackspace() {
			model.rebuildRows()
			tab.cursor = 0
			tab.scrollOffset = 0
		}

	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			tab.filter.HandleRune(character)
		}
		model.rebuildRows()
		tab.cursor = 0
		tab.scrollOffset = 0
	}
	if len(model.rows) > 0 && tab.cursor < len(model.rows) {
		tab.selectedID = model.rows[tab.cursor].ID
	}
	return model, nil
}

func (model Model) handleFormKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := model.form

	// Esc closes an open picker list before it cancels the form.
	if message.Type == tea.KeyEscape {
		if form.OpenPicker() {
			form.Fields[form.Focus].Picker.Open = false
			return model, nil
		}
		model.form = nil
		model.focusRegion = FocusTable
		return model, nil
	}

	switch {
	case key.Matches(message, model.keys.Submit):
		payload := form.Submit(time.Now())
		if payload == nil {
			return model, nil
		}
		kind := form.Kind
		model.form = nil
		model.focusRegion = FocusTable
		return model, createRecord(context.Background(), model.backend, kind, payload)

	case key.Matches(message, model.keys.NextField) && !form.OpenPicker():
		form.NextField()
		return model, nil

	case key.Matches(message, model.keys.PrevField) && !form.OpenPicker():
		form.PrevField()
		return model, nil
	}

	return model, form.Update(message)
}

func (model Model) handleConfirmKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.String() {
	case "y", "enter":
		kind := model.confirmKind
		id := model.confirmID
		model.focusRegion = FocusTable
		model.confirmID = 0
		return model, deleteRecord(context.Background(), model.backend, kind, id)
	case "n", "esc", "q":
		model.focusRegion = FocusTable
		model.confirmID = 0
	}
	return model, nil
}

func (model Model) handleRefreshResult(message refreshResultMsg) (tea.Model, tea.Cmd) {
	model.refreshInFlight = false
	model.lastRefresh = time.Now()

	replaced := model.store.Apply(message.result)
	model.staleKinds = message.result.FailedKinds()

	var cmd tea.Cmd
	if message.result.AllFailed() {
		model.logger.Warn("refresh cycle failed for all collections")
		cmd = model.notices.Push(NoticeError,
			"server unreachable, showing last known data")
	}

	if len(replaced) > 0 {
		if model.form != nil {
			model.form.SyncPickers(model.store.Rooms(),
				model.store.Patients(), model.store.Users())
		}
		model.rebuildRows()
		model.restoreSelection()
	}
	return model, cmd
}

func (model Model) handleMutationResult(message mutationResultMsg) (tea.Model, tea.Cmd) {
	if message.err != nil {
		model.logger.Warn("mutation failed",
			"kind", string(message.kind),
			"verb", message.verb,
			"error", message.err)
		return model, model.notices.Push(NoticeError, message.err.Error())
	}

	verbed := message.verb + "d" // create -> created, delete -> deleted
	notice := model.notices.Push(NoticeSuccess, message.kind.Singular()+" "+verbed)

	// Refresh immediately so the mutation's effect is visible without
	// waiting out the poll interval.
	commands := []tea.Cmd{notice}
	if !model.refreshInFlight {
		model.refreshInFlight = true
		commands = append(commands, fetchAll(context.Background(), model.backend))
	}
	return model, tea.Batch(commands...)
}
