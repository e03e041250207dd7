// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinicui

import (
	"sync"

	"github.com/clinicboard/clinicboard/lib/clinic"
	"github.com/clinicboard/clinicboard/lib/clinicclient"
)

// Store holds the latest successfully fetched copy of each collection.
// A refresh replaces a collection only when its fetch succeeded: a
// failed fetch leaves the previous snapshot in place, so the dashboard
// keeps rendering stale-but-real data instead of blanking out.
//
// The store is safe for concurrent use. Refreshes land on the bubbletea
// update goroutine, but tests and future background consumers read in
// parallel.
type Store struct {
	mu sync.RWMutex

	appointments []clinic.Appointment
	patients     []clinic.Patient
	rooms        []clinic.Room
	users        []clinic.User

	// generation counts successful replacements per kind, so callers
	// can cheaply detect "did this collection change since I last
	// rebuilt derived state" without diffing slices.
	generation map[clinic.Kind]uint64
}

// NewStore returns an empty store. All collections start nil and at
// generation zero.
func NewStore() *Store {
	return &Store{
		generation: make(map[clinic.Kind]uint64, len(clinic.AllKinds)),
	}
}

// Apply replaces each collection whose fetch succeeded and leaves the
// rest untouched. Returns the kinds that were replaced.
func (store *Store) Apply(result clinicclient.RefreshResult) []clinic.Kind {
	store.mu.Lock()
	defer store.mu.Unlock()

	var replaced []clinic.Kind
	if result.AppointmentsOK {
		store.appointments = result.Appointments
		store.generation[clinic.KindAppointments]++
		replaced = append(replaced, clinic.KindAppointments)
	}
	if result.PatientsOK {
		store.patients = result.Patients
		store.generation[clinic.KindPatients]++
		replaced = append(replaced, clinic.KindPatients)
	}
	if result.RoomsOK {
		store.rooms = result.Rooms
		store.generation[clinic.KindRooms]++
		replaced = append(replaced, clinic.KindRooms)
	}
	if result.UsersOK {
		store.users = result.Users
		store.generation[clinic.KindUsers]++
		replaced = append(replaced, clinic.KindUsers)
	}
	return replaced
}

// Appointments returns the current appointment snapshot in server
// order. The returned slice is shared; callers must not mutate it.
func (store *Store) Appointments() []clinic.Appointment {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.appointments
}

// Patients returns the current patient snapshot in server order.
func (store *Store) Patients() []clinic.Patient {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.patients
}

// Rooms returns the current room snapshot in server order.
func (store *Store) Rooms() []clinic.Room {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.rooms
}

// Users returns the current user snapshot in server order.
func (store *Store) Users() []clinic.User {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.users
}

// Count returns the number of records currently held for a kind.
func (store *Store) Count(kind clinic.Kind) int {
	store.mu.RLock()
	defer store.mu.RUnlock()
	switch kind {
	case clinic.KindAppointments:
		return len(store.appointments)
	case clinic.KindPatients:
		return len(store.patients)
	case clinic.KindRooms:
		return len(store.rooms)
	case clinic.KindUsers:
		return len(store.users)
	}
	return 0
}

// Generation returns the replacement counter for a kind. It starts at
// zero and increments on every successful refresh of that kind.
func (store *Store) Generation(kind clinic.Kind) uint64 {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.generation[kind]
}
