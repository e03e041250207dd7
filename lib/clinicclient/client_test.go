// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinicclient

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// newTestClient creates a Client against the given test server with a
// short request budget so timeout tests stay fast.
func newTestClient(t *testing.T, server *httptest.Server, timeout time.Duration) *Client {
	t.Helper()
	client, err := New(ClientConfig{
		BaseURL:        server.URL,
		RequestTimeout: timeout,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	return client
}

func TestListBareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/rooms" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"id":1,"name":"A","capacity":2}]`))
	}))
	defer server.Close()

	rooms, ok := ListRooms(context.Background(), newTestClient(t, server, time.Second))
	if !ok {
		t.Fatal("expected success")
	}
	if len(rooms) != 1 || rooms[0].Name != "A" {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}
}

func TestListItemsWrapperMatchesBareArray(t *testing.T) {
	const elements = `[{"id":1,"name":"A","capacity":2},{"id":2,"name":"B","capacity":4}]`

	for _, body := range []string{elements, `{"items":` + elements + `}`} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		rooms, ok := ListRooms(context.Background(), newTestClient(t, server, time.Second))
		server.Close()

		if !ok {
			t.Fatalf("body %s: expected success", body)
		}
		if len(rooms) != 2 || rooms[0].ID != 1 || rooms[1].Name != "B" {
			t.Fatalf("body %s: unexpected rooms %+v", body, rooms)
		}
	}
}

func TestListUnrecognizedShapeNormalizesToEmpty(t *testing.T) {
	for _, body := range []string{`{"count":3}`, `"surprise"`, `42`, `not json at all`} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		rooms, ok := ListRooms(context.Background(), newTestClient(t, server, time.Second))
		server.Close()

		if !ok {
			t.Fatalf("body %q: a 2xx response should count as a resolved fetch", body)
		}
		if len(rooms) != 0 {
			t.Fatalf("body %q: expected empty collection, got %+v", body, rooms)
		}
	}
}

func TestListServerErrorFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	patients, ok := ListPatients(context.Background(), newTestClient(t, server, time.Second))
	if ok {
		t.Fatal("expected failure flag on 500")
	}
	if len(patients) != 0 {
		t.Fatalf("expected empty collection, got %+v", patients)
	}
}

func TestListTimeoutResolvesEmpty(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	started := time.Now()
	appointments, ok := ListAppointments(context.Background(), newTestClient(t, server, 50*time.Millisecond))
	if ok {
		t.Fatal("expected failure flag on timeout")
	}
	if len(appointments) != 0 {
		t.Fatalf("expected empty collection, got %+v", appointments)
	}
	if elapsed := time.Since(started); elapsed > 2*time.Second {
		t.Fatalf("timeout did not bound the call: took %s", elapsed)
	}
}

func TestFetchAllIsolatesFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/rooms":
			w.Write([]byte(`[{"id":1,"name":"A","capacity":2}]`))
		case "/api/patients":
			w.Write([]byte(`[]`))
		case "/api/users":
			w.Write([]byte(`{"items":[{"id":7,"name":"Dana","email":"dana@clinic.test","role":"professor"}]}`))
		default:
			http.Error(w, "unavailable", http.StatusBadGateway)
		}
	}))
	defer server.Close()

	result := newTestClient(t, server, time.Second).FetchAll(context.Background())

	if result.AppointmentsOK {
		t.Error("appointments should have failed")
	}
	if !result.RoomsOK || len(result.Rooms) != 1 {
		t.Errorf("rooms: ok=%v rooms=%+v", result.RoomsOK, result.Rooms)
	}
	if !result.PatientsOK || len(result.Patients) != 0 {
		t.Errorf("patients: ok=%v patients=%+v", result.PatientsOK, result.Patients)
	}
	if !result.UsersOK || len(result.Users) != 1 || result.Users[0].Role != "professor" {
		t.Errorf("users: ok=%v users=%+v", result.UsersOK, result.Users)
	}
	if result.FailedKinds() != 1 {
		t.Errorf("expected 1 failed kind, got %d", result.FailedKinds())
	}
	if result.AllFailed() {
		t.Error("AllFailed should be false with three successes")
	}
}

func TestDeleteNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/rooms/9" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"not found"}`))
	}))
	defer server.Close()

	err := newTestClient(t, server, time.Second).Delete(context.Background(), "rooms", 9)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("error %q should contain the detail string", err)
	}

	var apiError *APIError
	if !errors.As(err, &apiError) {
		t.Fatalf("expected *APIError in chain, got %T", err)
	}
	if apiError.StatusCode != http.StatusNotFound {
		t.Fatalf("status: got %d", apiError.StatusCode)
	}
}

func TestCreateValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"loc":["body","password"],"msg":"ensure this value has at least 8 characters"}]}`))
	}))
	defer server.Close()

	err := newTestClient(t, server, time.Second).Create(context.Background(), "users", map[string]string{"name": "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "password: ensure this value has at least 8 characters") {
		t.Fatalf("error %q should contain the field-level issue", err)
	}
}

func TestCreateSendsJSONBody(t *testing.T) {
	var received string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		if contentType := r.Header.Get("Content-Type"); contentType != "application/json" {
			t.Errorf("content type: got %q", contentType)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1}`))
	}))
	defer server.Close()

	err := newTestClient(t, server, time.Second).Create(context.Background(), "rooms", map[string]any{"name": "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(received, `"name":"A"`) {
		t.Fatalf("request body %q missing payload", received)
	}
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	for _, baseURL := range []string{"", "localhost:8000", "://nope"} {
		if _, err := New(ClientConfig{BaseURL: baseURL}); err == nil {
			t.Errorf("BaseURL %q: expected error", baseURL)
		}
	}
}
