// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinicclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/clinicboard/clinicboard/lib/clinic"
	"github.com/clinicboard/clinicboard/lib/netutil"
)

// DefaultRequestTimeout bounds each individual API request when the
// config does not override it.
const DefaultRequestTimeout = 10 * time.Second

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the root of the scheduling API (e.g. "http://localhost:8000").
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// RequestTimeout bounds each request. If zero, DefaultRequestTimeout is used.
	RequestTimeout time.Duration
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client is a scheduling API client. It is safe for concurrent use;
// the four per-cycle list fetches run in parallel on one Client.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	requestTimeout time.Duration
	logger         *slog.Logger
}

// New creates a Client for the scheduling API at config.BaseURL.
func New(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("clinicclient: BaseURL is required")
	}
	parsed, err := url.Parse(config.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("clinicclient: invalid BaseURL %q", config.BaseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	requestTimeout := config.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:        strings.TrimRight(config.BaseURL, "/"),
		httpClient:     httpClient,
		requestTimeout: requestTimeout,
		logger:         logger,
	}, nil
}

// RefreshResult is the outcome of one refresh cycle: a collection and
// a success flag per resource kind. A false flag means that kind's
// fetch failed or timed out this cycle and the caller should keep its
// prior snapshot.
type RefreshResult struct {
	Appointments   []clinic.Appointment
	AppointmentsOK bool

	Patients   []clinic.Patient
	PatientsOK bool

	Rooms   []clinic.Room
	RoomsOK bool

	Users   []clinic.User
	UsersOK bool
}

// FailedKinds returns how many of the four fetches failed.
func (result RefreshResult) FailedKinds() int {
	failed := 0
	for _, ok := range []bool{result.AppointmentsOK, result.PatientsOK, result.RoomsOK, result.UsersOK} {
		if !ok {
			failed++
		}
	}
	return failed
}

// AllFailed reports whether every fetch in the cycle failed.
func (result RefreshResult) AllFailed() bool {
	return result.FailedKinds() == len(clinic.AllKinds)
}

// FetchAll runs the four list fetches concurrently and returns once
// all of them have resolved. Each fetch succeeds or degrades
// independently; a timeout on one does not cancel its siblings.
func (client *Client) FetchAll(ctx context.Context) RefreshResult {
	var result RefreshResult
	var group sync.WaitGroup
	group.Add(4)

	go func() {
		defer group.Done()
		result.Appointments, result.AppointmentsOK = ListAppointments(ctx, client)
	}()
	go func() {
		defer group.Done()
		result.Patients, result.PatientsOK = ListPatients(ctx, client)
	}()
	go func() {
		defer group.Done()
		result.Rooms, result.RoomsOK = ListRooms(ctx, client)
	}()
	go func() {
		defer group.Done()
		result.Users, result.UsersOK = ListUsers(ctx, client)
	}()

	group.Wait()
	return result
}

// ListAppointments fetches the appointments collection.
func ListAppointments(ctx context.Context, client *Client) ([]clinic.Appointment, bool) {
	return listResource[clinic.Appointment](ctx, client, clinic.KindAppointments)
}

// ListPatients fetches the patients collection.
func ListPatients(ctx context.Context, client *Client) ([]clinic.Patient, bool) {
	return listResource[clinic.Patient](ctx, client, clinic.KindPatients)
}

// ListRooms fetches the rooms collection.
func ListRooms(ctx context.Context, client *Client) ([]clinic.Room, bool) {
	return listResource[clinic.Room](ctx, client, clinic.KindRooms)
}

// ListUsers fetches the users collection.
func ListUsers(ctx context.Context, client *Client) ([]clinic.User, bool) {
	return listResource[clinic.User](ctx, client, clinic.KindUsers)
}

// listResource fetches one collection. It never returns an error: any
// transport failure, timeout, or non-2xx response logs a warning and
// yields (nil, false). A 2xx response with an unrecognized body shape
// normalizes to an empty collection with success — the server answered,
// it just had nothing usable — so the snapshot replacement semantics
// match an explicitly empty list.
func listResource[T any](ctx context.Context, client *Client, kind clinic.Kind) ([]T, bool) {
	ctx, cancel := context.WithTimeout(ctx, client.requestTimeout)
	defer cancel()

	started := time.Now()
	body, err := client.doRequest(ctx, http.MethodGet, "/api/"+string(kind), nil)
	if err != nil {
		client.logger.Warn("list fetch failed",
			"kind", kind,
			"elapsed", time.Since(started),
			"error", err,
		)
		return nil, false
	}

	items, recognized := normalizeCollection(body)
	if !recognized {
		client.logger.Warn("unexpected collection shape, treating as empty",
			"kind", kind,
			"body_prefix", bodyPrefix(body),
		)
		return nil, true
	}

	var collection []T
	if err := json.Unmarshal(items, &collection); err != nil {
		client.logger.Warn("collection decode failed, treating as empty",
			"kind", kind,
			"error", err,
		)
		return nil, true
	}

	client.logger.Debug("list fetch complete",
		"kind", kind,
		"count", len(collection),
		"elapsed", time.Since(started),
	)
	return collection, true
}

// normalizeCollection extracts the element array from a list response
// body: either a bare JSON array, or a wrapper object with an "items"
// array. Anything else is unrecognized.
func normalizeCollection(body []byte) (items json.RawMessage, recognized bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return trimmed, true
	}

	var wrapper struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, false
	}
	inner := bytes.TrimSpace(wrapper.Items)
	if len(inner) > 0 && inner[0] == '[' {
		return inner, true
	}
	return nil, false
}

// Create posts a new record of the given kind. The payload is one of
// the clinic.*Create types. Structured API failures return *APIError.
func (client *Client) Create(ctx context.Context, kind clinic.Kind, payload any) error {
	ctx, cancel := context.WithTimeout(ctx, client.requestTimeout)
	defer cancel()

	_, err := client.doRequest(ctx, http.MethodPost, "/api/"+string(kind), payload)
	if err != nil {
		return fmt.Errorf("clinicclient: create %s: %w", kind.Singular(), err)
	}
	return nil
}

// Delete removes the record with the given id. Structured API
// failures return *APIError.
func (client *Client) Delete(ctx context.Context, kind clinic.Kind, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, client.requestTimeout)
	defer cancel()

	_, err := client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/%s/%d", kind, id), nil)
	if err != nil {
		return fmt.Errorf("clinicclient: delete %s: %w", kind.Singular(), err)
	}
	return nil
}

// doRequest performs one HTTP exchange against the API. 2xx responses
// return the body; anything else returns an *APIError carrying the
// parsed error shape (or the raw body when the shape is not JSON).
func (client *Client) doRequest(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	requestURL := client.baseURL + path

	var bodyReader *bytes.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	var request *http.Request
	var err error
	if bodyReader != nil {
		request, err = http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	} else {
		request, err = http.NewRequestWithContext(ctx, method, requestURL, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}
	return nil, parseAPIError(response.StatusCode, responseBody)
}

// bodyPrefix returns the start of a response body for log records,
// bounded so a large body never floods the log file.
func bodyPrefix(body []byte) string {
	const limit = 128
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) <= limit {
		return string(trimmed)
	}
	return string(trimmed[:limit]) + "…"
}
