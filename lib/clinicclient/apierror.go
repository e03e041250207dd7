// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinicclient

import (
	"encoding/json"
	"strings"
)

// FieldIssue is one entry of a field-level validation error array, as
// served by the API for 422 responses: {"detail": [{"loc": ["body",
// "password"], "msg": "..."}]}. Some deployments emit {"field": ...,
// "message": ...} instead; both decode into this type.
type FieldIssue struct {
	Field   string
	Message string
}

// APIError is a non-2xx response from the scheduling API. Error()
// derives the user-facing message by fixed precedence: field issues,
// then the detail string, then the message string, then the raw body.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Issues holds field-level validation problems when the detail
	// field was an array.
	Issues []FieldIssue

	// Detail is the detail field when it was a plain string.
	Detail string

	// Message is the top-level message field, when present.
	Message string

	// Raw is the response body, kept for the fallback rendering and
	// for diagnostics.
	Raw string
}

// Error implements the error interface with the message-precedence
// rule. Field issues render as "field: message" joined by "; ".
func (apiError *APIError) Error() string {
	if len(apiError.Issues) > 0 {
		parts := make([]string, 0, len(apiError.Issues))
		for _, issue := range apiError.Issues {
			if issue.Field != "" {
				parts = append(parts, issue.Field+": "+issue.Message)
			} else {
				parts = append(parts, issue.Message)
			}
		}
		return strings.Join(parts, "; ")
	}
	if apiError.Detail != "" {
		return apiError.Detail
	}
	if apiError.Message != "" {
		return apiError.Message
	}
	return apiError.Raw
}

// rawIssue is the wire shape of one validation issue. FastAPI-style
// entries carry loc/msg; others carry field/message.
type rawIssue struct {
	Loc     []json.RawMessage `json:"loc"`
	Msg     string            `json:"msg"`
	Field   string            `json:"field"`
	Message string            `json:"message"`
}

// parseAPIError builds an *APIError from an error response body. The
// body may be any of the recognized shapes or not JSON at all; the
// raw text is always preserved.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{
		StatusCode: statusCode,
		Raw:        strings.TrimSpace(string(body)),
	}

	var envelope struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apiError
	}
	apiError.Message = envelope.Message

	detail := strings.TrimSpace(string(envelope.Detail))
	switch {
	case strings.HasPrefix(detail, "["):
		var entries []rawIssue
		if err := json.Unmarshal(envelope.Detail, &entries); err != nil {
			return apiError
		}
		for _, entry := range entries {
			apiError.Issues = append(apiError.Issues, FieldIssue{
				Field:   issueField(entry),
				Message: issueMessage(entry),
			})
		}
	case strings.HasPrefix(detail, `"`):
		var detailString string
		if err := json.Unmarshal(envelope.Detail, &detailString); err == nil {
			apiError.Detail = detailString
		}
	}
	return apiError
}

// issueField extracts the offending field name from a validation
// issue: the explicit field key when present, otherwise the last
// string element of the loc path (skipping the leading "body").
func issueField(entry rawIssue) string {
	if entry.Field != "" {
		return entry.Field
	}
	for index := len(entry.Loc) - 1; index >= 0; index-- {
		var element string
		if err := json.Unmarshal(entry.Loc[index], &element); err == nil && element != "body" {
			return element
		}
	}
	return ""
}

// issueMessage extracts the human-readable message from a validation
// issue, preferring the FastAPI msg key.
func issueMessage(entry rawIssue) string {
	if entry.Msg != "" {
		return entry.Msg
	}
	return entry.Message
}
