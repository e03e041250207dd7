// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinic

import (
	"fmt"
	"strings"
	"time"
)

// Time wraps time.Time with JSON decoding tolerant of the timestamp
// formats the scheduling API actually emits: RFC 3339 with an offset,
// naive ISO 8601 without one, and bare dates (birthdate fields). A
// null or empty value decodes to the zero time rather than an error —
// absent timestamps render as a placeholder, they do not fail the
// whole collection decode.
type Time struct {
	time.Time
}

// timestampLayouts are tried in order when decoding. Naive layouts
// (no offset) are interpreted in the local timezone, matching how the
// dashboard displays them.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("clinic: unrecognized timestamp %q", value)
}

// MarshalJSON implements json.Marshaler. The zero time encodes as
// null; everything else as RFC 3339.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// At wraps a time.Time.
func At(value time.Time) Time {
	return Time{Time: value}
}
