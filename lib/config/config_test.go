// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("expected base_url=http://localhost:8000, got %s", cfg.API.BaseURL)
	}
	if cfg.RequestTimeout() != 10*time.Second {
		t.Errorf("expected 10s request timeout, got %s", cfg.RequestTimeout())
	}
	if cfg.PollInterval() != 10*time.Second {
		t.Errorf("expected 10s poll interval, got %s", cfg.PollInterval())
	}
}

func TestLoad_DefaultsWithoutEnv(t *testing.T) {
	origConfig := os.Getenv("CLINICBOARD_CONFIG")
	defer os.Setenv("CLINICBOARD_CONFIG", origConfig)
	os.Unsetenv("CLINICBOARD_CONFIG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != Default().API.BaseURL {
		t.Errorf("expected defaults, got base_url=%s", cfg.API.BaseURL)
	}
}

func TestLoadFile_MergesOverDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "clinicboard.yaml")

	configContent := `
api:
  base_url: "https://clinic.example.org"
  request_timeout_seconds: 5
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "https://clinic.example.org" {
		t.Errorf("base_url: got %s", cfg.API.BaseURL)
	}
	if cfg.RequestTimeout() != 5*time.Second {
		t.Errorf("request timeout: got %s", cfg.RequestTimeout())
	}
	// Unset fields keep their defaults.
	if cfg.PollInterval() != 10*time.Second {
		t.Errorf("poll interval should default to 10s, got %s", cfg.PollInterval())
	}
}

func TestLoadFile_RejectsBadValues(t *testing.T) {
	tmpDir := t.TempDir()

	cases := []struct {
		name    string
		content string
	}{
		{"relative base URL", "api:\n  base_url: \"localhost:8000\"\n"},
		{"zero timeout", "api:\n  request_timeout_seconds: 0\n"},
		{"negative poll interval", "poll:\n  interval_seconds: -1\n"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			configPath := filepath.Join(tmpDir, "bad.yaml")
			if err := os.WriteFile(configPath, []byte(testCase.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(configPath); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile("/nonexistent/clinicboard.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
