// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinicui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/clinicboard/clinicboard/lib/clinic"
)

func TestLoadThemeAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.jsonc")
	content := `{
		// Brighter danger color for the status column.
		"severity_colors": ["", "", "", "", "201"],
		"normal_text": "231", // trailing comma below is fine
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if theme.NormalText != lipgloss.Color("231") {
		t.Errorf("normal_text override not applied: %v", theme.NormalText)
	}
	if theme.SeverityColor(clinic.SeverityDanger) != lipgloss.Color("201") {
		t.Errorf("danger override not applied: %v", theme.SeverityColor(clinic.SeverityDanger))
	}
	// Unset entries keep their defaults.
	if theme.SeverityColor(clinic.SeveritySuccess) != DefaultTheme.SeverityColors[clinic.SeveritySuccess] {
		t.Error("unset severity color should keep the default")
	}
	if theme.HelpText != DefaultTheme.HelpText {
		t.Error("unset field should keep the default")
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	if _, err := LoadTheme(filepath.Join(t.TempDir(), "absent.jsonc")); err == nil {
		t.Error("expected an error for a missing theme file")
	}
}

func TestLoadThemeRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.jsonc")
	if err := os.WriteFile(path, []byte(`{"normal_text": [}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTheme(path); err == nil {
		t.Error("expected a parse error")
	}
}
