// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinicui

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/jsonc"

	"github.com/clinicboard/clinicboard/lib/clinic"
)

// Theme defines the color palette for the dashboard. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Severity colors for status cells and notices, indexed by
	// clinic.Severity (neutral, info, success, warning, danger).
	SeverityColors [5]lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Placeholder glyphs: missing related names, empty tables.
	PlaceholderText lipgloss.Color
}

// SeverityColor returns the color for a severity class. Out-of-range
// values return NormalText.
func (theme Theme) SeverityColor(severity clinic.Severity) lipgloss.Color {
	if severity < 0 || int(severity) >= len(theme.SeverityColors) {
		return theme.NormalText
	}
	return theme.SeverityColors[severity]
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	SeverityColors: [5]lipgloss.Color{
		lipgloss.Color("245"), // neutral: gray
		lipgloss.Color("75"),  // info: blue
		lipgloss.Color("114"), // success: green
		lipgloss.Color("220"), // warning: amber
		lipgloss.Color("196"), // danger: red
	},

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	PlaceholderText: lipgloss.Color("240"),
}

// themeFile is the JSONC override file shape. Every field is optional;
// set fields replace the corresponding DefaultTheme entry. Comments
// and trailing commas are allowed in the file.
type themeFile struct {
	NormalText         string   `json:"normal_text"`
	FaintText          string   `json:"faint_text"`
	SelectedBackground string   `json:"selected_background"`
	SelectedForeground string   `json:"selected_foreground"`
	SeverityColors     []string `json:"severity_colors"`
	HeaderForeground   string   `json:"header_foreground"`
	BorderColor        string   `json:"border_color"`
	HelpText           string   `json:"help_text"`
	PlaceholderText    string   `json:"placeholder_text"`
}

// LoadTheme reads a JSONC theme override file and applies it over
// DefaultTheme.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}

	var overrides themeFile
	if err := json.Unmarshal(jsonc.ToJSON(data), &overrides); err != nil {
		return Theme{}, fmt.Errorf("parsing theme %s: %w", path, err)
	}

	theme := DefaultTheme
	applyColor := func(target *lipgloss.Color, value string) {
		if value != "" {
			*target = lipgloss.Color(value)
		}
	}
	applyColor(&theme.NormalText, overrides.NormalText)
	applyColor(&theme.FaintText, overrides.FaintText)
	applyColor(&theme.SelectedBackground, overrides.SelectedBackground)
	applyColor(&theme.SelectedForeground, overrides.SelectedForeground)
	applyColor(&theme.HeaderForeground, overrides.HeaderForeground)
	applyColor(&theme.BorderColor, overrides.BorderColor)
	applyColor(&theme.HelpText, overrides.HelpText)
	applyColor(&theme.PlaceholderText, overrides.PlaceholderText)
	for index, value := range overrides.SeverityColors {
		if index >= len(theme.SeverityColors) {
			break
		}
		applyColor(&theme.SeverityColors[index], value)
	}
	return theme, nil
}
