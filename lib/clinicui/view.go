// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinicui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/clinicboard/clinicboard/lib/clinic"
)

// Chrome rows outside the table body: top bar (tabs or filter),
// column header, status bar.
const chromeRows = 3

// tableHeight returns the number of body rows the table can show.
func (model Model) tableHeight() int {
	if !model.ready {
		return 20
	}
	height := model.height - chromeRows - len(model.notices.Notices())
	if height < 1 {
		height = 1
	}
	return height
}

func (model Model) View() string {
	if !model.ready {
		return "loading..."
	}

	var sections []string
	sections = append(sections, model.viewTopBar())

	if model.form != nil && model.focusRegion == FocusForm {
		sections = append(sections, model.form.View(model.theme, model.width))
	} else {
		sections = append(sections, model.viewHeader())
		sections = append(sections, model.viewRows())
	}

	if notices := model.notices.View(model.theme, model.width); notices != "" {
		sections = append(sections, notices)
	}
	sections = append(sections, model.viewStatusBar())

	return strings.Join(sections, "\n")
}

// viewTopBar renders the tab bar, or the filter bar when a filter is
// active or has text. The filter replaces the tab bar rather than
// pushing content down.
func (model Model) viewTopBar() string {
	tab := model.tabs[model.activeTab]
	if filterView := tab.filter.View(model.theme, model.width); filterView != "" {
		return filterView
	}

	activeStyle := lipgloss.NewStyle().
		Foreground(model.theme.SelectedForeground).
		Background(model.theme.SelectedBackground).
		Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	var parts []string
	for index, kind := range clinic.AllKinds {
		label := fmt.Sprintf(" %d:%s (%d) ", index+1, kind.Label(), model.store.Count(kind))
		if kind == model.activeTab {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// columnWidths distributes the terminal width across the active tab's
// columns proportionally to their weights.
func (model Model) columnWidths() ([]Column, []int) {
	columns := Columns(model.activeTab)
	available := model.width - 2 - 2*(len(columns)-1)
	if available < len(columns)*4 {
		available = len(columns) * 4
	}
	totalWeight := 0
	for _, column := range columns {
		totalWeight += column.Weight
	}
	widths := make([]int, len(columns))
	used := 0
	for index, column := range columns {
		width := available * column.Weight / totalWeight
		if width < 4 {
			width = 4
		}
		widths[index] = width
		used += width
	}
	// Hand leftover space to the widest column.
	if leftover := available - used; leftover > 0 {
		widest := 0
		for index := range widths {
			if widths[index] > widths[widest] {
				widest = index
			}
		}
		widths[widest] += leftover
	}
	return columns, widths
}

func (model Model) viewHeader() string {
	columns, widths := model.columnWidths()
	style := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true)

	cells := make([]string, len(columns))
	for index, column := range columns {
		cells[index] = fitCell(column.Title, widths[index])
	}
	return style.Render(" " + strings.Join(cells, "  "))
}

func (model Model) viewRows() string {
	tab := model.tabs[model.activeTab]
	_, widths := model.columnWidths()
	height := model.tableHeight()

	if len(model.rows) == 0 {
		message := "no " + string(model.activeTab) + " found"
		if tab.filter.Input != "" {
			message = "no matches"
		}
		empty := lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render(" " + message)
		return empty + strings.Repeat("\n", max(height-1, 0))
	}

	selectedStyle := lipgloss.NewStyle().
		Background(model.theme.SelectedBackground).
		Foreground(model.theme.SelectedForeground)

	var lines []string
	end := tab.scrollOffset + height
	if end > len(model.rows) {
		end = len(model.rows)
	}
	for rowIndex := tab.scrollOffset; rowIndex < end; rowIndex++ {
		row := model.rows[rowIndex]
		cells := make([]string, len(row.Cells))
		for cellIndex, cell := range row.Cells {
			width := 4
			if cellIndex < len(widths) {
				width = widths[cellIndex]
			}
			cells[cellIndex] = fitCell(cell, width)
		}
		line := " " + strings.Join(cells, "  ")

		if rowIndex == tab.cursor && model.focusRegion != FocusForm {
			if pad := model.width - ansi.StringWidth(line); pad > 0 {
				line += strings.Repeat(" ", pad)
			}
			lines = append(lines, selectedStyle.Render(line))
			continue
		}

		style := lipgloss.NewStyle().
			Foreground(model.theme.SeverityColor(row.Severity))
		if row.Severity == clinic.SeverityNeutral {
			style = lipgloss.NewStyle().Foreground(model.theme.NormalText)
		}
		lines = append(lines, style.Render(line))
	}

	// Pad short lists so the status bar stays pinned to the bottom.
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (model Model) viewStatusBar() string {
	if model.focusRegion == FocusConfirm {
		prompt := fmt.Sprintf(" delete this %s? (y/n)", model.confirmKind.Singular())
		return lipgloss.NewStyle().
			Foreground(model.theme.SeverityColor(clinic.SeverityWarning)).
			Bold(true).
			Render(prompt)
	}

	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	var left string
	switch {
	case model.refreshInFlight:
		left = " refreshing..."
	case model.staleKinds > 0:
		left = fmt.Sprintf(" %d stale", model.staleKinds)
	case !model.lastRefresh.IsZero():
		left = " updated " + model.lastRefresh.Format("15:04:05")
	default:
		left = " connecting..."
	}

	help := "/: filter · n: new · d: delete · r: refresh · q: quit "
	gap := model.width - ansi.StringWidth(left) - ansi.StringWidth(help)
	if gap < 1 {
		gap = 1
	}

	leftStyle := helpStyle
	if model.staleKinds > 0 && !model.refreshInFlight {
		leftStyle = lipgloss.NewStyle().
			Foreground(model.theme.SeverityColor(clinic.SeverityWarning))
	}
	return leftStyle.Render(left) + strings.Repeat(" ", gap) + helpStyle.Render(help)
}

// fitCell pads or truncates a cell to an exact display width,
// appending an ellipsis on truncation.
func fitCell(value string, width int) string {
	if width < 1 {
		return ""
	}
	cellWidth := ansi.StringWidth(value)
	if cellWidth == width {
		return value
	}
	if cellWidth < width {
		return value + strings.Repeat(" ", width-cellWidth)
	}
	truncated := ansi.Truncate(value, width-1, "")
	return truncated + "…"
}
