// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

package clinicui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clinicboard/clinicboard/lib/clinic"
)

// noticeLifetime is how long a notice stays visible before it expires
// on its own. Manual dismissal can remove it earlier.
const noticeLifetime = 7 * time.Second

// NoticeLevel is the severity class of a notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeSuccess
	NoticeError
)

// Notice is one transient status line. Notices stack in arrival order
// and each carries its own expiry timer.
type Notice struct {
	ID    uint64
	Level NoticeLevel
	Text  string
}

// noticeExpiredMsg fires when a notice's lifetime elapses. The ID
// guards against expiring a newer notice after the original was
// manually dismissed.
type noticeExpiredMsg struct {
	id uint64
}

// NoticeArea holds the currently visible notices.
type NoticeArea struct {
	notices []Notice
	nextID  uint64
}

// Push adds a notice and returns the command that expires it after
// noticeLifetime.
func (area *NoticeArea) Push(level NoticeLevel, text string) tea.Cmd {
	area.nextID++
	id := area.nextID
	area.notices = append(area.notices, Notice{ID: id, Level: level, Text: text})
	return tea.Tick(noticeLifetime, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

// Expire removes the notice with the given ID, if it is still
// visible.
func (area *NoticeArea) Expire(id uint64) {
	for index, notice := range area.notices {
		if notice.ID == id {
			area.notices = append(area.notices[:index], area.notices[index+1:]...)
			return
		}
	}
}

// DismissOldest removes the oldest visible notice. Returns false when
// there was nothing to dismiss.
func (area *NoticeArea) DismissOldest() bool {
	if len(area.notices) == 0 {
		return false
	}
	area.notices = area.notices[1:]
	return true
}

// Notices returns the visible notices in arrival order.
func (area *NoticeArea) Notices() []Notice {
	return area.notices
}

func (level NoticeLevel) severity() clinic.Severity {
	switch level {
	case NoticeSuccess:
		return clinic.SeveritySuccess
	case NoticeError:
		return clinic.SeverityDanger
	}
	return clinic.SeverityInfo
}

func (level NoticeLevel) symbol() string {
	switch level {
	case NoticeSuccess:
		return "✓"
	case NoticeError:
		return "✗"
	}
	return "•"
}

// View renders the notice stack, one line per notice. Empty string
// when nothing is visible.
func (area *NoticeArea) View(theme Theme, width int) string {
	if len(area.notices) == 0 {
		return ""
	}
	var lines []string
	for _, notice := range area.notices {
		style := lipgloss.NewStyle().
			Foreground(theme.SeverityColor(notice.Level.severity())).
			Width(width)
		lines = append(lines, style.Render(" "+notice.Level.symbol()+" "+notice.Text))
	}
	return strings.Join(lines, "\n")
}
