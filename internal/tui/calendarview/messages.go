// ============================================================================
// kalender - Calendar and clock arithmetic
// ============================================================================
//
// Package:     calendarview
// Description: Message types for the calendar TUI
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package calendarview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg refreshes the clock in the header
type tickMsg time.Time

// tick schedules the next clock refresh
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
