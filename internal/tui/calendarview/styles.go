// ============================================================================
// kalender - Calendar and clock arithmetic
// ============================================================================
//
// Package:     calendarview
// Description: Styles for the calendar TUI and the styled month output
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package calendarview

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray

	ColorBgPanel    = lipgloss.Color("#1E293B") // Slate 800
	ColorBgSelected = lipgloss.Color("#3B0764") // Purple 950

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Header styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	ClockStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	WeekdayHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)
)

// Day cell styles
var (
	DayStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	WeekendStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	OutsideMonthStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)

	ReferenceStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Underline(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorBgSelected).
			Bold(true)
)

// Panel styles
var (
	SheetPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorBgPanel).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
