// ============================================================================
// kalender - Calendar and clock arithmetic
// ============================================================================
//
// Package:     calendarview
// Description: Main Bubbletea model for the interactive calendar
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package calendarview

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/kalender/foundation/utils/datex"
	"github.com/msto63/kalender/foundation/utils/stringx"
	"github.com/msto63/kalender/internal/calendar"
)

// Config holds calendar view configuration
type Config struct {
	// Reference is the day the view opens on; the status line measures from it
	Reference datex.Date

	WeekStart    datex.Weekday
	ShowDayCount bool
	ShowWeekday  bool

	// Now supplies the header clock; defaults to time.Now
	Now func() time.Time
}

// Model is the calendar view state
type Model struct {
	cursor    datex.Date
	reference datex.Date
	sheet     *calendar.Sheet
	weekStart datex.Weekday

	showDayCount bool
	showWeekday  bool

	now   func() time.Time
	clock datex.Timestamp
	err   error

	keys  keyMap
	help  help.Model
	width int
}

// New creates a calendar view positioned on cfg.Reference
func New(cfg Config) Model {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		cursor:       cfg.Reference,
		reference:    cfg.Reference,
		weekStart:    cfg.WeekStart,
		showDayCount: cfg.ShowDayCount,
		showWeekday:  cfg.ShowWeekday,
		now:          now,
		keys:         defaultKeyMap(),
		help:         help.New(),
	}
	m.refreshClock()
	m.rebuildSheet()
	return m
}

// Cursor returns the selected date
func (m Model) Cursor() datex.Date { return m.cursor }

// Err returns the error of the last rejected move, if any
func (m Model) Err() error { return m.err }

// Init starts the header clock
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.refreshClock()
		return m, tick()
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.PrevDay):
		m.moveDays(-1)
	case key.Matches(msg, m.keys.NextDay):
		m.moveDays(1)
	case key.Matches(msg, m.keys.PrevWeek):
		m.moveDays(-calendar.DaysPerWeek)
	case key.Matches(msg, m.keys.NextWeek):
		m.moveDays(calendar.DaysPerWeek)

	case key.Matches(msg, m.keys.PrevMonth):
		m.moveMonths(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.moveMonths(1)

	case key.Matches(msg, m.keys.Reference):
		m.setCursor(m.reference)
	}

	return m, nil
}

// moveDays shifts the cursor; a shift before the epoch is reported, not applied
func (m *Model) moveDays(n int) {
	next := m.cursor
	if err := next.AddDays(n); err != nil {
		m.err = err
		return
	}
	m.setCursor(next)
}

// moveMonths jumps to the first day of the month n months away
func (m *Model) moveMonths(n int) {
	y, mo, _ := m.cursor.YMD()
	idx := y*12 + (mo - 1) + n
	first, err := datex.NewDate(floorDiv(idx, 12), idx-floorDiv(idx, 12)*12+1, 1)
	if err != nil {
		m.err = err
		return
	}
	m.setCursor(first)
}

func (m *Model) setCursor(d datex.Date) {
	m.err = nil
	m.cursor = d
	if y, mo, _ := d.YMD(); y != m.sheet.Year || mo != m.sheet.Month {
		m.rebuildSheet()
	}
}

func (m *Model) rebuildSheet() {
	sheet, err := calendar.SheetFor(m.cursor, m.weekStart)
	if err != nil {
		m.err = err
		return
	}
	m.sheet = sheet
}

func (m *Model) refreshClock() {
	if ts, err := datex.TimestampOf(m.now()); err == nil {
		m.clock = ts
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(SheetPanelStyle.Render(RenderSheet(m.sheet, m.cursor, m.reference)))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderHeader renders the month title and the current time
func (m Model) renderHeader() string {
	title := TitleStyle.Render(m.sheet.Title())
	clock := ClockStyle.Render(m.clock.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "   ", clock)
}

// renderStatusBar describes the cursor date relative to the reference date
func (m Model) renderStatusBar() string {
	parts := []string{m.cursor.String()}

	if m.showWeekday {
		parts = append(parts, m.cursor.Weekday().String())
	}
	if m.cursor.IsLeapYear() {
		parts = append(parts, "leap year")
	}
	if m.showDayCount {
		parts = append(parts, "day "+strconv.Itoa(m.cursor.DayCount()))
	}

	span := m.cursor.Sub(m.reference)
	sign := "+"
	if span.TotalSeconds() < 0 {
		sign = ""
	}
	parts = append(parts, MutedStyle.Render("ref "+sign+span.String()))

	return StatusBarStyle.Render(strings.Join(parts, "  "))
}

// RenderSheet renders a month sheet with the cursor and reference dates
// highlighted. Days outside the month are dimmed; slots before the epoch stay
// blank.
func RenderSheet(sheet *calendar.Sheet, cursor, reference datex.Date) string {
	var b strings.Builder

	header := make([]string, 0, calendar.DaysPerWeek)
	for _, w := range calendar.WeekdayHeader(sheet.WeekStart) {
		header = append(header, WeekdayHeaderStyle.Render(w.Short()))
	}
	b.WriteString(strings.Join(header, " "))

	for _, week := range sheet.Weeks {
		b.WriteString("\n")
		cells := make([]string, 0, calendar.DaysPerWeek)
		for _, cell := range week {
			cells = append(cells, renderCell(cell, cursor, reference))
		}
		b.WriteString(strings.Join(cells, " "))
	}

	return b.String()
}

func renderCell(cell calendar.Cell, cursor, reference datex.Date) string {
	if !cell.Valid {
		return "  "
	}

	label := stringx.PadLeft(strconv.Itoa(cell.Date.Day()), 2, ' ')

	switch {
	case cell.Date.Equal(cursor):
		return CursorStyle.Render(label)
	case cell.Date.Equal(reference):
		return ReferenceStyle.Render(label)
	case !cell.InMonth:
		return OutsideMonthStyle.Render(label)
	case cell.Date.Weekday().IsWeekend():
		return WeekendStyle.Render(label)
	default:
		return DayStyle.Render(label)
	}
}

// Run starts the calendar TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
