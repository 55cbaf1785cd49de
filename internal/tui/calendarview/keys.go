// ============================================================================
// kalender - Calendar and clock arithmetic
// ============================================================================
//
// Package:     calendarview
// Description: Key bindings for the calendar TUI
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package calendarview

import "github.com/charmbracelet/bubbles/key"

// keyMap implements help.KeyMap
type keyMap struct {
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Reference key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "day back"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "day forward"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "week back"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "week forward"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("pgup", "p"),
			key.WithHelp("pgup/p", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("pgdown", "n"),
			key.WithHelp("pgdn/n", "next month"),
		),
		Reference: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "reference date"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the collapsed help bar
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.PrevMonth, k.NextMonth, k.Reference, k.Help, k.Quit}
}

// FullHelp returns the bindings shown when help is expanded
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek},
		{k.PrevMonth, k.NextMonth, k.Reference},
		{k.Help, k.Quit},
	}
}
