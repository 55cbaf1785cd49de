// ============================================================================
// kalender - Calendar and clock arithmetic
// ============================================================================
//
// Package:     calendar
// Description: Month sheets laid out in weeks for display
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package calendar

import (
	"strconv"
	"strings"
	"time"

	"github.com/msto63/kalender/foundation/utils/datex"
	"github.com/msto63/kalender/foundation/utils/stringx"
)

// DaysPerWeek is the number of columns in a sheet
const DaysPerWeek = 7

// Cell is one day slot of a sheet
type Cell struct {
	Date datex.Date

	// Valid is false for slots before 0000.01.01, which have no date
	Valid bool

	// InMonth is true for days of the sheet's own month
	InMonth bool
}

// Sheet is a month laid out as rows of weeks. Leading and trailing cells
// hold days of the neighbouring months.
type Sheet struct {
	Year      int
	Month     int
	WeekStart datex.Weekday
	Weeks     [][DaysPerWeek]Cell
}

// NewSheet lays out year/month with weekStart as the first column
func NewSheet(year, month int, weekStart datex.Weekday) (*Sheet, error) {
	first, err := datex.NewDate(year, month, 1)
	if err != nil {
		return nil, err
	}

	offset := columnOf(first.Weekday(), weekStart)
	days := datex.DaysInMonth(year, month)
	rows := (offset + days + DaysPerWeek - 1) / DaysPerWeek

	sheet := &Sheet{
		Year:      year,
		Month:     month,
		WeekStart: weekStart,
		Weeks:     make([][DaysPerWeek]Cell, rows),
	}

	for i := 0; i < rows*DaysPerWeek; i++ {
		d := first
		if err := d.AddDays(i - offset); err != nil {
			continue
		}
		sheet.Weeks[i/DaysPerWeek][i%DaysPerWeek] = Cell{
			Date:    d,
			Valid:   true,
			InMonth: i >= offset && i < offset+days,
		}
	}

	return sheet, nil
}

// SheetFor lays out the month containing d
func SheetFor(d datex.Date, weekStart datex.Weekday) (*Sheet, error) {
	y, m, _ := d.YMD()
	return NewSheet(y, m, weekStart)
}

// columnOf returns the column of w in a week starting on start
func columnOf(w, start datex.Weekday) int {
	return (int(w) - int(start) + DaysPerWeek) % DaysPerWeek
}

// WeekdayHeader returns the weekdays in column order
func WeekdayHeader(start datex.Weekday) [DaysPerWeek]datex.Weekday {
	var header [DaysPerWeek]datex.Weekday
	for i := range header {
		header[i] = datex.Weekday((int(start) + i) % DaysPerWeek)
	}
	return header
}

// Title returns the month name and year, e.g. "February 2024"
func (s *Sheet) Title() string {
	return stringx.Concat(time.Month(s.Month).String(), " ", strconv.Itoa(s.Year))
}

// Find returns the row and column of d, if d is part of the sheet
func (s *Sheet) Find(d datex.Date) (row, col int, ok bool) {
	for r, week := range s.Weeks {
		for c, cell := range week {
			if cell.Valid && cell.Date.Equal(d) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// String renders the sheet as plain text. Days outside the month are blank.
func (s *Sheet) String() string {
	var b strings.Builder

	b.WriteString(s.Title())
	b.WriteByte('\n')

	names := make([]string, 0, DaysPerWeek)
	for _, w := range WeekdayHeader(s.WeekStart) {
		names = append(names, w.Short())
	}
	b.WriteString(strings.Join(names, " "))
	b.WriteByte('\n')

	for _, week := range s.Weeks {
		cols := make([]string, 0, DaysPerWeek)
		for _, cell := range week {
			cols = append(cols, cell.Label())
		}
		b.WriteString(strings.TrimRight(strings.Join(cols, " "), " "))
		b.WriteByte('\n')
	}

	return b.String()
}

// Label returns the two-column day number, or blanks outside the month
func (c Cell) Label() string {
	if !c.Valid || !c.InMonth {
		return "  "
	}
	return stringx.PadLeft(strconv.Itoa(c.Date.Day()), 2, ' ')
}
