// File: weekday.go
// Title: Days of the Week
// Description: Weekday enumeration shared with the standard library ordering
//              (Sunday = 0) plus name parsing for configuration values.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: ParseWeekday for calendar.week_start

package datex

import (
	"strings"
	"time"

	"github.com/msto63/kalender/foundation/core/errors"
)

// Weekday represents days of the week
type Weekday time.Weekday

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// String returns the English name of the day
func (w Weekday) String() string {
	return time.Weekday(w).String()
}

// Short returns the two-letter abbreviation used in calendar headers
func (w Weekday) Short() string {
	return w.String()[:2]
}

// IsWeekend reports whether w is Saturday or Sunday
func (w Weekday) IsWeekend() bool {
	return w == Saturday || w == Sunday
}

// ParseWeekday accepts a full English day name or its first three letters,
// case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for w := Sunday; w <= Saturday; w++ {
		full := strings.ToLower(w.String())
		if name == full || (len(name) == 3 && name == full[:3]) {
			return w, nil
		}
	}
	return Sunday, errors.FormatError(errors.ModuleDatex, "ParseWeekday", s, "weekday name")
}

// zellerWeekday maps the residue of Zeller's congruence, which starts the
// week on Saturday.
var zellerWeekday = [7]Weekday{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}

// weekdayOf evaluates Zeller's congruence for a Gregorian date. January and
// February count as months 13 and 14 of the previous year; for year 0 that
// is year -1, so the century split uses floor division.
func weekdayOf(year, month, day int) Weekday {
	if month < 3 {
		month += 12
		year--
	}
	centuryYear := floorMod(year, 100)
	century := floorDiv(year, 100)

	w := day + (13*(month+1))/5 + centuryYear + centuryYear/4 + floorDiv(century, 4) + 5*century
	r := floorMod(w, 7)
	if r < 0 || r >= len(zellerWeekday) {
		panic(errors.InvariantError(errors.ModuleDatex, "Weekday", "invalid day of week calculation"))
	}
	return zellerWeekday[r]
}
