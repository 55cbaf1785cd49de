// File: date.go
// Title: Calendar Dates
// Description: Date is a day in the proleptic Gregorian calendar, stored as the
//              number of days since 0000.01.01. Year 0 exists and is a leap
//              year; dates before it are not representable.
// Author: msto63
// Version: v0.1.2
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Shifts before the epoch fail instead of wrapping
// - 2026-10-16 v0.1.2: Next/Prev helpers for the calendar view

package datex

import (
	"math"
	"strconv"

	"github.com/msto63/kalender/foundation/utils/stringx"
)

const (
	daysPerYear     = 365
	daysPerLeapYear = 366
	monthsPerYear   = 12
)

var daysPerMonth = [monthsPerYear]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date is a calendar day. The zero value is 0000.01.01.
type Date struct {
	days int
}

// IsLeapYear applies the Gregorian rule to year
func IsLeapYear(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInMonth returns the length of month in year, or 0 for a month outside 1-12
func DaysInMonth(year, month int) int {
	if month < 1 || month > monthsPerYear {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// NewDate validates year >= 0, month in [1,12] and day within the month
func NewDate(year, month, day int) (Date, error) {
	if err := checkRange("NewDate", "year", year, 0, maxYear); err != nil {
		return Date{}, err
	}
	if err := checkRange("NewDate", "month", month, 1, monthsPerYear); err != nil {
		return Date{}, err
	}
	if err := checkRange("NewDate", "day", day, 1, DaysInMonth(year, month)); err != nil {
		return Date{}, err
	}
	return Date{days: dayCount(year, month, day)}, nil
}

// MustDate is like NewDate but panics on invalid input
func MustDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// dayCount converts a validated triple into days since the epoch. Every year
// contributes 365 days plus one per leap year before it; year 0 is itself a
// leap year, so the leap-day term is one short until the current year's own
// leap day has been counted.
func dayCount(year, month, day int) int {
	n := (day - 1) + year*daysPerYear + year/4 - year/100 + year/400
	if !IsLeapYear(year) {
		n++
	}
	for m := 1; m < month; m++ {
		n += DaysInMonth(year, m)
	}
	return n
}

// YMD reconstructs year, month and day from the day count
func (d Date) YMD() (year, month, day int) {
	rest := d.days
	for {
		length := daysPerYear
		if IsLeapYear(year) {
			length = daysPerLeapYear
		}
		if rest < length {
			break
		}
		rest -= length
		year++
	}

	month = 1
	for rest >= DaysInMonth(year, month) {
		rest -= DaysInMonth(year, month)
		month++
	}
	return year, month, rest + 1
}

func (d Date) Year() int {
	y, _, _ := d.YMD()
	return y
}

func (d Date) Month() int {
	_, m, _ := d.YMD()
	return m
}

func (d Date) Day() int {
	_, _, day := d.YMD()
	return day
}

// DayCount returns the number of days since 0000.01.01
func (d Date) DayCount() int { return d.days }

// IsLeapYear reports whether the date falls in a leap year
func (d Date) IsLeapYear() bool { return IsLeapYear(d.Year()) }

// Weekday returns the day of the week
func (d Date) Weekday() Weekday {
	y, m, day := d.YMD()
	return weekdayOf(y, m, day)
}

// AddDays shifts the date by n days. A result before 0000.01.01 is rejected
// and leaves d unchanged.
func (d *Date) AddDays(n int) error {
	shifted := d.days + n
	if err := checkRange("AddDays", "day count", shifted, 0, math.MaxInt); err != nil {
		return err
	}
	d.days = shifted
	return nil
}

// Next returns the following day
func (d Date) Next() Date {
	return Date{days: d.days + 1}
}

// Prev returns the preceding day. It fails on the epoch itself.
func (d Date) Prev() (Date, error) {
	if err := d.AddDays(-1); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Equal compares year, month and day
func (d Date) Equal(other Date) bool {
	y1, m1, d1 := d.YMD()
	y2, m2, d2 := other.YMD()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Compare returns -1, 0 or +1 ordering d against other
func (d Date) Compare(other Date) int {
	switch {
	case d.days < other.days:
		return -1
	case d.days > other.days:
		return 1
	default:
		return 0
	}
}

func (d Date) Before(other Date) bool { return d.days < other.days }
func (d Date) After(other Date) bool  { return d.days > other.days }

// Sub returns the signed number of whole days between other and d
func (d Date) Sub(other Date) Duration {
	return durationOfSeconds(int64(d.days-other.days) * secondsPerDay)
}

// String renders the canonical form YYYY.MM.DD
func (d Date) String() string {
	y, m, day := d.YMD()
	return stringx.Concat(
		stringx.PadLeft(strconv.Itoa(y), 4, '0'), ".",
		stringx.PadInt(m, 2), ".",
		stringx.PadInt(day, 2),
	)
}
