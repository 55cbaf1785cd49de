// File: convert.go
// Title: Standard Library Conversion
// Description: Conversion between time.Time and the datex value types. Only
//              the wall clock fields of the given time are used; zone offsets
//              and sub-second precision are dropped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package datex

import "time"

// DateOf returns the calendar day of t in t's location
func DateOf(t time.Time) (Date, error) {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// TimestampOf returns the wall clock reading of t in t's location
func TimestampOf(t time.Time) (Timestamp, error) {
	return NewTimestamp(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// Time converts d to midnight UTC
func (d Date) Time() time.Time {
	y, m, day := d.YMD()
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
}

// Time converts ts to a UTC time.Time
func (ts Timestamp) Time() time.Time {
	y, m, day := ts.date.YMD()
	return time.Date(y, time.Month(m), day, ts.Hour(), ts.Minute(), ts.Second(), 0, time.UTC)
}
