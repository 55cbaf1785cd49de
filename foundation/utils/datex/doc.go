// Package datex implements calendar and clock value types over the proleptic
// Gregorian calendar for the kalender project.
//
// Package: datex
// Title: Calendar Dates, Clock Times and Durations
// Description: Four value types with validated construction, arithmetic,
//              comparison and a canonical text form: Duration (signed span in
//              seconds), TimeOfDay (clock within one day), Date (day count
//              since 0000.01.01) and Timestamp (Date plus TimeOfDay).
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation of Duration, TimeOfDay and Date
// - 2026-10-14 v0.1.1: Timestamp with carrying arithmetic
// - 2026-10-15 v0.1.2: Canonical text decoding and time.Time conversion
// - 2026-10-16 v0.2.0: Weekday parsing, Duration.String
//
// Package Overview:
//
// # Calendar
//
// Dates start at year 0 (which is a leap year) and extend without an upper
// bound. The leap rule is the Gregorian one for every year, including those
// before 1582. Timezones, daylight saving and leap seconds do not exist here.
//
// # Clamping versus Carrying
//
// TimeOfDay shifts clamp at the ends of the day:
//
//	t := datex.MustTimeOfDay(23, 59, 0)
//	t.AddSeconds(120) // 23:59:59
//
// Timestamp shifts carry into the date, in both directions:
//
//	ts := datex.MustTimestamp(2024, 2, 28, 23, 0, 0)
//	_ = ts.AddHours(25) // 2024.03.01 00:00:00
//
// A shift that would move a Date or Timestamp before 0000.01.01 fails with a
// CodeValueOutOfRange error and leaves the value unchanged.
//
// # Durations
//
// Duration components use truncating division, so a negative span has
// non-positive components throughout. NewDuration rejects components that
// mix signs; the results of Add and Sub are not re-validated.
//
// # Errors
//
// All failures are *error.Error values from foundation/core/error, built by
// the foundation/core/errors constructors:
//
//	_, err := datex.NewDate(2023, 2, 29)
//	mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) // true
//	err.Error()                                         // "day must be between 1 and 28"
//
// # Text
//
// String renders YYYY.MM.DD, HH:MM:SS and YYYY.MM.DD HH:MM:SS. The same forms
// are accepted by ParseDate, ParseTimeOfDay, ParseTimestamp and the
// UnmarshalText methods; nothing else is.
//
// # Concurrency
//
// Values are plain structs and safe to share. The pointer-receiver Add*
// methods mutate in place and need external synchronization.
package datex
