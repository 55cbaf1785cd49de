// File: timestamp.go
// Title: Timestamps
// Description: Timestamp pairs a Date with a TimeOfDay. Unlike TimeOfDay,
//              shifting a Timestamp carries whole days into the date part.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-14
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: Floor carry for negative shifts landing on midnight

package datex

import "github.com/msto63/kalender/foundation/utils/stringx"

// Timestamp is a date and a clock reading. The zero value is
// 0000.01.01 00:00:00.
type Timestamp struct {
	date  Date
	clock TimeOfDay
}

// NewTimestamp validates the date and time parts like NewDate and NewTimeOfDay
func NewTimestamp(year, month, day, hour, minute, second int) (Timestamp, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return Timestamp{}, err
	}
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{date: d, clock: t}, nil
}

// NewTimestampDate returns midnight at the start of the given day
func NewTimestampDate(year, month, day int) (Timestamp, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{date: d}, nil
}

// Combine joins already validated parts
func Combine(d Date, t TimeOfDay) Timestamp {
	return Timestamp{date: d, clock: t}
}

// MustTimestamp is like NewTimestamp but panics on invalid input
func MustTimestamp(year, month, day, hour, minute, second int) Timestamp {
	ts, err := NewTimestamp(year, month, day, hour, minute, second)
	if err != nil {
		panic(err)
	}
	return ts
}

func (ts Timestamp) Date() Date           { return ts.date }
func (ts Timestamp) TimeOfDay() TimeOfDay { return ts.clock }
func (ts Timestamp) Year() int            { return ts.date.Year() }
func (ts Timestamp) Month() int           { return ts.date.Month() }
func (ts Timestamp) Day() int             { return ts.date.Day() }
func (ts Timestamp) Hour() int            { return ts.clock.Hour() }
func (ts Timestamp) Minute() int          { return ts.clock.Minute() }
func (ts Timestamp) Second() int          { return ts.clock.Second() }
func (ts Timestamp) Weekday() Weekday     { return ts.date.Weekday() }
func (ts Timestamp) DayCount() int        { return ts.date.DayCount() }
func (ts Timestamp) IsLeapYear() bool     { return ts.date.IsLeapYear() }

// AddSeconds shifts the timestamp by n seconds. Overflow past either end of
// the day moves the date by as many days as needed. On error ts is unchanged.
func (ts *Timestamp) AddSeconds(n int) error {
	total := ts.clock.seconds + n
	carry := floorDiv(total, secondsPerDay)

	d := ts.date
	if carry != 0 {
		if err := d.AddDays(carry); err != nil {
			return err
		}
	}
	ts.date = d
	ts.clock.seconds = floorMod(total, secondsPerDay)
	return nil
}

func (ts *Timestamp) AddMinutes(n int) error { return ts.AddSeconds(n * secondsPerMinute) }
func (ts *Timestamp) AddHours(n int) error   { return ts.AddMinutes(n * minutesPerHour) }
func (ts *Timestamp) AddDays(n int) error    { return ts.date.AddDays(n) }

// Add applies the day, hour, minute and second components of d in that order
func (ts Timestamp) Add(d Duration) (Timestamp, error) {
	result := ts
	if err := result.AddDays(d.Days()); err != nil {
		return Timestamp{}, err
	}
	if err := result.AddHours(d.Hours()); err != nil {
		return Timestamp{}, err
	}
	if err := result.AddMinutes(d.Minutes()); err != nil {
		return Timestamp{}, err
	}
	if err := result.AddSeconds(d.Seconds()); err != nil {
		return Timestamp{}, err
	}
	return result, nil
}

// SubDuration is Add with d negated
func (ts Timestamp) SubDuration(d Duration) (Timestamp, error) {
	return ts.Add(d.Neg())
}

// Sub returns the span from other to ts. A negative clock difference borrows
// one day from the date difference.
func (ts Timestamp) Sub(other Timestamp) Duration {
	days := int64(ts.date.days - other.date.days)
	secs := int64(ts.clock.seconds - other.clock.seconds)
	if secs < 0 {
		days--
		secs += secondsPerDay
	}
	return durationOfSeconds(days*secondsPerDay + secs)
}

// Compare orders by date first, then by time of day
func (ts Timestamp) Compare(other Timestamp) int {
	if c := ts.date.Compare(other.date); c != 0 {
		return c
	}
	return ts.clock.Compare(other.clock)
}

func (ts Timestamp) Equal(other Timestamp) bool {
	return ts.date.Equal(other.date) && ts.clock.Equal(other.clock)
}

func (ts Timestamp) Before(other Timestamp) bool { return ts.Compare(other) < 0 }
func (ts Timestamp) After(other Timestamp) bool  { return ts.Compare(other) > 0 }

// String renders the canonical form YYYY.MM.DD HH:MM:SS
func (ts Timestamp) String() string {
	return stringx.Concat(ts.date.String(), " ", ts.clock.String())
}
