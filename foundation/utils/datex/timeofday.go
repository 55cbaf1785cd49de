// File: timeofday.go
// Title: Time of Day
// Description: TimeOfDay is a clock reading within a single day. Shifts clamp
//              at midnight and at 23:59:59 instead of wrapping; use Timestamp
//              when overflow should carry into the date.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package datex

import "github.com/msto63/kalender/foundation/utils/stringx"

// TimeOfDay holds seconds since midnight in [0, 86399].
// The zero value is 00:00:00.
type TimeOfDay struct {
	seconds int
}

// NewTimeOfDay validates hour in [0,23], minute and second in [0,59]
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if err := checkRange("NewTimeOfDay", "hour", hour, 0, hoursPerDay-1); err != nil {
		return TimeOfDay{}, err
	}
	if err := checkRange("NewTimeOfDay", "minute", minute, 0, minutesPerHour-1); err != nil {
		return TimeOfDay{}, err
	}
	if err := checkRange("NewTimeOfDay", "second", second, 0, secondsPerMinute-1); err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{seconds: (hour*minutesPerHour+minute)*secondsPerMinute + second}, nil
}

// MustTimeOfDay is like NewTimeOfDay but panics on invalid input
func MustTimeOfDay(hour, minute, second int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Hour() int         { return t.seconds / secondsPerHour }
func (t TimeOfDay) Minute() int       { return t.seconds / secondsPerMinute % minutesPerHour }
func (t TimeOfDay) Second() int       { return t.seconds % secondsPerMinute }
func (t TimeOfDay) TotalSeconds() int { return t.seconds }

// AddSeconds shifts the clock and clamps the result to [00:00:00, 23:59:59]
func (t *TimeOfDay) AddSeconds(n int) {
	s := t.seconds + n
	switch {
	case s < 0:
		s = 0
	case s > lastSecondOfDay:
		s = lastSecondOfDay
	}
	t.seconds = s
}

// AddMinutes shifts the clock by whole minutes, clamping like AddSeconds
func (t *TimeOfDay) AddMinutes(n int) {
	t.AddSeconds(n * secondsPerMinute)
}

// AddHours shifts the clock by whole hours, clamping like AddSeconds
func (t *TimeOfDay) AddHours(n int) {
	t.AddSeconds(n * secondsPerHour)
}

// Sub returns the signed span t-other. The result never has a day component.
func (t TimeOfDay) Sub(other TimeOfDay) Duration {
	return durationOfSeconds(int64(t.seconds - other.seconds))
}

// Compare returns -1, 0 or +1 ordering t against other
func (t TimeOfDay) Compare(other TimeOfDay) int {
	switch {
	case t.seconds < other.seconds:
		return -1
	case t.seconds > other.seconds:
		return 1
	default:
		return 0
	}
}

func (t TimeOfDay) Equal(other TimeOfDay) bool  { return t.seconds == other.seconds }
func (t TimeOfDay) Before(other TimeOfDay) bool { return t.seconds < other.seconds }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t.seconds > other.seconds }

// String renders the canonical form HH:MM:SS
func (t TimeOfDay) String() string {
	return stringx.Concat(
		stringx.PadInt(t.Hour(), 2), ":",
		stringx.PadInt(t.Minute(), 2), ":",
		stringx.PadInt(t.Second(), 2),
	)
}
