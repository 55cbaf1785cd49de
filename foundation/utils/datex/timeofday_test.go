// File: timeofday_test.go
// Title: TimeOfDay Tests
// Description: Validation, clamping shifts and differences of clock times.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial test implementation

package datex

import (
	"testing"

	mdwerror "github.com/msto63/kalender/foundation/core/error"
)

func TestNewTimeOfDay(t *testing.T) {
	tod, err := NewTimeOfDay(13, 7, 42)
	if err != nil {
		t.Fatalf("NewTimeOfDay() error = %v", err)
	}
	if tod.Hour() != 13 || tod.Minute() != 7 || tod.Second() != 42 {
		t.Errorf("got %02d:%02d:%02d, want 13:07:42", tod.Hour(), tod.Minute(), tod.Second())
	}
	if tod.TotalSeconds() != 47262 {
		t.Errorf("TotalSeconds() = %d, want 47262", tod.TotalSeconds())
	}

	testCases := []struct {
		name                 string
		hour, minute, second int
		message              string
	}{
		{"hour 24", 24, 0, 0, "hour must be between 0 and 23"},
		{"negative hour", -1, 0, 0, "hour must be between 0 and 23"},
		{"minute 60", 0, 60, 0, "minute must be between 0 and 59"},
		{"second 60", 0, 0, 60, "second must be between 0 and 59"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTimeOfDay(tc.hour, tc.minute, tc.second)
			if !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
				t.Fatalf("error = %v, want %v", err, mdwerror.CodeValueOutOfRange)
			}
			if err.Error() != tc.message {
				t.Errorf("Error() = %q, want %q", err.Error(), tc.message)
			}
		})
	}
}

func TestTimeOfDayClamps(t *testing.T) {
	testCases := []struct {
		name  string
		start TimeOfDay
		shift func(*TimeOfDay)
		want  string
	}{
		{"past midnight", MustTimeOfDay(23, 59, 59), func(c *TimeOfDay) { c.AddSeconds(1000) }, "23:59:59"},
		{"before midnight", MustTimeOfDay(0, 0, 0), func(c *TimeOfDay) { c.AddSeconds(-1000) }, "00:00:00"},
		{"within day", MustTimeOfDay(10, 0, 0), func(c *TimeOfDay) { c.AddMinutes(90) }, "11:30:00"},
		{"hours clamp low", MustTimeOfDay(10, 0, 0), func(c *TimeOfDay) { c.AddHours(-11) }, "00:00:00"},
		{"hours clamp high", MustTimeOfDay(10, 0, 0), func(c *TimeOfDay) { c.AddHours(48) }, "23:59:59"},
		{"exact end", MustTimeOfDay(23, 0, 0), func(c *TimeOfDay) { c.AddSeconds(3599) }, "23:59:59"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tod := tc.start
			tc.shift(&tod)
			if tod.String() != tc.want {
				t.Errorf("got %s, want %s", tod, tc.want)
			}
		})
	}
}

func TestTimeOfDaySub(t *testing.T) {
	d := MustTimeOfDay(10, 0, 0).Sub(MustTimeOfDay(12, 30, 15))

	if d.TotalSeconds() != -9015 {
		t.Errorf("TotalSeconds() = %d, want -9015", d.TotalSeconds())
	}
	if d.Days() != 0 || d.Hours() != -2 || d.Minutes() != -30 || d.Seconds() != -15 {
		t.Errorf("components = (%d,%d,%d,%d), want (0,-2,-30,-15)",
			d.Days(), d.Hours(), d.Minutes(), d.Seconds())
	}
}

func TestTimeOfDayOrdering(t *testing.T) {
	early := MustTimeOfDay(8, 0, 0)
	late := MustTimeOfDay(8, 0, 1)

	if !early.Before(late) || !late.After(early) || early.After(late) {
		t.Error("Before()/After() mismatch")
	}
	if early.Compare(late) != -1 || late.Compare(early) != 1 || early.Compare(early) != 0 {
		t.Error("Compare() mismatch")
	}
	if !early.Equal(MustTimeOfDay(8, 0, 0)) {
		t.Error("Equal() = false for identical times")
	}
	if got := MustTimeOfDay(7, 5, 9).String(); got != "07:05:09" {
		t.Errorf("String() = %q, want 07:05:09", got)
	}
}
