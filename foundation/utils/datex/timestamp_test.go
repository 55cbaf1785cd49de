// File: timestamp_test.go
// Title: Timestamp Tests
// Description: Carrying shifts, borrowing differences, duration arithmetic and
//              ordering of timestamps.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-14
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation
// - 2026-10-15 v0.1.1: Negative shifts landing exactly on midnight

package datex

import (
	"testing"

	mdwerror "github.com/msto63/kalender/foundation/core/error"
)

func TestNewTimestamp(t *testing.T) {
	ts, err := NewTimestamp(2024, 2, 29, 23, 59, 59)
	if err != nil {
		t.Fatalf("NewTimestamp() error = %v", err)
	}
	if ts.Year() != 2024 || ts.Month() != 2 || ts.Day() != 29 ||
		ts.Hour() != 23 || ts.Minute() != 59 || ts.Second() != 59 {
		t.Errorf("accessors = %s", ts)
	}
	if ts.Weekday() != Thursday || !ts.IsLeapYear() {
		t.Errorf("Weekday() = %v, IsLeapYear() = %v", ts.Weekday(), ts.IsLeapYear())
	}
	if ts.DayCount() != ts.Date().DayCount() {
		t.Error("DayCount() does not delegate to the date part")
	}

	if _, err := NewTimestamp(2023, 2, 29, 0, 0, 0); !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
		t.Errorf("invalid date error = %v", err)
	}
	if _, err := NewTimestamp(2023, 2, 28, 24, 0, 0); !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
		t.Errorf("invalid time error = %v", err)
	}

	midnight, err := NewTimestampDate(2024, 3, 1)
	if err != nil || midnight.String() != "2024.03.01 00:00:00" {
		t.Errorf("NewTimestampDate() = %s, %v", midnight, err)
	}

	if c := Combine(MustDate(1999, 12, 31), MustTimeOfDay(12, 0, 0)); c.String() != "1999.12.31 12:00:00" {
		t.Errorf("Combine() = %s", c)
	}
}

func TestTimestampAddSecondsCarries(t *testing.T) {
	testCases := []struct {
		name  string
		start Timestamp
		n     int
		want  string
	}{
		{"back over leap day", MustTimestamp(2024, 3, 1, 0, 0, 0), -1, "2024.02.29 23:59:59"},
		{"forward over midnight", MustTimestamp(2023, 12, 31, 23, 59, 59), 1, "2024.01.01 00:00:00"},
		{"exactly minus one day", MustTimestamp(2024, 3, 10, 0, 0, 0), -secondsPerDay, "2024.03.09 00:00:00"},
		{"exactly minus two days", MustTimestamp(2024, 3, 10, 12, 0, 0), -2 * secondsPerDay, "2024.03.08 12:00:00"},
		{"several days forward", MustTimestamp(2024, 2, 27, 6, 0, 0), 3*secondsPerDay + 5, "2024.03.01 06:00:05"},
		{"several days back", MustTimestamp(2024, 3, 1, 0, 0, 1), -(2*secondsPerDay + 2), "2024.02.27 23:59:59"},
		{"within day", MustTimestamp(2024, 3, 1, 10, 0, 0), 59, "2024.03.01 10:00:59"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := tc.start
			if err := ts.AddSeconds(tc.n); err != nil {
				t.Fatalf("AddSeconds(%d) error = %v", tc.n, err)
			}
			if ts.String() != tc.want {
				t.Errorf("got %s, want %s", ts, tc.want)
			}
		})
	}
}

func TestTimestampCarryingAdders(t *testing.T) {
	ts := MustTimestamp(2024, 2, 28, 23, 0, 0)
	if err := ts.AddHours(25); err != nil {
		t.Fatal(err)
	}
	if ts.String() != "2024.03.01 00:00:00" {
		t.Errorf("AddHours(25) = %s", ts)
	}

	if err := ts.AddMinutes(-1); err != nil {
		t.Fatal(err)
	}
	if ts.String() != "2024.02.29 23:59:00" {
		t.Errorf("AddMinutes(-1) = %s", ts)
	}

	if err := ts.AddDays(366); err != nil {
		t.Fatal(err)
	}
	if ts.String() != "2025.03.01 23:59:00" {
		t.Errorf("AddDays(366) = %s", ts)
	}
}

func TestTimestampBeforeEpoch(t *testing.T) {
	ts := MustTimestamp(0, 1, 1, 0, 0, 5)

	err := ts.AddSeconds(-6)
	if !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
		t.Fatalf("AddSeconds(-6) error = %v, want range error", err)
	}
	if ts.String() != "0000.01.01 00:00:05" {
		t.Errorf("failed AddSeconds changed the value to %s", ts)
	}

	if err := ts.AddSeconds(-5); err != nil || ts.String() != "0000.01.01 00:00:00" {
		t.Errorf("AddSeconds(-5) = %s, %v", ts, err)
	}
	if _, err := ts.SubDuration(MustDuration(0, 0, 0, 1)); err == nil {
		t.Error("SubDuration() before the epoch should fail")
	}
}

func TestTimestampSub(t *testing.T) {
	testCases := []struct {
		name string
		a, b Timestamp
		want Duration
	}{
		{"borrow over leap day", MustTimestamp(2024, 3, 1, 0, 0, 0), MustTimestamp(2024, 2, 29, 23, 59, 59), MustDuration(0, 0, 0, 1)},
		{"across midnight", MustTimestamp(2024, 3, 2, 1, 0, 0), MustTimestamp(2024, 3, 1, 23, 0, 0), MustDuration(0, 2, 0, 0)},
		{"negative across midnight", MustTimestamp(2024, 3, 1, 23, 0, 0), MustTimestamp(2024, 3, 2, 1, 0, 0), MustDuration(0, -2, 0, 0)},
		{"whole days", MustTimestamp(2024, 3, 8, 6, 30, 0), MustTimestamp(2024, 3, 1, 6, 0, 0), MustDuration(7, 0, 30, 0)},
		{"same instant", MustTimestamp(2024, 3, 1, 6, 0, 0), MustTimestamp(2024, 3, 1, 6, 0, 0), Duration{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Sub(tc.b); !got.Equal(tc.want) {
				t.Errorf("Sub() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTimestampAddDuration(t *testing.T) {
	start := MustTimestamp(2023, 12, 31, 23, 30, 0)
	span := MustDuration(1, 0, 45, 0)

	later, err := start.Add(span)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if later.String() != "2024.01.02 00:15:00" {
		t.Errorf("Add() = %s, want 2024.01.02 00:15:00", later)
	}

	back, err := later.SubDuration(span)
	if err != nil {
		t.Fatalf("SubDuration() error = %v", err)
	}
	if !back.Equal(start) {
		t.Errorf("SubDuration() = %s, want %s", back, start)
	}

	if got := later.Sub(start); !got.Equal(span) {
		t.Errorf("Sub() = %v, want %v", got, span)
	}
	if start.String() != "2023.12.31 23:30:00" {
		t.Errorf("Add() modified its receiver: %s", start)
	}
}

func TestTimestampOrdering(t *testing.T) {
	a := MustTimestamp(2024, 3, 1, 23, 59, 59)
	b := MustTimestamp(2024, 3, 2, 0, 0, 0)
	c := MustTimestamp(2024, 3, 2, 0, 0, 1)

	if a.Compare(b) != -1 || b.Compare(c) != -1 || c.Compare(a) != 1 || b.Compare(b) != 0 {
		t.Error("Compare() mismatch")
	}
	if !a.Before(b) || !c.After(b) || b.After(c) {
		t.Error("Before()/After() mismatch")
	}
	if !b.Equal(MustTimestamp(2024, 3, 2, 0, 0, 0)) || b.Equal(c) {
		t.Error("Equal() mismatch")
	}
}

func BenchmarkTimestampAddSeconds(b *testing.B) {
	ts := MustTimestamp(2024, 10, 17, 12, 0, 0)
	for i := 0; i < b.N; i++ {
		_ = ts.AddSeconds(1)
	}
}
