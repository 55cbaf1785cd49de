// File: date_test.go
// Title: Date Tests
// Description: Day count conversion, weekday calculation, shifting and
//              comparison of calendar dates.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-13 v0.1.0: Initial test implementation
// - 2026-10-15 v0.1.1: Weekday cross-check against the day count

package datex

import (
	"testing"

	mdwerror "github.com/msto63/kalender/foundation/core/error"
)

func TestDateRoundTrip(t *testing.T) {
	years := []int{0, 1, 3, 4, 99, 100, 399, 400, 1582, 1900, 1999, 2000, 2023, 2024, 2400}

	for _, y := range years {
		for m := 1; m <= 12; m++ {
			for d := 1; d <= DaysInMonth(y, m); d++ {
				date, err := NewDate(y, m, d)
				if err != nil {
					t.Fatalf("NewDate(%d,%d,%d) error = %v", y, m, d, err)
				}
				if date.Year() != y || date.Month() != m || date.Day() != d {
					t.Fatalf("NewDate(%d,%d,%d) decomposes to %d-%d-%d",
						y, m, d, date.Year(), date.Month(), date.Day())
				}
			}
		}
	}
}

func TestDateDayCount(t *testing.T) {
	testCases := []struct {
		year, month, day int
		count            int
	}{
		{0, 1, 1, 0},
		{0, 2, 29, 59},
		{0, 12, 31, 365},
		{1, 1, 1, 366},
		{4, 1, 1, 1461},
		{2000, 1, 1, 730485},
	}

	for _, tc := range testCases {
		date := MustDate(tc.year, tc.month, tc.day)
		if date.DayCount() != tc.count {
			t.Errorf("%s.DayCount() = %d, want %d", date, date.DayCount(), tc.count)
		}
	}
}

func TestDateAddDaysMatchesClosedForm(t *testing.T) {
	epoch := MustDate(0, 1, 1)

	for n := 0; n <= 800000; n += 97 {
		shifted := epoch
		if err := shifted.AddDays(n); err != nil {
			t.Fatalf("AddDays(%d) error = %v", n, err)
		}

		y, m, d := Date{days: n}.YMD()
		if sy, sm, sd := shifted.YMD(); sy != y || sm != m || sd != d {
			t.Fatalf("AddDays(%d) = %d-%d-%d, direct count gives %d-%d-%d", n, sy, sm, sd, y, m, d)
		}
		if rebuilt := MustDate(y, m, d); rebuilt.DayCount() != n {
			t.Fatalf("MustDate(%d,%d,%d).DayCount() = %d, want %d", y, m, d, rebuilt.DayCount(), n)
		}
	}
}

func TestDateWeekday(t *testing.T) {
	testCases := []struct {
		date Date
		want Weekday
	}{
		{MustDate(2000, 1, 1), Saturday},
		{MustDate(0, 1, 1), Saturday},
		{MustDate(0, 2, 29), Tuesday},
		{MustDate(0, 3, 1), Wednesday},
		{MustDate(1970, 1, 1), Thursday},
		{MustDate(2024, 1, 1), Monday},
		{MustDate(2024, 2, 29), Thursday},
	}

	for _, tc := range testCases {
		t.Run(tc.date.String(), func(t *testing.T) {
			if got := tc.date.Weekday(); got != tc.want {
				t.Errorf("Weekday() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDateWeekdayFollowsDayCount(t *testing.T) {
	// Day 0 is a Saturday, so the weekday cycles with the count.
	for n := 0; n <= 800000; n += 13 {
		d := Date{days: n}
		want := zellerWeekday[n%7]
		if got := d.Weekday(); got != want {
			t.Fatalf("%s (count %d).Weekday() = %v, want %v", d, n, got, want)
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	testCases := []struct {
		year int
		want bool
	}{
		{0, true},
		{4, true},
		{100, false},
		{400, true},
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
	}

	for _, tc := range testCases {
		if got := IsLeapYear(tc.year); got != tc.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tc.year, got, tc.want)
		}
	}

	if !MustDate(2024, 6, 1).IsLeapYear() || MustDate(1900, 6, 1).IsLeapYear() {
		t.Error("Date.IsLeapYear() mismatch")
	}
}

func TestDaysInMonth(t *testing.T) {
	testCases := []struct {
		year, month, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{0, 2, 29},
		{2023, 4, 30},
		{2023, 12, 31},
		{2023, 0, 0},
		{2023, 13, 0},
	}

	for _, tc := range testCases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestNewDateRejects(t *testing.T) {
	testCases := []struct {
		name             string
		year, month, day int
		message          string
	}{
		{"non-leap february", 2023, 2, 29, "day must be between 1 and 28"},
		{"century february", 1900, 2, 29, "day must be between 1 and 28"},
		{"day zero", 2024, 1, 0, "day must be between 1 and 31"},
		{"month 13", 2024, 13, 1, "month must be between 1 and 12"},
		{"month 0", 2024, 0, 1, "month must be between 1 and 12"},
		{"year before epoch", -1, 1, 1, "year must be between 0 and 2147483647"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := NewDate(tc.year, tc.month, tc.day)
			if !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
				t.Fatalf("NewDate() = %v, %v; want range error", d, err)
			}
			if err.Error() != tc.message {
				t.Errorf("Error() = %q, want %q", err.Error(), tc.message)
			}
		})
	}
}

func TestDateAddDaysBeforeEpoch(t *testing.T) {
	d := MustDate(0, 1, 5)
	if err := d.AddDays(-4); err != nil {
		t.Fatalf("AddDays(-4) error = %v", err)
	}
	if d.DayCount() != 0 {
		t.Fatalf("DayCount() = %d, want 0", d.DayCount())
	}

	err := d.AddDays(-1)
	if !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
		t.Fatalf("AddDays(-1) error = %v, want range error", err)
	}
	if d.DayCount() != 0 {
		t.Errorf("failed AddDays changed the date to %s", d)
	}

	if _, err := d.Prev(); err == nil {
		t.Error("Prev() of the epoch should fail")
	}
}

func TestDateNextPrev(t *testing.T) {
	d := MustDate(2024, 2, 28)

	next := d.Next()
	if next.String() != "2024.02.29" {
		t.Errorf("Next() = %s, want 2024.02.29", next)
	}
	if next.Next().String() != "2024.03.01" {
		t.Errorf("Next().Next() = %s, want 2024.03.01", next.Next())
	}

	prev, err := MustDate(2024, 1, 1).Prev()
	if err != nil || prev.String() != "2023.12.31" {
		t.Errorf("Prev() = %s, %v; want 2023.12.31", prev, err)
	}
}

func TestDateCompare(t *testing.T) {
	a := MustDate(2024, 2, 29)
	b := MustDate(2024, 3, 1)

	if !a.Before(b) || !b.After(a) || a.After(b) {
		t.Error("Before()/After() mismatch")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare() mismatch")
	}
	if !a.Equal(MustDate(2024, 2, 29)) || a.Equal(b) {
		t.Error("Equal() mismatch")
	}
}

func TestDateSub(t *testing.T) {
	mar := MustDate(2024, 3, 1)
	feb := MustDate(2024, 2, 1)

	if d := mar.Sub(feb); d.Days() != 29 || d.Hours() != 0 {
		t.Errorf("Sub() = %v, want 29 days", d)
	}
	if d := feb.Sub(mar); d.Days() != -29 {
		t.Errorf("Sub() = %v, want -29 days", d)
	}
	if d := MustDate(2001, 1, 1).Sub(MustDate(2000, 1, 1)); d.Days() != 366 {
		t.Errorf("Sub() across leap year = %d days, want 366", d.Days())
	}
}

func TestDateString(t *testing.T) {
	testCases := []struct {
		date Date
		want string
	}{
		{Date{}, "0000.01.01"},
		{MustDate(5, 3, 7), "0005.03.07"},
		{MustDate(2024, 12, 31), "2024.12.31"},
		{MustDate(12345, 1, 9), "12345.01.09"},
	}

	for _, tc := range testCases {
		if got := tc.date.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func BenchmarkNewDate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = NewDate(2024, 10, 17)
	}
}

func BenchmarkDateYMD(b *testing.B) {
	d := MustDate(2024, 10, 17)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = d.YMD()
	}
}
