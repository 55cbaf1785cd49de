// File: text_test.go
// Title: Canonical Text Tests
// Description: Strict parsing of the canonical forms and text marshaling
//              through encoding/json.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test implementation

package datex

import (
	"encoding/json"
	"testing"

	mdwerror "github.com/msto63/kalender/foundation/core/error"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		input string
		want  string
		code  mdwerror.Code
	}{
		{"2024.02.29", "2024.02.29", ""},
		{"0000.01.01", "0000.01.01", ""},
		{"12345.01.09", "12345.01.09", ""},
		{"2023.02.29", "", mdwerror.CodeValueOutOfRange},
		{"2024.13.01", "", mdwerror.CodeValueOutOfRange},
		{"2024-02-29", "", mdwerror.CodeInvalidFormat},
		{"24.02.29", "", mdwerror.CodeInvalidFormat},
		{"2024.2.29", "", mdwerror.CodeInvalidFormat},
		{"2024.02.+1", "", mdwerror.CodeInvalidFormat},
		{"2024.02.29.", "", mdwerror.CodeInvalidFormat},
		{"", "", mdwerror.CodeInvalidFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			d, err := ParseDate(tc.input)
			if tc.code != "" {
				if !mdwerror.HasCode(err, tc.code) {
					t.Errorf("ParseDate() error = %v, want %v", err, tc.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate() error = %v", err)
			}
			if d.String() != tc.want {
				t.Errorf("ParseDate() = %s, want %s", d, tc.want)
			}
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("23:59:59")
	if err != nil || !tod.Equal(MustTimeOfDay(23, 59, 59)) {
		t.Errorf("ParseTimeOfDay() = %s, %v", tod, err)
	}

	if _, err := ParseTimeOfDay("24:00:00"); !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
		t.Errorf("24:00:00 error = %v", err)
	}
	for _, bad := range []string{"1:00:00", "10:00", "10:00:00:00", "aa:bb:cc", " 10:00:00"} {
		if _, err := ParseTimeOfDay(bad); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
			t.Errorf("ParseTimeOfDay(%q) error = %v, want format error", bad, err)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2024.02.29 23:59:59")
	if err != nil {
		t.Fatalf("ParseTimestamp() error = %v", err)
	}
	if !ts.Equal(MustTimestamp(2024, 2, 29, 23, 59, 59)) {
		t.Errorf("ParseTimestamp() = %s", ts)
	}

	for _, bad := range []string{"2024.02.29", "2024.02.29T10:00:00", "2024.02.29  10:00:00", "10:00:00 2024.02.29"} {
		if _, err := ParseTimestamp(bad); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
			t.Errorf("ParseTimestamp(%q) error = %v, want format error", bad, err)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	type record struct {
		Due     Date      `json:"due"`
		Opens   TimeOfDay `json:"opens"`
		Created Timestamp `json:"created"`
	}

	in := record{
		Due:     MustDate(2024, 2, 29),
		Opens:   MustTimeOfDay(8, 30, 0),
		Created: MustTimestamp(1999, 12, 31, 23, 59, 59),
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"due":"2024.02.29","opens":"08:30:00","created":"1999.12.31 23:59:59"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var out record
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !out.Due.Equal(in.Due) || !out.Opens.Equal(in.Opens) || !out.Created.Equal(in.Created) {
		t.Errorf("Unmarshal() = %+v, want %+v", out, in)
	}

	if err := json.Unmarshal([]byte(`{"due":"2024-02-29"}`), &out); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("Unmarshal() of a non-canonical date error = %v", err)
	}
}

func TestParseWeekday(t *testing.T) {
	testCases := []struct {
		input string
		want  Weekday
	}{
		{"monday", Monday},
		{"Mon", Monday},
		{"SUNDAY", Sunday},
		{" saturday ", Saturday},
		{"thu", Thursday},
	}

	for _, tc := range testCases {
		got, err := ParseWeekday(tc.input)
		if err != nil || got != tc.want {
			t.Errorf("ParseWeekday(%q) = %v, %v; want %v", tc.input, got, err, tc.want)
		}
	}

	if _, err := ParseWeekday("mo"); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("ParseWeekday(mo) error = %v", err)
	}
	if Saturday.Short() != "Sa" || !Sunday.IsWeekend() || Monday.IsWeekend() {
		t.Error("Short()/IsWeekend() mismatch")
	}
}
