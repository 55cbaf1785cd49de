// File: text.go
// Title: Canonical Text Encoding
// Description: Strict decoding of the canonical forms YYYY.MM.DD, HH:MM:SS and
//              YYYY.MM.DD HH:MM:SS, plus encoding.TextMarshaler support so the
//              types round-trip through JSON, TOML and YAML.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package datex

import (
	"strconv"
	"strings"

	"github.com/msto63/kalender/foundation/core/errors"
)

// Canonical layouts, as reported in format errors
const (
	DateLayout      = "YYYY.MM.DD"
	TimeLayout      = "HH:MM:SS"
	TimestampLayout = DateLayout + " " + TimeLayout
)

// ParseDate decodes YYYY.MM.DD. The year has at least four digits; month and
// day have exactly two.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 || len(parts[0]) < 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Date{}, errors.FormatError(errors.ModuleDatex, "ParseDate", s, DateLayout)
	}
	nums, ok := atoiAll(parts)
	if !ok {
		return Date{}, errors.FormatError(errors.ModuleDatex, "ParseDate", s, DateLayout)
	}
	return NewDate(nums[0], nums[1], nums[2])
}

// ParseTimeOfDay decodes HH:MM:SS
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return TimeOfDay{}, errors.FormatError(errors.ModuleDatex, "ParseTimeOfDay", s, TimeLayout)
	}
	nums, ok := atoiAll(parts)
	if !ok {
		return TimeOfDay{}, errors.FormatError(errors.ModuleDatex, "ParseTimeOfDay", s, TimeLayout)
	}
	return NewTimeOfDay(nums[0], nums[1], nums[2])
}

// ParseTimestamp decodes YYYY.MM.DD HH:MM:SS separated by a single space
func ParseTimestamp(s string) (Timestamp, error) {
	datePart, timePart, found := strings.Cut(s, " ")
	if !found {
		return Timestamp{}, errors.FormatError(errors.ModuleDatex, "ParseTimestamp", s, TimestampLayout)
	}
	d, err := ParseDate(datePart)
	if err != nil {
		return Timestamp{}, err
	}
	t, err := ParseTimeOfDay(timePart)
	if err != nil {
		return Timestamp{}, err
	}
	return Combine(d, t), nil
}

// atoiAll converts unsigned decimal fields; signs and blanks are rejected
func atoiAll(parts []string) ([]int, bool) {
	nums := make([]int, len(parts))
	for i, p := range parts {
		for _, r := range p {
			if r < '0' || r > '9' {
				return nil, false
			}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		nums[i] = n
	}
	return nums, true
}

func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (t TimeOfDay) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (ts Timestamp) MarshalText() ([]byte, error) { return []byte(ts.String()), nil }

func (ts *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := ParseTimestamp(string(text))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
