// File: duration.go
// Title: Signed Durations
// Description: Duration is a signed span of whole seconds. Components are
//              decomposed with truncating division, so negative spans mirror
//              positive ones (-3661s is -1h -1m -1s, not -2h +58m +59s).
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: String form for logs and CLI output

package datex

import (
	"strconv"

	"github.com/msto63/kalender/foundation/core/errors"
	"github.com/msto63/kalender/foundation/utils/stringx"
)

// Duration is a signed span of time stored as a total second count.
// The zero value is an empty span.
type Duration struct {
	total int64
}

// NewDuration builds a Duration from components. Hours, minutes and seconds
// are limited to ±23, ±59 and ±59; days are unrestricted. All non-zero
// components must share one sign.
func NewDuration(days, hours, minutes, seconds int) (Duration, error) {
	if err := checkRange("NewDuration", "hour", hours, -(hoursPerDay - 1), hoursPerDay-1); err != nil {
		return Duration{}, err
	}
	if err := checkRange("NewDuration", "minute", minutes, -(minutesPerHour - 1), minutesPerHour-1); err != nil {
		return Duration{}, err
	}
	if err := checkRange("NewDuration", "second", seconds, -(secondsPerMinute - 1), secondsPerMinute-1); err != nil {
		return Duration{}, err
	}

	positive, negative := false, false
	for _, c := range [...]int{days, hours, minutes, seconds} {
		if c > 0 {
			positive = true
		} else if c < 0 {
			negative = true
		}
	}
	if positive && negative {
		return Duration{}, errors.ValidationError(errors.ModuleDatex, "NewDuration",
			"all arguments must have the same sign", map[string]interface{}{
				"days":    days,
				"hours":   hours,
				"minutes": minutes,
				"seconds": seconds,
			})
	}

	total := ((int64(days)*hoursPerDay+int64(hours))*minutesPerHour+int64(minutes))*secondsPerMinute + int64(seconds)
	return Duration{total: total}, nil
}

// MustDuration is like NewDuration but panics on invalid components
func MustDuration(days, hours, minutes, seconds int) Duration {
	d, err := NewDuration(days, hours, minutes, seconds)
	if err != nil {
		panic(err)
	}
	return d
}

// AddSeconds shifts the span in place. No component validation is applied.
func (d *Duration) AddSeconds(n int64) {
	d.total += n
}

// TotalSeconds returns the raw second count
func (d Duration) TotalSeconds() int64 { return d.total }

// TotalMinutes returns the span in whole minutes, truncated toward zero
func (d Duration) TotalMinutes() int64 { return d.total / secondsPerMinute }

// TotalHours returns the span in whole hours, truncated toward zero
func (d Duration) TotalHours() int64 { return d.total / secondsPerHour }

// Days returns the whole-day component
func (d Duration) Days() int { return int(d.total / secondsPerDay) }

// Hours returns the hour component in [-23, 23]
func (d Duration) Hours() int { return int(d.total / secondsPerHour % hoursPerDay) }

// Minutes returns the minute component in [-59, 59]
func (d Duration) Minutes() int { return int(d.total / secondsPerMinute % minutesPerHour) }

// Seconds returns the second component in [-59, 59]
func (d Duration) Seconds() int { return int(d.total % secondsPerMinute) }

// Add returns d+other. The result is built from a fresh zero value and is not
// re-validated, so it may decompose into components of mixed sign relative
// to its operands.
func (d Duration) Add(other Duration) Duration {
	var result Duration
	result.AddSeconds(d.total + other.total)
	return result
}

// Sub returns d-other
func (d Duration) Sub(other Duration) Duration {
	var result Duration
	result.AddSeconds(d.total - other.total)
	return result
}

// Neg returns the span with its sign flipped
func (d Duration) Neg() Duration {
	return Duration{total: -d.total}
}

// Compare returns -1, 0 or +1 ordering d against other by total seconds
func (d Duration) Compare(other Duration) int {
	switch {
	case d.total < other.total:
		return -1
	case d.total > other.total:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both spans have the same total
func (d Duration) Equal(other Duration) bool { return d.total == other.total }

// Less reports whether d is shorter than other
func (d Duration) Less(other Duration) bool { return d.total < other.total }

// String renders the span as "[-]<days>d HH:MM:SS"
func (d Duration) String() string {
	sign := ""
	abs := d
	if d.total < 0 {
		sign = "-"
		abs = d.Neg()
	}
	return stringx.Concat(
		sign, strconv.Itoa(abs.Days()), "d ",
		stringx.PadInt(abs.Hours(), 2), ":",
		stringx.PadInt(abs.Minutes(), 2), ":",
		stringx.PadInt(abs.Seconds(), 2),
	)
}

// durationOfSeconds builds a Duration from a raw count through the unchecked path
func durationOfSeconds(n int64) Duration {
	var d Duration
	d.AddSeconds(n)
	return d
}
