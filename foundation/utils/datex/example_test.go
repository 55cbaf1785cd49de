// File: example_test.go
// Title: Usage Examples
// Description: Runnable examples for the datex value types.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial examples

package datex_test

import (
	"fmt"

	"github.com/msto63/kalender/foundation/utils/datex"
)

func ExampleNewDate() {
	d, err := datex.NewDate(2000, 1, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d, d.Weekday(), d.DayCount())

	_, err = datex.NewDate(2023, 2, 29)
	fmt.Println(err)
	// Output:
	// 2000.01.01 Saturday 730485
	// day must be between 1 and 28
}

func ExampleTimeOfDay_AddSeconds() {
	t := datex.MustTimeOfDay(23, 59, 0)
	t.AddSeconds(120)
	fmt.Println(t)
	// Output: 23:59:59
}

func ExampleTimestamp_AddSeconds() {
	ts := datex.MustTimestamp(2024, 3, 1, 0, 0, 0)
	if err := ts.AddSeconds(-1); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ts)
	// Output: 2024.02.29 23:59:59
}

func ExampleTimestamp_Sub() {
	a := datex.MustTimestamp(2024, 3, 1, 0, 0, 0)
	b := datex.MustTimestamp(2024, 2, 29, 23, 59, 59)
	fmt.Println(a.Sub(b))
	fmt.Println(b.Sub(a))
	// Output:
	// 0d 00:00:01
	// -0d 00:00:01
}

func ExampleNewDuration() {
	d, _ := datex.NewDuration(1, 2, 30, 0)
	fmt.Println(d, d.TotalMinutes())

	_, err := datex.NewDuration(1, -1, 0, 0)
	fmt.Println(err)
	// Output:
	// 1d 02:30:00 1590
	// all arguments must have the same sign
}
