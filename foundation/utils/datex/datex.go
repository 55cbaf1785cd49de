// File: datex.go
// Title: Shared Calendar Helpers
// Description: Constants, range validation and floor arithmetic shared by the
//              datex value types.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: floorDiv/floorMod for carries below midnight

package datex

import (
	"math"

	"github.com/msto63/kalender/foundation/core/errors"
)

const (
	secondsPerMinute = 60
	minutesPerHour   = 60
	hoursPerDay      = 24
	secondsPerHour   = secondsPerMinute * minutesPerHour
	secondsPerDay    = secondsPerHour * hoursPerDay

	// lastSecondOfDay is the largest value a TimeOfDay can hold
	lastSecondOfDay = secondsPerDay - 1

	// maxYear is the upper bound reported for the year field
	maxYear = math.MaxInt32
)

// checkRange returns a range error naming field when value is outside [min, max]
func checkRange(operation, field string, value, min, max int) error {
	if value < min || value > max {
		return errors.RangeError(errors.ModuleDatex, operation, field, value, min, max)
	}
	return nil
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv; the result has the sign of b
func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
