// ============================================================================
// kalender - Calendar and clock arithmetic
// ============================================================================
//
// Package:     version
// Description: Central version information for the kal binary
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Kal is the release version of the command line tool
	Kal = "0.3.0"

	// Datex is the version of the calendar value library
	Datex = "0.2.0"
)

// Set at build time via -ldflags "-X github.com/msto63/kalender/pkg/core/version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// String returns a one-line version description
func String() string {
	return fmt.Sprintf("kal %s (datex %s, commit %s, built %s)", Kal, Datex, Commit, BuildDate)
}
