// Package stringx provides the small string-building helpers the kalender
// formatting code relies on.
//
// Package: stringx
// Title: String Building Utilities
// Description: Concatenation and left/right padding helpers. PadInt renders a
//              decimal integer zero-padded to a minimum width, which is all the
//              canonical date and time forms need.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation (PadLeft, PadRight, IsBlank)
// - 2026-10-16 v0.2.0: Added Concat and PadInt
//
// Usage:
//
//	stringx.PadInt(7, 2)                 // "07"
//	stringx.PadInt(12345, 4)             // "12345"
//	stringx.Concat("2024", ".", "02")    // "2024.02"
package stringx
