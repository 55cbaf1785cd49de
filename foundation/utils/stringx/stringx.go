// File: stringx.go
// Title: String Building Utilities
// Description: Padding and concatenation helpers used by the canonical text
//              forms of the datex value types.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Added Concat and PadInt

package stringx

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// IsBlank returns true if s is empty or contains only whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Concat joins parts without a separator, allocating once
func Concat(parts ...string) string {
	n := 0
	for _, p := range parts {
		n += len(p)
	}

	var b strings.Builder
	b.Grow(n)
	for _, p := range parts {
		b.WriteString(p)
	}
	return b.String()
}

// PadLeft pads s on the left with pad until it is width runes long.
// Strings that are already long enough are returned unchanged.
func PadLeft(s string, width int, pad rune) string {
	count := width - utf8.RuneCountInString(s)
	if count <= 0 {
		return s
	}
	return strings.Repeat(string(pad), count) + s
}

// PadRight pads s on the right with pad until it is width runes long.
func PadRight(s string, width int, pad rune) string {
	count := width - utf8.RuneCountInString(s)
	if count <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), count)
}

// PadInt renders n in decimal, zero-padded on the left to at least width
// digits. A minus sign is placed before the padding.
func PadInt(n int, width int) string {
	if n < 0 {
		return "-" + PadLeft(strconv.FormatInt(-int64(n), 10), width, '0')
	}
	return PadLeft(strconv.Itoa(n), width, '0')
}
