// Package error provides structured error values for the kalender foundation.
//
// Package: error
// Title: Structured Error Values
// Description: An Error carries a message, an optional cause, a Code, a Severity,
//              free-form details and the stack at creation time. It satisfies the
//              standard error interface and works with errors.Is/As via Unwrap.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Exit code mapping for the kal CLI
//
// Usage:
//
//	import mdwerror "github.com/msto63/kalender/foundation/core/error"
//
//	err := mdwerror.New("month must be between 1 and 12").
//		WithCode(mdwerror.CodeValueOutOfRange).
//		WithDetail("field", "month").
//		WithDetail("value", 13)
//
//	if mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
//		// reject the input
//	}
package error
