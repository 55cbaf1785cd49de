// Package errors provides the standard error constructors used by the kalender
// foundation modules.
//
// Package: errors
// Title: Standard Error Constructors
// Description: Builds *mdwerror.Error values with consistent codes, messages and
//              details for range checks, cross-field validation, canonical text
//              decoding and internal invariant failures. Every error carries the
//              originating module and operation as details.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation for datex and the kal CLI
//
// Usage:
//
//	if month < 1 || month > 12 {
//		return errors.RangeError(errors.ModuleDatex, "NewDate", "month", month, 1, 12)
//	}
//
// RangeError messages follow the form "<field> must be between <min> and <max>".
package errors
