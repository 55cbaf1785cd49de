// File: compat.go
// Title: Standard Library Bridge
// Description: Thin helpers so callers of this package do not need to import
//              the standard errors package under another name.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

func asError(err error, target interface{}) bool {
	if err == nil {
		return false
	}
	return stderrors.As(err, target)
}
