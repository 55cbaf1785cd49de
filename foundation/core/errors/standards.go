// File: standards.go
// Title: Standard Error Constructors
// Description: Module-scoped constructors for the error shapes used across the
//              kalender foundation and the kal command line tool.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Added InvariantError for unreachable states

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/kalender/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleDatex   = "datex"
	ModuleStringx = "stringx"
	ModuleConfig  = "config"
	ModuleCLI     = "kal"
)

// qualify joins module and operation into "module.Operation"
func qualify(module, operation string) string {
	if operation == "" {
		return module
	}
	return module + "." + operation
}

// RangeError reports an integer field outside the inclusive range [min, max].
func RangeError(module, operation, field string, value, min, max int) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("%s must be between %d and %d", field, min, max)).
		WithCode(mdwerror.CodeValueOutOfRange).
		WithOperation(qualify(module, operation)).
		WithDetails(map[string]interface{}{
			"module": module,
			"field":  field,
			"value":  value,
			"min":    min,
			"max":    max,
		})
}

// ValidationError reports a rule spanning several fields that does not hold.
func ValidationError(module, operation, message string, values map[string]interface{}) *mdwerror.Error {
	err := mdwerror.New(message).
		WithCode(mdwerror.CodeValidationFailed).
		WithOperation(qualify(module, operation)).
		WithDetail("module", module)
	for k, v := range values {
		err.WithDetail(k, v)
	}
	return err
}

// FormatError reports input that does not match an expected textual layout.
func FormatError(module, operation string, input string, expectedFormat string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("invalid %s format: %q (expected %s)", module, input, expectedFormat)).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation(qualify(module, operation)).
		WithDetails(map[string]interface{}{
			"module":          module,
			"input":           input,
			"expected_format": expectedFormat,
		})
}

// ConfigError wraps a configuration problem. cause may be nil.
func ConfigError(operation string, cause error, message string) *mdwerror.Error {
	var err *mdwerror.Error
	if cause != nil {
		err = mdwerror.Wrap(cause, message)
	} else {
		err = mdwerror.New(message)
	}
	return err.
		WithCode(mdwerror.CodeInvalidConfig).
		WithSeverity(mdwerror.SeverityHigh).
		WithOperation(qualify(ModuleConfig, operation)).
		WithDetail("module", ModuleConfig)
}

// InvariantError reports a state that correct code can never reach.
func InvariantError(module, operation, message string) *mdwerror.Error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeInternal).
		WithSeverity(mdwerror.SeverityCritical).
		WithOperation(qualify(module, operation)).
		WithDetail("module", module)
}

// GetErrorModule extracts the module name from a standard error
func GetErrorModule(err error) string {
	var mdwErr *mdwerror.Error
	if !asError(err, &mdwErr) {
		return ""
	}
	if module, ok := mdwErr.Detail("module"); ok {
		if s, ok := module.(string); ok {
			return s
		}
	}
	return ""
}

// IsModuleError checks if an error originated in the given module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}
