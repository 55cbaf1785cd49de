// Package log provides structured logging for the kalender tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with persistent context fields,
//              JSON/text/console output and integration with the kalender
//              error type. Loggers are immutable; With* methods return copies.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-15 v0.1.1: Severity-aware LogError
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelInfo,
//		Format: log.FormatText,
//		Name:   "kal",
//	}).WithField("command", "diff")
//
//	logger.Info("date difference computed", log.Fields{
//		"from": from,
//		"to":   to,
//		"days": span.Days(),
//	})
//
//	if _, err := datex.NewDate(2023, 2, 29); err != nil {
//		logger.LogError(err) // logged at info: range errors have low severity
//	}
//
//	timer := logger.StartTimer("render_month")
//	// ... build the month sheet
//	timer.Stop()
package log
