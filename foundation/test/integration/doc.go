// Package integration holds tests that cross foundation module boundaries.
//
// Package: integration
// Title: Foundation Integration Tests
// Description: Verifies that datex errors keep their code and details through
//              wrapping, that the logger renders them as structured entries,
//              and that calendar values can be shared between goroutines.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Error format checks for datex and stringx
// - 2026-10-16 v0.2.0: Logging and concurrency checks
//
// Running:
//
//	go test -v ./test/integration/
//	go test -v ./test/integration/ -bench=.
package integration
