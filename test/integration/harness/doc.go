// Package harness provides utilities for integration testing the lagree CLI.
// It compiles the binary once, isolates LAGREE_HOME per test and can seed
// the workout log directly.
//
// Environment variables managed:
//   - LAGREE_HOME: Isolated per test (temp directory)
//   - LAGREE_DEBUG: Disabled to reduce noise
package harness
