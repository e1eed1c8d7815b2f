// Package harness provides utilities for integration testing the keycap CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - KEYCAP_HOME: Isolated per test (temp directory)
//   - every other KEYCAP_* variable is removed, so debug logging stays off
//     and settings.json decides the store
package harness
