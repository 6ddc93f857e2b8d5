// Package harness provides utilities for integration testing the hookline CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - PAI_DIR: Isolated per test (temp directory)
//   - HOME, XDG_STATE_HOME: Isolated so debug logs never reach the real home
//   - HOOKLINE_*, CLAUDE_CODE_AGENT: Removed unless a test sets them
package harness
