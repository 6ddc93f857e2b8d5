package harness

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess verifies the command succeeded with exit code 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode,
		"Expected success (exit 0), got %d.\nStdout: %s\nStderr: %s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure verifies the command failed with non-zero exit code.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"Expected failure (non-zero exit), got success.\nStdout: %s",
		result.Stdout)
}

// AssertHookSilent verifies a hook invocation exited 0 without writing to
// stdout, which the host would otherwise show to the user.
func AssertHookSilent(tb testing.TB, result CommandResult) {
	tb.Helper()
	AssertSuccess(tb, result)
	AssertStdoutEmpty(tb, result)
}

// AssertStdoutContains verifies stdout contains the expected string.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected,
		"Expected stdout to contain %q.\nActual stdout: %s",
		expected, result.Stdout)
}

// AssertStderrContains verifies stderr contains the expected string.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected,
		"Expected stderr to contain %q.\nActual stderr: %s",
		expected, result.Stderr)
}

// AssertStdoutEmpty verifies stdout is empty.
func AssertStdoutEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stdout),
		"Expected empty stdout, got: %s", result.Stdout)
}

// AssertStderrEmpty verifies stderr is empty.
func AssertStderrEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stderr),
		"Expected empty stderr, got: %s", result.Stderr)
}

// AssertValidJSON verifies stdout is valid JSON and unmarshals it into target.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	err := json.Unmarshal([]byte(result.Stdout), target)
	require.NoError(tb, err, "Expected valid JSON.\nStdout: %s", result.Stdout)
}
