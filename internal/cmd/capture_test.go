package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hookline/internal/config"
)

type testCLI struct {
	cli    *CLI
	clock  *clock.Mock
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestCLI(t *testing.T, stdin string) *testCLI {
	t.Helper()
	settings := config.Default()
	settings.StateDir = t.TempDir()
	settings.Timezone = "UTC"
	settings.TimezoneLabel = "UTC"

	clk := clock.NewMock()
	clk.Set(time.Date(2025, 1, 15, 17, 30, 0, 0, time.UTC))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cli := &CLI{
		Container: NewContainer(settings, clk),
		Stdin:     strings.NewReader(stdin),
		Stdout:    stdout,
		Stderr:    stderr,
	}
	return &testCLI{cli: cli, clock: clk, stdout: stdout, stderr: stderr}
}

func (tc *testCLI) eventsFile() string {
	return tc.cli.Container.EventLog.PathFor(tc.clock.Now())
}

func TestCaptureCmd_WritesEventAndBinding(t *testing.T) {
	tc := newTestCLI(t, `{"session_id":"s1","tool_name":"Task","tool_input":{"subagent_type":"engineer"}}`)

	err := (&CaptureCmd{EventType: "PreToolUse"}).Run(tc.cli)

	require.NoError(t, err)
	assert.Empty(t, tc.stderr.String())
	assert.Empty(t, tc.stdout.String())

	data, err := os.ReadFile(tc.eventsFile())
	require.NoError(t, err)
	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &record))
	assert.Equal(t, "engineer", record["source_app"])
	assert.Equal(t, "2025-01-15 17:30:00 UTC", record["timestamp_pst"])

	settings := tc.cli.Container.Settings
	assert.Equal(t, filepath.Join(settings.StateDir, "history", "raw-outputs", "2025-01", "2025-01-15_all-events.jsonl"), tc.eventsFile())
	assert.FileExists(t, settings.RegistryPath())
}

func TestCaptureCmd_FailuresAreDiagnosticsOnly(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		stdin     string
		expected  string
	}{
		{
			name:      "missing event type",
			eventType: "",
			stdin:     `{}`,
			expected:  "Missing --event-type argument\n",
		},
		{
			name:      "malformed JSON",
			eventType: "PreToolUse",
			stdin:     `{"session_id":`,
			expected:  "Event capture error: invalid hook payload",
		},
		{
			name:      "non-object payload",
			eventType: "PreToolUse",
			stdin:     `[]`,
			expected:  "Event capture error: invalid hook payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCLI(t, tt.stdin)

			err := (&CaptureCmd{EventType: tt.eventType}).Run(tc.cli)

			require.NoError(t, err)
			assert.Contains(t, tc.stderr.String(), tt.expected)
			assert.NoFileExists(t, tc.eventsFile())
			assert.NoFileExists(t, tc.cli.Container.Settings.RegistryPath())
		})
	}
}

func TestCaptureCmd_UnwritableStateDir(t *testing.T) {
	tc := newTestCLI(t, `{"session_id":"s1"}`)
	// A file where the history directory should be
	stateDir := tc.cli.Container.Settings.StateDir
	require.NoError(t, os.WriteFile(filepath.Join(stateDir, "history"), []byte("x"), 0644))

	err := (&CaptureCmd{EventType: "Stop"}).Run(tc.cli)

	require.NoError(t, err)
	assert.Contains(t, tc.stderr.String(), "Event capture error: failed to write event")
}

func TestCaptureCmd_MissingContainer(t *testing.T) {
	stderr := &bytes.Buffer{}
	cli := &CLI{Stdin: strings.NewReader(`{}`), Stderr: stderr}

	err := (&CaptureCmd{EventType: "Stop"}).Run(cli)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "Event capture error")
}

func TestHookMode(t *testing.T) {
	tests := []struct {
		args     []string
		expected bool
	}{
		{args: []string{"--event-type", "PreToolUse"}, expected: true},
		{args: []string{"capture", "--event-type", "Stop"}, expected: true},
		{args: []string{}, expected: true},
		{args: []string{"--bogus"}, expected: true},
		{args: []string{"sessions", "list"}, expected: false},
		{args: []string{"--debug", "settings"}, expected: false},
		{args: []string{"--", "settings"}, expected: true},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			assert.Equal(t, tt.expected, HookMode(tt.args))
		})
	}
}

func TestCLI_ParseSelectsCaptureByDefault(t *testing.T) {
	t.Setenv("HOOKLINE_DEBUG", "")
	t.Setenv("HOOKLINE_DEBUG_FILE", "")

	settings := config.Default()
	settings.StateDir = t.TempDir()

	var cli CLI
	cli.SetSettings(settings)
	parser, err := kong.New(&cli, kong.Name("hookline"), Vars("hookline test"))
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"--event-type", "SubagentStop"})
	require.NoError(t, err)

	assert.Equal(t, "capture", ctx.Command())
	assert.Equal(t, "SubagentStop", cli.Capture.EventType)
	require.NotNil(t, cli.Container)
	assert.Equal(t, settings.StateDir, cli.Container.Settings.StateDir)
}
