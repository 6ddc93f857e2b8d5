package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventsFile(t *testing.T) {
	root := filepath.Join("state", "history", "raw-outputs")

	tests := []struct {
		name     string
		instant  time.Time
		expected string
	}{
		{
			name:     "single digit month and day are padded",
			instant:  time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC),
			expected: filepath.Join(root, "2025-03", "2025-03-07_all-events.jsonl"),
		},
		{
			name:     "last day of year",
			instant:  time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			expected: filepath.Join(root, "2024-12", "2024-12-31_all-events.jsonl"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EventsFile(root, tt.instant))
		})
	}
}

func TestSettingsPaths(t *testing.T) {
	settings := &Settings{StateDir: filepath.Join("home", ".claude")}

	assert.Equal(t, filepath.Join("home", ".claude", "agent-sessions.json"), settings.RegistryPath())
	assert.Equal(t, filepath.Join("home", ".claude", "history", "raw-outputs"), settings.EventsRoot())
	assert.Equal(t, filepath.Join("home", ".claude", "hookline.yaml"), settings.SettingsFilePath())
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, ".claude"), ExpandPath("~/.claude"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}

func TestDescribe(t *testing.T) {
	settings := Default()
	settings.ConfigFile = "/somewhere/hookline.yaml"

	described := settings.Describe()

	assert.Equal(t, "kai", described["primary_agent"])
	assert.Equal(t, DefaultRegistryLockTimeout, described["registry_lock_timeout"])
	assert.NotContains(t, described, "ConfigFile")
	assert.NotContains(t, described, "-")

	keys := DescribeKeys(described)
	assert.IsNonDecreasing(t, keys)
	assert.Len(t, keys, len(described))
}
