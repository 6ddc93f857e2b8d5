package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	registryFileName = "agent-sessions.json"
	eventsFileSuffix = "_all-events.jsonl"
)

// DefaultStateDir returns ~/.claude, or ".claude" when the home directory is unknown
func DefaultStateDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".claude"
	}
	return filepath.Join(homeDir, ".claude")
}

// RegistryPath returns $PAI_DIR/agent-sessions.json
func (s *Settings) RegistryPath() string {
	return filepath.Join(s.StateDir, registryFileName)
}

// EventsRoot returns $PAI_DIR/history/raw-outputs
func (s *Settings) EventsRoot() string {
	return EventsRoot(s.StateDir)
}

// EventsRoot returns the root of the month-partitioned event log tree
func EventsRoot(stateDir string) string {
	return filepath.Join(stateDir, "history", "raw-outputs")
}

// EventsFile returns the daily log file for t, partitioned by month.
// t must already be in the partitioning timezone.
func EventsFile(root string, t time.Time) string {
	month := fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
	day := fmt.Sprintf("%s-%02d", month, t.Day())
	return filepath.Join(root, month, day+eventsFileSuffix)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
