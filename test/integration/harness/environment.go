package harness

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own PAI_DIR.
type TestEnvironment struct {
	Home     string
	PaiDir   string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp PAI_DIR.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root := tb.TempDir()
	home := filepath.Join(root, "home")
	paiDir := filepath.Join(root, "pai")

	if err := os.MkdirAll(home, 0755); err != nil {
		tb.Fatalf("Failed to create home directory: %v", err)
	}

	// PAI_DIR is left uncreated: the first capture must create it
	return &TestEnvironment{
		Home:     home,
		PaiDir:   paiDir,
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out HOOKLINE_* variables and sets:
//   - PAI_DIR to the temp state directory
//   - HOME and XDG_STATE_HOME inside the temp directory
//   - HOOKLINE_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+4+len(e.extraEnv))

	// Build a set of keys we want to override
	overrideKeys := map[string]bool{
		"CLAUDE_CODE_AGENT": true,
		"HOME":              true,
		"PAI_DIR":           true,
		"USERPROFILE":       true,
		"XDG_STATE_HOME":    true,
	}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	// Filter out existing HOOKLINE_* variables and any we're overriding
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "HOOKLINE_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	// Add isolated environment variables
	env = append(env,
		"PAI_DIR="+e.PaiDir,
		"HOME="+e.Home,
		"USERPROFILE="+e.Home,
		"XDG_STATE_HOME="+filepath.Join(e.Home, ".local", "state"),
		"HOOKLINE_DEBUG=",
	)

	// Add extra environment variables
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// RegistryPath returns the path to the session registry.
func (e *TestEnvironment) RegistryPath() string {
	return filepath.Join(e.PaiDir, "agent-sessions.json")
}

// EventsRoot returns the root of the event log tree.
func (e *TestEnvironment) EventsRoot() string {
	return filepath.Join(e.PaiDir, "history", "raw-outputs")
}

// EventFiles returns every day file written so far.
func (e *TestEnvironment) EventFiles() []string {
	e.tb.Helper()
	files, err := filepath.Glob(filepath.Join(e.EventsRoot(), "*", "*_all-events.jsonl"))
	if err != nil {
		e.tb.Fatalf("Failed to list event files: %v", err)
	}
	return files
}

// ReadEvents parses every line of every day file. A line that is not a
// complete JSON object fails the test.
func (e *TestEnvironment) ReadEvents() []map[string]any {
	e.tb.Helper()

	var events []map[string]any
	for _, path := range e.EventFiles() {
		file, err := os.Open(path)
		if err != nil {
			e.tb.Fatalf("Failed to open %s: %v", path, err)
		}

		scanner := bufio.NewScanner(file)
		scanner.Buffer(make([]byte, 0, 64*1024), 16<<20)
		for scanner.Scan() {
			var event map[string]any
			if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
				file.Close()
				e.tb.Fatalf("Corrupt line in %s: %v\n%s", path, err, scanner.Text())
			}
			events = append(events, event)
		}
		if err := scanner.Err(); err != nil {
			file.Close()
			e.tb.Fatalf("Failed to read %s: %v", path, err)
		}
		file.Close()
	}
	return events
}

// ReadRegistry returns the session bindings currently on disk.
func (e *TestEnvironment) ReadRegistry() map[string]string {
	e.tb.Helper()

	data, err := os.ReadFile(e.RegistryPath())
	if err != nil {
		e.tb.Fatalf("Failed to read registry: %v", err)
	}
	var mappings map[string]string
	if err := json.Unmarshal(data, &mappings); err != nil {
		e.tb.Fatalf("Registry is not valid JSON: %v\n%s", err, data)
	}
	return mappings
}
