package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/jsonc"

	"github.com/renato0307/hookline/internal/logging"
)

// lockPollInterval is how often a contended registry lock is retried
const lockPollInterval = 10 * time.Millisecond

// JSONRegistry stores session → agent bindings in a pretty-printed JSON file.
// Every call reads the file afresh; nothing is cached between calls.
type JSONRegistry struct {
	path        string
	lockTimeout time.Duration
}

// NewJSONRegistry creates a registry backed by path. Writers wait at most
// lockTimeout for the sidecar lock before writing without it.
func NewJSONRegistry(path string, lockTimeout time.Duration) *JSONRegistry {
	return &JSONRegistry{
		path:        path,
		lockTimeout: lockTimeout,
	}
}

// Path returns the registry file location
func (r *JSONRegistry) Path() string {
	return r.path
}

// Load reads the registry. Returns an empty mapping if the file doesn't exist.
// On read or parse errors the mapping is still empty and the error is returned
// for diagnostics only.
func (r *JSONRegistry) Load(ctx context.Context) (map[string]string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return make(map[string]string), fmt.Errorf("failed to read registry: %w", err)
	}

	// Tolerate comments and trailing commas left by hand edits
	var mappings map[string]string
	if err := json.Unmarshal(jsonc.ToJSON(data), &mappings); err != nil {
		return make(map[string]string), fmt.Errorf("failed to parse registry %s: %w", r.path, err)
	}
	if mappings == nil {
		mappings = make(map[string]string)
	}

	return mappings, nil
}

// Get returns the agent bound to sessionID, or defaultAgent if there is none
func (r *JSONRegistry) Get(ctx context.Context, sessionID, defaultAgent string) string {
	mappings, err := r.Load(ctx)
	if err != nil {
		logging.Logger.Debugw("Registry unreadable, using default agent", "error", err, "default", defaultAgent)
	}

	if agent := mappings[sessionID]; agent != "" {
		return agent
	}
	return defaultAgent
}

// Set binds sessionID to agentName and rewrites the whole file.
// An unchanged binding is not rewritten. A registry that exists but cannot be
// parsed is left untouched so a human can inspect it.
func (r *JSONRegistry) Set(ctx context.Context, sessionID, agentName string) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}

	unlock := r.lock(ctx)
	defer unlock()

	mappings, err := r.Load(ctx)
	if err != nil {
		return err
	}

	if current, ok := mappings[sessionID]; ok && current == agentName {
		logging.Logger.Debugw("Registry binding unchanged", "session_id", sessionID, "agent", agentName)
		return nil
	}
	mappings[sessionID] = agentName

	if err := r.save(mappings); err != nil {
		return err
	}

	logging.Logger.Debugw("Registry binding updated", "session_id", sessionID, "agent", agentName)
	return nil
}

// save writes mappings to a temp file and renames it over the registry, so
// concurrent readers see either the old or the new snapshot, never a torn one
func (r *JSONRegistry) save(mappings map[string]string) error {
	data, err := json.MarshalIndent(mappings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(r.path), "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary registry file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write registry: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary registry file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set registry permissions: %w", err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move registry into place: %w", err)
	}

	return nil
}

// lock takes the sidecar lock guarding read-modify-write cycles.
// It never blocks longer than lockTimeout: on contention or error the caller
// proceeds unlocked and last writer wins.
func (r *JSONRegistry) lock(ctx context.Context) (unlock func()) {
	noop := func() {}

	file, err := os.OpenFile(r.path+".lock", os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		logging.Logger.Debugw("Failed to open registry lock, proceeding unlocked", "error", err)
		return noop
	}

	deadline := time.Now().Add(r.lockTimeout)
	for {
		acquired, err := tryLockFile(file)
		if err != nil {
			logging.Logger.Debugw("Failed to lock registry, proceeding unlocked", "error", err)
			file.Close()
			return noop
		}
		if acquired {
			return func() {
				if err := unlockFile(file); err != nil {
					logging.Logger.Debugw("Failed to unlock registry", "error", err)
				}
				file.Close()
			}
		}

		if !time.Now().Before(deadline) {
			logging.Logger.Debugw("Registry lock busy, proceeding unlocked", "timeout", r.lockTimeout)
			file.Close()
			return noop
		}

		select {
		case <-ctx.Done():
			file.Close()
			return noop
		case <-time.After(lockPollInterval):
		}
	}
}
