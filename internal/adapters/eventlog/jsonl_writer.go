package eventlog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/renato0307/hookline/internal/config"
	"github.com/renato0307/hookline/internal/domain"
	"github.com/renato0307/hookline/internal/logging"
)

// JSONLWriter appends envelopes to day files under a month-partitioned tree:
// <root>/YYYY-MM/YYYY-MM-DD_all-events.jsonl
type JSONLWriter struct {
	root string
	loc  *time.Location
}

// NewJSONLWriter creates a writer rooted at root. loc decides which calendar
// day an instant belongs to.
func NewJSONLWriter(root string, loc *time.Location) *JSONLWriter {
	return &JSONLWriter{
		root: root,
		loc:  loc,
	}
}

// PathFor returns the day file for t
func (w *JSONLWriter) PathFor(t time.Time) string {
	return config.EventsFile(w.root, t.In(w.loc))
}

// Append encodes env as one line and writes it with a single write call on an
// O_APPEND descriptor, so concurrent processes never interleave partial lines
func (w *JSONLWriter) Append(ctx context.Context, env *domain.Envelope) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encode terminates the record with '\n'
	if err := enc.Encode(env); err != nil {
		return "", fmt.Errorf("failed to encode event: %w", err)
	}
	line := buf.Bytes()

	path := w.PathFor(env.CapturedAt())

	// MkdirAll treats an existing directory as success, so racing creators are fine
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create event log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open event log: %w", err)
	}

	n, err := file.Write(line)
	if err == nil && n != len(line) {
		err = io.ErrShortWrite
	}
	if err != nil {
		file.Close()
		return "", fmt.Errorf("failed to append event: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close event log: %w", err)
	}

	logging.Logger.Debugw("Event appended", "path", path, "bytes", n)
	return path, nil
}
