package ports

import (
	"context"
	"time"

	"github.com/renato0307/hookline/internal/domain"
)

// EventSink persists captured envelopes
type EventSink interface {
	// Append writes env as a single record and returns the file it landed in
	Append(ctx context.Context, env *domain.Envelope) (string, error)
	// PathFor returns the file an envelope captured at t would be written to
	PathFor(t time.Time) string
}
