package domain

import "time"

// zonedLayout renders timestamps as "YYYY-MM-DD HH:MM:SS"
const zonedLayout = "2006-01-02 15:04:05"

// Envelope is the record appended to the event log, one per invocation
type Envelope struct {
	SourceApp     string         `json:"source_app"`
	SessionID     string         `json:"session_id"`
	HookEventType string         `json:"hook_event_type"`
	Payload       map[string]any `json:"payload"`
	Timestamp     int64          `json:"timestamp"`
	TimestampPST  string         `json:"timestamp_pst"`
}

// NewEnvelope wraps event with its resolved agent and capture time.
// loc and zoneLabel control the human-readable timestamp only.
func NewEnvelope(event *HookEvent, agent string, capturedAt time.Time, loc *time.Location, zoneLabel string) *Envelope {
	return &Envelope{
		SourceApp:     agent,
		SessionID:     event.SessionID,
		HookEventType: event.Kind,
		Payload:       event.Payload,
		Timestamp:     capturedAt.UnixMilli(),
		TimestampPST:  FormatZoned(capturedAt, loc, zoneLabel),
	}
}

// CapturedAt returns the capture instant encoded in Timestamp
func (e *Envelope) CapturedAt() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// FormatZoned renders t in loc followed by a fixed zone label, e.g.
// "2025-01-15 09:30:00 PST". An empty label uses the zone abbreviation.
func FormatZoned(t time.Time, loc *time.Location, label string) string {
	local := t.In(loc)
	if label == "" {
		label, _ = local.Zone()
	}
	return local.Format(zonedLayout) + " " + label
}
