package domain

// Defaults mirrored by config.Default
const (
	DefaultPrimaryAgent      = "kai"
	DefaultDelegateTool      = "Task"
	DefaultFallbackSessionID = "main"

	// DefaultMaxPayloadBytes caps stdin reads; hook payloads carry tool
	// output and can be large, but never unbounded
	DefaultMaxPayloadBytes = 16 << 20
)

// DefaultTerminalEvents reset a session back to the primary agent
var DefaultTerminalEvents = []string{EventSubagentStop, EventStop}

// Attribution is the outcome of resolving a single event
type Attribution struct {
	Agent string
	// Rule names the rule that matched, or "registry" for the fallback
	Rule string
	// Bound reports whether the registry now binds the session to Agent
	// because of this event
	Bound bool
}
