package domain

import "strings"

// Claude Code hook event names this adapter treats specially
const (
	EventPreToolUse   = "PreToolUse"
	EventPostToolUse  = "PostToolUse"
	EventStop         = "Stop"
	EventSubagentStop = "SubagentStop"
)

// HookEvent is a single lifecycle event received from the host.
// Payload is the decoded stdin object and is never modified.
type HookEvent struct {
	Kind      string
	SessionID string
	Payload   map[string]any
}

// NewHookEvent builds a HookEvent, falling back to fallbackSessionID when the
// payload carries no usable session_id
func NewHookEvent(kind string, payload map[string]any, fallbackSessionID string) *HookEvent {
	sessionID := payloadString(payload, "session_id")
	if sessionID == "" {
		sessionID = fallbackSessionID
	}
	return &HookEvent{
		Kind:      kind,
		SessionID: sessionID,
		Payload:   payload,
	}
}

// ToolName returns the payload tool_name, if any
func (e *HookEvent) ToolName() string {
	return payloadString(e.Payload, "tool_name")
}

// SubagentType returns tool_input.subagent_type, if any
func (e *HookEvent) SubagentType() string {
	toolInput, ok := e.Payload["tool_input"].(map[string]any)
	if !ok {
		return ""
	}
	return payloadString(toolInput, "subagent_type")
}

// AgentType returns the payload-declared agent_type, if any
func (e *HookEvent) AgentType() string {
	return payloadString(e.Payload, "agent_type")
}

// Cwd returns the payload working directory, if any
func (e *HookEvent) Cwd() string {
	return payloadString(e.Payload, "cwd")
}

// payloadString returns m[key] when it is a non-blank string.
// Host payloads are loosely typed; anything else counts as absent.
func payloadString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, ok := m[key].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}
