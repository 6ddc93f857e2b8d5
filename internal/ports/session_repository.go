package ports

import "context"

// SessionReader reads session → agent bindings
type SessionReader interface {
	// Load returns the full mapping. On error the mapping is empty, never nil.
	Load(ctx context.Context) (map[string]string, error)
	// Get returns the agent bound to sessionID, or defaultAgent
	Get(ctx context.Context, sessionID, defaultAgent string) string
}

// SessionBinder binds a session to an agent
type SessionBinder interface {
	Set(ctx context.Context, sessionID, agentName string) error
}

// SessionRegistry is the composite interface
type SessionRegistry interface {
	SessionReader
	SessionBinder
}
