package cmd

// SessionsCmd inspects the session registry
type SessionsCmd struct {
	Get  SessionsGetCmd  `cmd:"get" help:"Show the agent a session is bound to"`
	List SessionsListCmd `cmd:"list" help:"List all session bindings" default:"1"`
}
