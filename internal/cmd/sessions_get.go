package cmd

import (
	"context"
	"fmt"
)

// SessionsGetCmd prints the agent a session resolves to. Sessions without a
// binding resolve to the primary agent, exactly as capture would.
type SessionsGetCmd struct {
	SessionID string `arg:"" help:"Session ID to look up"`
}

// Run executes the get command
func (s *SessionsGetCmd) Run(cli *CLI) error {
	ctx := context.Background()
	registry := cli.Container.Registry

	// Surface a corrupt registry here; capture would silently ignore it
	if _, err := registry.Load(ctx); err != nil {
		return fmt.Errorf("failed to read session %s: %w", s.SessionID, err)
	}

	fmt.Fprintln(cli.stdout(), registry.Get(ctx, s.SessionID, cli.Container.Settings.PrimaryAgent))
	return nil
}
