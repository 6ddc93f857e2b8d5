package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// SessionsListCmd lists all session bindings
type SessionsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	mappings, err := cli.Container.Registry.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if s.Format == "json" {
		return s.printJSON(cli, mappings)
	}
	return s.printTable(cli, mappings)
}

func (s *SessionsListCmd) printJSON(cli *CLI, mappings map[string]string) error {
	data, err := json.MarshalIndent(mappings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(cli.stdout(), string(data))
	return nil
}

func (s *SessionsListCmd) printTable(cli *CLI, mappings map[string]string) error {
	out := cli.stdout()
	if len(mappings) == 0 {
		fmt.Fprintf(out, "No sessions in %s\n", cli.Container.Registry.Path())
		return nil
	}

	ids := lo.Keys(mappings)
	sort.Strings(ids)

	table := tablewriter.NewWriter(out)
	table.Header("Session", "Agent")
	for _, id := range ids {
		if err := table.Append([]string{id, mappings[id]}); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Fprintf(out, "\nTotal: %d sessions\n", len(mappings))
	return nil
}
