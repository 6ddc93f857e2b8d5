package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/renato0307/hookline/internal/config"
)

// SettingsCmd displays the effective settings and where files go
type SettingsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the settings command
func (s *SettingsCmd) Run(cli *CLI) error {
	settings := cli.Container.Settings
	values := settings.Describe()
	paths := map[string]string{
		"events_file":   cli.Container.EventLog.PathFor(time.Now()),
		"registry":      cli.Container.Registry.Path(),
		"settings_file": settings.SettingsFilePath(),
	}

	if s.Format == "json" {
		output := map[string]any{
			"paths":    paths,
			"settings": values,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cli.stdout(), string(data))
		return nil
	}

	// Table format
	out := cli.stdout()
	fmt.Fprintf(out, "Settings file: %s\n", paths["settings_file"])
	fmt.Fprintf(out, "Registry:      %s\n", paths["registry"])
	fmt.Fprintf(out, "Events today:  %s\n\n", paths["events_file"])

	table := tablewriter.NewWriter(out)
	table.Header("Key", "Value")
	for _, key := range config.DescribeKeys(values) {
		if err := table.Append([]string{key, formatValue(values[key])}); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "All settings are optional; HOOKLINE_<KEY> environment variables override the file.")

	return nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case []string:
		// Format string arrays as JSON
		data, _ := json.Marshal(v)
		return string(data)
	case string:
		if v == "" {
			return "-"
		}
		return v
	case time.Duration:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
