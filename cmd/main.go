package main

import (
	"fmt"
	"os"
	_ "time/tzdata" // hosts without a zoneinfo database still get America/Los_Angeles

	"github.com/alecthomas/kong"

	"github.com/renato0307/hookline/internal/cmd"
	"github.com/renato0307/hookline/internal/config"
	"github.com/renato0307/hookline/internal/logging"
)

// Build information injected at build time via ldflags
// Example: -ldflags="-X main.Version=v1.0.0 -X main.Commit=abc123 ..."
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "dev"
)

// Tagline is the application's tagline used in help text and documentation
const Tagline = "Capture Claude Code hook events with agent attribution"

// versionInfo returns formatted version information for CLI display
func versionInfo() string {
	return fmt.Sprintf("hookline %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	hookMode := cmd.HookMode(args)
	failure := 1
	if hookMode {
		// The host treats a non-zero exit as a hook failure
		failure = 0
	}

	// Load settings from the environment and $PAI_DIR/hookline.yaml
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	parser, err := kong.New(&cli,
		kong.Name("hookline"),
		kong.Description(Tagline),
		cmd.Vars(versionInfo()),
		kong.Bind(&cli),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return failure
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		if hookMode {
			fmt.Fprintf(os.Stderr, "Event capture error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return failure
	}
	defer logging.Sync()

	// Execute the selected command
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return failure
	}
	return 0
}
