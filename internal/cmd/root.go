package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/renato0307/hookline/internal/config"
	"github.com/renato0307/hookline/internal/logging"
)

// managementCommands are the subcommands that may exit non-zero.
// Everything else is a hook invocation and must always exit 0.
var managementCommands = map[string]bool{
	"sessions": true,
	"settings": true,
}

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"${default_max_log_files}"`

	Capture  CaptureCmd  `cmd:"" help:"Capture a hook event from stdin (default)" default:"withargs"`
	Sessions SessionsCmd `cmd:"sessions" help:"Inspect session to agent bindings"`
	Settings SettingsCmd `cmd:"settings" help:"Show resolved settings and file locations"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	Stdin     io.Reader        `kong:"-"`
	Stdout    io.Writer        `kong:"-"`
	Stderr    io.Writer        `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// Vars returns the kong variables the CLI struct refers to
func Vars(versionInfo string) kong.Vars {
	return kong.Vars{
		"default_max_log_files": strconv.Itoa(logging.DefaultMaxLogFiles),
		"version":               versionInfo,
	}
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings.
// It never fails: a hook invocation must not be aborted by logging problems.
func (c *CLI) AfterApply() error {
	if c.settings == nil {
		c.settings = config.Default()
	}

	// Precedence: CLI flags > env vars > settings file > defaults
	if !c.Debug && c.settings.Debug {
		c.Debug = true
	}
	if c.DebugFile == "" && c.settings.DebugFile != "" {
		c.DebugFile = config.ExpandPath(c.settings.DebugFile)
	}
	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("HOOKLINE_MAX_LOG_FILES"); !hasEnv {
			c.MaxLogFiles = c.settings.MaxLogFiles
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		fmt.Fprintf(c.stderr(), "Warning: debug logging disabled: %v\n", err)
	} else if logFilePath != "" {
		logging.Logger.Debugw("Debug logging initialized", "log_file", logFilePath)
	}

	// Create container AFTER logging is initialized
	c.Container = NewContainer(c.settings, nil)

	return nil
}

// HookMode reports whether args select the capture command, which always
// exits 0. Parsing errors are judged the same way.
func HookMode(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if len(arg) > 0 && arg[0] == '-' {
			continue
		}
		return !managementCommands[arg]
	}
	return true
}

func (c *CLI) stdin() io.Reader {
	if c.Stdin != nil {
		return c.Stdin
	}
	return os.Stdin
}

func (c *CLI) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}

func (c *CLI) stderr() io.Writer {
	if c.Stderr != nil {
		return c.Stderr
	}
	return os.Stderr
}
