package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/renato0307/hookline/internal/domain"
	"github.com/renato0307/hookline/internal/logging"
)

// CaptureCmd records one hook event read from stdin.
// It never fails the host: every problem becomes a diagnostic on stderr.
type CaptureCmd struct {
	EventType string `name:"event-type" help:"Hook event type: PreToolUse, PostToolUse, Stop, SubagentStop, ..." placeholder:"TYPE"`
}

// Run executes the capture command
func (c *CaptureCmd) Run(cli *CLI) error {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Errorw("Recovered from panic during capture", "panic", r)
			fmt.Fprintf(cli.stderr(), "Event capture error: %v\n", r)
		}
	}()

	logging.Logger.Debugw("Hook invoked",
		"event", c.EventType,
		"pid", os.Getpid(),
		"ppid", os.Getppid())

	if err := c.capture(cli); err != nil {
		logging.Logger.Errorw("Failed to capture hook event", "event", c.EventType, "error", err)
		fmt.Fprintln(cli.stderr(), diagnostic(err))
	}
	return nil // Don't fail the hook on capture errors
}

func (c *CaptureCmd) capture(cli *CLI) error {
	// Checked before stdin so a missing flag never blocks on input
	if strings.TrimSpace(c.EventType) == "" {
		return domain.ErrMissingEventType
	}

	stdin := cli.stdin()
	if f, ok := stdin.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return domain.ErrInteractiveStdin
	}

	if cli.Container == nil {
		return errors.New("not initialized")
	}

	_, err := cli.Container.CaptureService.Capture(context.Background(), c.EventType, stdin)
	return err
}

func diagnostic(err error) string {
	if errors.Is(err, domain.ErrMissingEventType) {
		return "Missing --event-type argument"
	}
	return fmt.Sprintf("Event capture error: %v", err)
}
