package cmd

import (
	"github.com/benbjohnson/clock"

	"github.com/renato0307/hookline/internal/adapters/eventlog"
	"github.com/renato0307/hookline/internal/adapters/registry"
	"github.com/renato0307/hookline/internal/config"
	"github.com/renato0307/hookline/internal/logging"
	"github.com/renato0307/hookline/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	AttributionResolver *services.AttributionResolver
	CaptureService      *services.CaptureService

	// Adapters, exposed for the inspection commands
	EventLog *eventlog.JSONLWriter
	Registry *registry.JSONRegistry

	Settings *config.Settings
}

// NewContainer creates a new Container with all dependencies wired.
// Nothing here touches the filesystem, so it cannot fail.
func NewContainer(settings *config.Settings, clk clock.Clock) *Container {
	if settings == nil {
		settings = config.Default()
	}
	if clk == nil {
		clk = clock.New()
	}

	loc := settings.Location()

	// Create adapters
	sessionRegistry := registry.NewJSONRegistry(settings.RegistryPath(), settings.RegistryLockTimeout)
	eventLog := eventlog.NewJSONLWriter(settings.EventsRoot(), loc)

	// Create services
	resolver := services.NewAttributionResolver(sessionRegistry, services.AttributionConfig{
		AgentOverride:  settings.AgentOverride,
		DelegateTool:   settings.DelegateTool,
		PrimaryAgent:   settings.PrimaryAgent,
		TerminalEvents: settings.TerminalEvents,
	})
	captureService := services.NewCaptureService(resolver, eventLog, clk, services.CaptureOptions{
		FallbackSessionID: settings.FallbackSessionID,
		Location:          loc,
		MaxPayloadBytes:   settings.MaxPayloadBytes,
		ZoneLabel:         settings.TimezoneLabel,
	})

	logging.Logger.Debugw("Container initialized",
		"state_dir", settings.StateDir,
		"registry", settings.RegistryPath(),
		"primary_agent", settings.PrimaryAgent,
		"timezone", loc.String())

	return &Container{
		AttributionResolver: resolver,
		CaptureService:      captureService,
		EventLog:            eventLog,
		Registry:            sessionRegistry,
		Settings:            settings,
	}
}
