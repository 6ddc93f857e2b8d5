package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/renato0307/hookline/internal/domain"
	"github.com/renato0307/hookline/internal/logging"
)

const (
	// ConfigName is the optional settings file looked up in the state directory
	ConfigName = "hookline"

	DefaultTimezone            = "America/Los_Angeles"
	DefaultTimezoneLabel       = "PST"
	DefaultRegistryLockTimeout = 250 * time.Millisecond
)

// Settings holds the resolved configuration for one invocation
type Settings struct {
	StateDir            string        `mapstructure:"state_dir"`
	PrimaryAgent        string        `mapstructure:"primary_agent"`
	AgentOverride       string        `mapstructure:"agent_override"`
	DelegateTool        string        `mapstructure:"delegate_tool"`
	TerminalEvents      []string      `mapstructure:"terminal_events"`
	FallbackSessionID   string        `mapstructure:"fallback_session_id"`
	Timezone            string        `mapstructure:"timezone"`
	TimezoneLabel       string        `mapstructure:"timezone_label"`
	RegistryLockTimeout time.Duration `mapstructure:"registry_lock_timeout"`
	MaxPayloadBytes     int64         `mapstructure:"max_payload_bytes"`

	Debug       bool   `mapstructure:"debug"`
	DebugFile   string `mapstructure:"debug_file"`
	MaxLogFiles int    `mapstructure:"max_log_files"`

	// ConfigFile is the settings file that was read, if any
	ConfigFile string `mapstructure:"-"`
}

// Default returns Settings with default values
func Default() *Settings {
	return &Settings{
		StateDir:            DefaultStateDir(),
		PrimaryAgent:        domain.DefaultPrimaryAgent,
		DelegateTool:        domain.DefaultDelegateTool,
		TerminalEvents:      append([]string(nil), domain.DefaultTerminalEvents...),
		FallbackSessionID:   domain.DefaultFallbackSessionID,
		Timezone:            DefaultTimezone,
		TimezoneLabel:       DefaultTimezoneLabel,
		RegistryLockTimeout: DefaultRegistryLockTimeout,
		MaxPayloadBytes:     domain.DefaultMaxPayloadBytes,
		MaxLogFiles:         logging.DefaultMaxLogFiles,
	}
}

// LoadSettings resolves settings from defaults, the environment and an
// optional $PAI_DIR/hookline.yaml, in increasing order of precedence
// except that environment variables win over the file.
func LoadSettings() (*Settings, error) {
	v := viper.New()
	cfg := Default()

	v.SetEnvPrefix("HOOKLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Host-facing variables keep their established names
	_ = v.BindEnv("state_dir", "PAI_DIR")
	_ = v.BindEnv("agent_override", "CLAUDE_CODE_AGENT")

	v.SetDefault("state_dir", cfg.StateDir)
	v.SetDefault("primary_agent", cfg.PrimaryAgent)
	v.SetDefault("agent_override", "")
	v.SetDefault("delegate_tool", cfg.DelegateTool)
	v.SetDefault("terminal_events", cfg.TerminalEvents)
	v.SetDefault("fallback_session_id", cfg.FallbackSessionID)
	v.SetDefault("timezone", cfg.Timezone)
	v.SetDefault("timezone_label", cfg.TimezoneLabel)
	v.SetDefault("registry_lock_timeout", cfg.RegistryLockTimeout)
	v.SetDefault("max_payload_bytes", cfg.MaxPayloadBytes)
	v.SetDefault("debug", false)
	v.SetDefault("debug_file", "")
	v.SetDefault("max_log_files", cfg.MaxLogFiles)

	// The settings file lives inside the state directory, so resolve that first
	stateDir := ExpandPath(v.GetString("state_dir"))
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(stateDir)

	// A broken settings file is reported but defaults and the environment
	// still apply, so capture keeps writing where PAI_DIR points
	var fileErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fileErr = fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		cfg = Default()
		fileErr = errors.Join(fileErr, fmt.Errorf("failed to decode settings: %w", err))
	}
	if fileErr == nil {
		cfg.ConfigFile = v.ConfigFileUsed()
	}
	cfg.StateDir = stateDir
	cfg.normalize()

	return cfg, fileErr
}

// normalize restores defaults for values that must never be blank
func (s *Settings) normalize() {
	def := Default()
	s.PrimaryAgent = strings.TrimSpace(s.PrimaryAgent)
	if s.PrimaryAgent == "" {
		s.PrimaryAgent = def.PrimaryAgent
	}
	s.AgentOverride = strings.TrimSpace(s.AgentOverride)
	if s.DelegateTool == "" {
		s.DelegateTool = def.DelegateTool
	}
	if len(s.TerminalEvents) == 0 {
		s.TerminalEvents = def.TerminalEvents
	}
	if s.FallbackSessionID == "" {
		s.FallbackSessionID = def.FallbackSessionID
	}
	if s.Timezone == "" {
		s.Timezone = def.Timezone
	}
	if s.RegistryLockTimeout < 0 {
		s.RegistryLockTimeout = 0
	}
	if s.MaxPayloadBytes <= 0 {
		s.MaxPayloadBytes = def.MaxPayloadBytes
	}
}

// Location returns the timezone used for timestamps and log partitions.
// An unknown zone falls back to a fixed UTC-8 offset so the output never
// depends on the host's local timezone.
func (s *Settings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		logging.Logger.Warnw("Unknown timezone, using fixed UTC-8", "timezone", s.Timezone, "error", err)
		label := s.TimezoneLabel
		if label == "" {
			label = DefaultTimezoneLabel
		}
		return time.FixedZone(label, -8*60*60)
	}
	return loc
}
