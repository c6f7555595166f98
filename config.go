package ggspy

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Defaults for capture orchestration.
const (
	// DefaultCommandCeiling is the hard upper bound on the number of
	// calls a single capture may record. Requested call-count bounds
	// are clamped to the configured ceiling to bound memory.
	DefaultCommandCeiling = 5000

	// DefaultWatchdogTimeout is how long a session may wait for
	// activity (across retries) before it is declared stalled.
	DefaultWatchdogTimeout = 10 * time.Second
)

// Config holds Manager defaults. Zero-value fields fall back to the
// package defaults; functional options override Config.
type Config struct {
	// WatchdogTimeout bounds the total wall-clock wait for activity.
	WatchdogTimeout time.Duration `env:"GGSPY_WATCHDOG_TIMEOUT" envDefault:"10s"`

	// CommandCeiling caps requested call-count bounds and the spy
	// rolling window.
	CommandCeiling int `env:"GGSPY_COMMAND_CEILING" envDefault:"5000"`

	// QuickCapture makes quick mode the default for sessions that do
	// not request it explicitly.
	QuickCapture bool `env:"GGSPY_QUICK_CAPTURE" envDefault:"false"`

	// ContextKind, when set, is probed before the standard context
	// kind fallback order.
	ContextKind string `env:"GGSPY_CONTEXT_KIND"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		WatchdogTimeout: DefaultWatchdogTimeout,
		CommandCeiling:  DefaultCommandCeiling,
	}
}

// ConfigFromEnv builds a Config from GGSPY_* environment variables,
// falling back to defaults for unset variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("ggspy: parse env: %w", err)
	}
	return cfg.normalized(), nil
}

// normalized replaces non-positive limits with the package defaults.
func (c Config) normalized() Config {
	if c.WatchdogTimeout <= 0 {
		c.WatchdogTimeout = DefaultWatchdogTimeout
	}
	if c.CommandCeiling <= 0 {
		c.CommandCeiling = DefaultCommandCeiling
	}
	return c
}
