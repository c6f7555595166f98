package ggspy

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.WatchdogTimeout != DefaultWatchdogTimeout {
		t.Errorf("WatchdogTimeout = %v, want %v", cfg.WatchdogTimeout, DefaultWatchdogTimeout)
	}
	if cfg.CommandCeiling != DefaultCommandCeiling {
		t.Errorf("CommandCeiling = %d, want %d", cfg.CommandCeiling, DefaultCommandCeiling)
	}
	if cfg.QuickCapture {
		t.Error("QuickCapture = true, want false")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GGSPY_WATCHDOG_TIMEOUT", "2s")
	t.Setenv("GGSPY_COMMAND_CEILING", "100")
	t.Setenv("GGSPY_QUICK_CAPTURE", "true")
	t.Setenv("GGSPY_CONTEXT_KIND", "webgl2")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() = %v, want nil", err)
	}
	if cfg.WatchdogTimeout != 2*time.Second {
		t.Errorf("WatchdogTimeout = %v, want 2s", cfg.WatchdogTimeout)
	}
	if cfg.CommandCeiling != 100 {
		t.Errorf("CommandCeiling = %d, want 100", cfg.CommandCeiling)
	}
	if !cfg.QuickCapture {
		t.Error("QuickCapture = false, want true")
	}
	if cfg.ContextKind != "webgl2" {
		t.Errorf("ContextKind = %q, want %q", cfg.ContextKind, "webgl2")
	}
}

func TestConfigFromEnvInvalidValue(t *testing.T) {
	t.Setenv("GGSPY_WATCHDOG_TIMEOUT", "soon")

	cfg, err := ConfigFromEnv()
	if err == nil {
		t.Fatal("ConfigFromEnv() = nil error, want parse failure")
	}
	// The fallback config is still usable.
	if cfg.WatchdogTimeout != DefaultWatchdogTimeout {
		t.Errorf("fallback WatchdogTimeout = %v, want %v", cfg.WatchdogTimeout, DefaultWatchdogTimeout)
	}
}

func TestConfigNormalized(t *testing.T) {
	cfg := Config{WatchdogTimeout: -time.Second, CommandCeiling: 0}.normalized()
	if cfg.WatchdogTimeout != DefaultWatchdogTimeout {
		t.Errorf("WatchdogTimeout = %v, want %v", cfg.WatchdogTimeout, DefaultWatchdogTimeout)
	}
	if cfg.CommandCeiling != DefaultCommandCeiling {
		t.Errorf("CommandCeiling = %d, want %d", cfg.CommandCeiling, DefaultCommandCeiling)
	}

	custom := Config{WatchdogTimeout: time.Minute, CommandCeiling: 42}.normalized()
	if custom.WatchdogTimeout != time.Minute || custom.CommandCeiling != 42 {
		t.Errorf("normalized() altered valid limits: %+v", custom)
	}
}
