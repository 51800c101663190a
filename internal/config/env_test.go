package config

import (
	"testing"
)

func TestEnvOverrides_Runtime(t *testing.T) {
	cfg := &Config{Runtime: RuntimeDocker}
	t.Setenv("TUXDOCK_RUNTIME", "auto")

	applyEnvOverrides(cfg)

	if cfg.Runtime != RuntimeAuto {
		t.Errorf("expected Runtime to be 'auto', got '%s'", cfg.Runtime)
	}
}

func TestEnvOverrides_Shell(t *testing.T) {
	cfg := &Config{Shell: "/bin/sh"}
	t.Setenv("TUXDOCK_SHELL", "/bin/ash")

	applyEnvOverrides(cfg)

	if cfg.Shell != "/bin/ash" {
		t.Errorf("expected Shell to be '/bin/ash', got '%s'", cfg.Shell)
	}
}

func TestEnvOverrides_LogLevel(t *testing.T) {
	cfg := &Config{LogLevel: "warn"}
	t.Setenv("TUXDOCK_LOG_LEVEL", "debug")

	applyEnvOverrides(cfg)

	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel to be 'debug', got '%s'", cfg.LogLevel)
	}
}

func TestEnvOverrides_EmptyNoChange(t *testing.T) {
	cfg := &Config{
		Runtime:  RuntimePodman,
		Shell:    "original-shell",
		LogLevel: "original-level",
	}
	t.Setenv("TUXDOCK_RUNTIME", "")
	t.Setenv("TUXDOCK_SHELL", "")
	t.Setenv("TUXDOCK_LOG_LEVEL", "")

	applyEnvOverrides(cfg)

	if cfg.Runtime != RuntimePodman {
		t.Errorf("expected Runtime to remain 'podman', got '%s'", cfg.Runtime)
	}
	if cfg.Shell != "original-shell" {
		t.Errorf("expected Shell to remain 'original-shell', got '%s'", cfg.Shell)
	}
	if cfg.LogLevel != "original-level" {
		t.Errorf("expected LogLevel to remain 'original-level', got '%s'", cfg.LogLevel)
	}
}
