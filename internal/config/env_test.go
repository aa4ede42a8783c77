package config

import (
	"errors"
	"os"
	"testing"
	"time"
)

func TestLoadServerEnvDefaults(t *testing.T) {
	for _, key := range []string{"RUNNER_SSH_ADDR", "RUNNER_HOST_KEY", "RUNNER_DB", "RUNNER_CONFIG", "RUNNER_FPS", "RUNNER_IDLE_TIMEOUT"} {
		t.Setenv(key, "") // restores the original value on cleanup
		os.Unsetenv(key)
	}

	cfg, err := LoadServerEnv()
	if err != nil {
		t.Fatalf("LoadServerEnv() error: %v", err)
	}
	if cfg.Address != ":23234" || cfg.DBPath != "~/.runner/runs.db" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.TickRate != 60 || cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadServerEnvOverrides(t *testing.T) {
	t.Setenv("RUNNER_SSH_ADDR", ":2222")
	t.Setenv("RUNNER_FPS", "30")
	t.Setenv("RUNNER_IDLE_TIMEOUT", "5m")

	cfg, err := LoadServerEnv()
	if err != nil {
		t.Fatalf("LoadServerEnv() error: %v", err)
	}
	if cfg.Address != ":2222" || cfg.TickRate != 30 || cfg.IdleTimeout != 5*time.Minute {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadServerEnvRejectsBadRate(t *testing.T) {
	t.Setenv("RUNNER_FPS", "0")

	_, err := LoadServerEnv()
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Field != "RUNNER_FPS" {
		t.Errorf("expected RUNNER_FPS validation error, got %v", err)
	}
}
