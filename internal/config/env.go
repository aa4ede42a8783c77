package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerEnv holds SSH server settings read from the environment.
// Command-line flags take precedence when set.
type ServerEnv struct {
	Address     string        `env:"RUNNER_SSH_ADDR"     envDefault:":23234"`
	HostKeyPath string        `env:"RUNNER_HOST_KEY"`
	DBPath      string        `env:"RUNNER_DB"           envDefault:"~/.runner/runs.db"`
	ConfigPath  string        `env:"RUNNER_CONFIG"`
	TickRate    int           `env:"RUNNER_FPS"          envDefault:"60"`
	IdleTimeout time.Duration `env:"RUNNER_IDLE_TIMEOUT" envDefault:"30m"`
}

// LoadServerEnv parses ServerEnv from environment variables.
func LoadServerEnv() (ServerEnv, error) {
	var cfg ServerEnv
	if err := env.Parse(&cfg); err != nil {
		return ServerEnv{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TickRate <= 0 {
		return ServerEnv{}, ValidationError{Field: "RUNNER_FPS", Message: "must be positive"}
	}
	return cfg, nil
}
