package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeConfig string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the runner SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own run under its SSH user name.
Runs are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.runner/host_key

Examples:
  runner serve                           # Listen on :23234 with auto-generated key
  runner serve --ssh :2222               # Listen on port 2222
  runner serve --host-key ./my_host_key  # Use specific host key
  runner serve --db ./runs.db            # Use specific database

Environment:
  RUNNER_SSH_ADDR, RUNNER_HOST_KEY, RUNNER_DB, RUNNER_CONFIG, RUNNER_FPS
  and RUNNER_IDLE_TIMEOUT (e.g. "45m") provide defaults; flags win.

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to runner config YAML shared by all sessions")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	envCfg, err := config.LoadServerEnv()
	if err != nil {
		return fmt.Errorf("server environment: %w", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     envCfg.Address,
		HostKeyPath: envCfg.HostKeyPath,
		DBPath:      envCfg.DBPath,
		ConfigPath:  envCfg.ConfigPath,
		TickRate:    envCfg.TickRate,
		IdleTimeout: envCfg.IdleTimeout,
	}

	// Explicit flags override the environment
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("config") {
		cfg.ConfigPath = flagServeConfig
	}
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	fmt.Printf("Starting runner SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
