package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagConfig string
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up/W   - Jump (restart after game over)
  Left click   - Jump (restart after game over)
  Ctrl+S       - Save a screenshot to ~/.runner/screenshots
  Q/Ctrl+C     - Quit

Config lookup order:
  --config path, ~/.runner/configs/runner.yaml, ./configs/runner.yaml,
  then the built-in defaults.

Examples:
  runner play
  runner play --player alice
  runner play --config ./my-runner.yaml --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagPlayer, "player", currentPlayer(), "Name to record runs under")
}

func runPlay(_ *cobra.Command, _ []string) error {
	runnerCfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database, history disabled", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.Run(tui.Options{
		Runner:  runnerCfg,
		Runtime: rt,
		Store:   store,
		Player:  flagPlayer,
	})
	if runErr != nil {
		return fmt.Errorf("run game: %w", runErr)
	}
	return nil
}
