// runner is an endless side-scrolling jump game for the terminal.
//
// Usage:
//
//	runner play              - Play a run
//	runner scores            - Show the best runs
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible entity shapes
//	--db <path>     - Set database path (default: ~/.runner/runs.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

// logger writes CLI diagnostics to stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "runner",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - jump over obstacles in your terminal",
	Long: `Runner is a side-scrolling reflex game for the terminal.
Jump over incoming obstacles, grab discovery points for bonus score
and see how far you get.

Available commands:
  play     - Start a run
  scores   - View the best runs
  serve    - Start SSH server for remote play

Examples:
  runner play
  runner play --config ./my-runner.yaml
  runner scores --interactive
  runner serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/runs.db", "Path to run history database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// currentPlayer returns the name runs are recorded under.
func currentPlayer() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
