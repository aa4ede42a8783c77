package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagScoresUser  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs.

Examples:
  runner scores
  runner scores --limit 25
  runner scores --player alice
  runner scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a scrollable table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresUser, "player", "", "Only show runs of this player")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open runs database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		player := flagScoresUser
		if player == "" {
			player = currentPlayer()
		}
		return tui.RunScoreboard(store, player, width, height)
	}

	var runs []storage.Run
	if flagScoresUser != "" {
		runs, err = store.PlayerRuns(flagScoresUser, flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieve runs: %w", err)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-6s  %s\n", "Rank", "Player", "Score", "Finds", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %-6s  %s\n",
			i+1, r.Player, r.Score, r.Discoveries,
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show high score
	fmt.Println()
	if flagScoresUser != "" {
		if best, bestErr := store.PlayerBest(flagScoresUser); bestErr == nil {
			fmt.Printf("Best (%s): %d\n", flagScoresUser, best)
		}
		return nil
	}
	if best, bestErr := store.HighScore(); bestErr == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}
