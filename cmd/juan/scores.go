package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/juan-jump/internal/games/juan"
	"github.com/vovakirdan/juan-jump/internal/platform/tui"
	"github.com/vovakirdan/juan-jump/internal/storage"
)

var (
	flagPlain       bool
	flagScoresLimit int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the leaderboard in an interactive table. Use Tab to switch between
top scores and recent games.

With --plain the top scores are printed as text instead, which is handy for
scripts and pipes. --clear wipes the score history together with the stored
best and last scores.

Examples:
  juan scores
  juan scores --plain --limit 20
  juan scores --clear
  juan scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	info, ok := gameInfo(juan.GameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: game %q is not registered\n", juan.GameID)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := clearScores(os.Stdout, store, info.ID, info.Title); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagPlain {
		if err := printScores(os.Stdout, store, info.ID, info.Title, flagScoresLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg := terminalConfig()
	if _, err := tui.RunScoreboard(info, store, cfg.ScreenW, cfg.ScreenH); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top scores of a game as a text table.
func printScores(w io.Writer, store *storage.Store, gameID, title string, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'juan play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %s\n", "Rank", "Score", "When")
	fmt.Fprintf(w, "  %-4s  %-12s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		when := "-"
		if !entry.CreatedAt.IsZero() {
			when = humanize.Time(entry.CreatedAt)
		}
		fmt.Fprintf(w, "  %-4d  %-12s  %s\n", i+1, humanize.Comma(int64(entry.Score)), when)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %s over %s games\n", humanize.Comma(int64(stats.HighScore)), humanize.Comma(int64(stats.GamesCount)))
	}
	return nil
}

// clearScores deletes the score history and stored values of a game.
func clearScores(w io.Writer, store *storage.Store, gameID, title string) error {
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared all scores for %s.\n", title)
	return nil
}
