// juan is Juan Jump, a tilt-steered bouncing-ball climber for the terminal.
//
// Usage:
//
//	juan                 - Title menu: play, high scores, quit
//	juan play            - Play straight away
//	juan sim             - Run a headless session with scripted tilt
//	juan scores          - Show high scores
//	juan serve           - Start SSH server for remote play
//	juan list            - List registered games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.juan/scores.db)
//	--log-level <level>  - debug, info, warn, error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/juan-jump/internal/games/juan"
	"github.com/vovakirdan/juan-jump/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "juan",
	Short: "Juan Jump - bounce your way up in the terminal",
	Long: `Juan Jump is a bouncing-ball climber. Tilt left and right to steer the
ball across platforms while the world scrolls down beneath it. Breakable
platforms crumble after one bounce, moving ones sweep across the screen and
power-ups launch a super jump. Fall off the bottom and the game is over.

Available commands:
  play     - Play a game directly
  sim      - Headless run with scripted tilt
  scores   - View high scores
  serve    - Start SSH server for remote play
  list     - Show registered games

Run without a command to open the title menu.

Examples:
  juan
  juan play --difficulty hard
  juan sim --ticks 3600 --seed 7
  juan serve --ssh :2222
  juan scores --plain`,
	PersistentPreRunE: setupLogging,
	Run:               runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging installs the default logger at the requested level.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "juan",
		Level:           level,
	}))
	return nil
}

// configureGame hands the config path and difficulty to the game before it is created.
func configureGame() {
	juan.SetConfigPath(flagConfig)
	if flagDifficulty != "" {
		juan.SetDifficultyPreset(flagDifficulty)
	}
}
