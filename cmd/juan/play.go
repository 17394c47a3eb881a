package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/juan-jump/internal/audio"
	"github.com/vovakirdan/juan-jump/internal/core"
	"github.com/vovakirdan/juan-jump/internal/games/juan"
	"github.com/vovakirdan/juan-jump/internal/platform/tui"
	"github.com/vovakirdan/juan-jump/internal/registry"
	"github.com/vovakirdan/juan-jump/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Juan Jump",
	Long: `Start playing right away, skipping the title menu.

Controls:
  Space/Up/Enter - First touch (launches the ball)
  Left/Right/A/D - Tilt (hold to keep tilting)
  P              - Pause
  R              - Restart (after game over)
  Ctrl+S         - Save a screenshot to ~/.juan/screenshots
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - More platforms, more responsive tilt
  normal - Default tuning
  hard   - Fewer platforms, sluggish tilt

Examples:
  juan play
  juan play --difficulty easy
  juan play --config ./my-juan.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// terminalConfig builds the runtime config from the flags and terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, or returns nil and keeps going.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) {
	configureGame()

	if !registry.Exists(juan.GameID) {
		fmt.Fprintf(os.Stderr, "Error: game %q is not registered\n", juan.GameID)
		fmt.Fprintln(os.Stderr, "Run 'juan list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(juan.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	player := audio.NewPlayer(flagMute)

	runErr := tui.Run(game, terminalConfig(), tui.Options{Store: store, Player: player})

	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
