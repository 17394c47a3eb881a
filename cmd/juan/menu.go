package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/juan-jump/internal/audio"
	"github.com/vovakirdan/juan-jump/internal/games/juan"
	"github.com/vovakirdan/juan-jump/internal/platform/tui"
	"github.com/vovakirdan/juan-jump/internal/registry"
)

// runMenu loops over the title menu until the player quits.
func runMenu(_ *cobra.Command, _ []string) {
	configureGame()

	info, ok := gameInfo(juan.GameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: game %q is not registered\n", juan.GameID)
		os.Exit(1)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	player := audio.NewPlayer(flagMute)
	defer player.Close()

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(info, store, cfg)
		if err != nil {
			log.Error("menu failed", "error", err)
			return
		}
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoiceScores:
			goBack, sbErr := tui.RunScoreboard(info, store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				log.Error("scoreboard failed", "error", sbErr)
			}
			if !goBack {
				return
			}

		case tui.ChoicePlay:
			game, err := registry.Create(info.ID)
			if err != nil {
				log.Error("cannot create game", "error", err)
				return
			}
			result, err := tui.RunFromMenu(game, cfg, tui.Options{Store: store, Player: player})
			if err != nil {
				log.Error("game failed", "error", err)
				return
			}
			cfg = result.Config
			if !result.BackToMenu {
				return
			}

		default:
			return
		}
	}
}

// gameInfo looks up a registered game's metadata.
func gameInfo(id string) (registry.GameInfo, bool) {
	if !registry.Exists(id) {
		return registry.GameInfo{}, false
	}
	for _, g := range registry.List() {
		if g.ID == id {
			return g, true
		}
	}
	return registry.GameInfo{}, false
}
