package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/juan-jump/internal/games/juan"
	"github.com/vovakirdan/juan-jump/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Juan Jump SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own single-player session with the title menu.
Scores are stored per-server (all users share the same leaderboard). Sound is
disabled for remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.juan/host_key

Examples:
  juan serve                           # Listen on :23234 with auto-generated key
  juan serve --ssh :2222               # Listen on port 2222
  juan serve --host-key ./my_host_key  # Use specific host key
  juan serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.GameID = juan.GameID
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	cfg.HostKeyPath = flagHostKey

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		log.Fatal("could not create server", "error", err)
	}

	fmt.Printf("Starting Juan Jump SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server error", "error", err)
	}
}
