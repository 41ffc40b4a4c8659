package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rapidroll/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Rapid Roll SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game. Scores are stored
per-server (all users share the same high score table).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.rapidroll/host_key

Examples:
  rapidroll serve                           # Listen on :23234 with auto-generated key
  rapidroll serve --ssh :2222               # Listen on port 2222
  rapidroll serve --host-key ./my_host_key  # Use specific host key
  rapidroll serve --scores ./scores.db      # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("rapidroll-ssh")
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	gameCfg, err := loadGameConfig()
	if err != nil {
		exitf("%v", err)
	}

	scores, err := openScores(flagScores, nil, logger)
	if err != nil {
		exitf("opening high scores: %v", err)
	}
	defer scores.Close()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, gameCfg, scores.board, logger)
	if err != nil {
		scores.Close()
		exitf("creating server: %v", err)
	}

	fmt.Printf("Starting Rapid Roll SSH server on %s\n", cfg.Address)
	fmt.Printf("High scores: %s\n", scores.path)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		scores.Close()
		exitf("server: %v", err)
	}
}
