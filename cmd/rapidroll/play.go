package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rapidroll/internal/audio"
	"github.com/vovakirdan/tui-rapidroll/internal/core"
	"github.com/vovakirdan/tui-rapidroll/internal/platform/tui"
)

var (
	flagLevel int
	flagMute  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Rapid Roll",
	Long: `Start Rapid Roll in this terminal.

Controls:
  Left/Right, A/D  - Move
  Space, Up/W      - Jump off a platform
  Enter            - Confirm
  Esc/B            - Back
  P                - Pause
  R                - Restart
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, 150s per level, slower obstacles
  normal - 3 lives, 120s per level
  hard   - 2 lives, 90s per level, faster obstacles

Examples:
  rapidroll play
  rapidroll play --level 3
  rapidroll play --difficulty hard --mute
  rapidroll play --config ./my-rapidroll.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly at this level (0 = show the menus)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := playGame(); err != nil {
		exitf("%v", err)
	}
}

// playGame runs a session and returns once every deferred cleanup has run,
// so the log file and audio device are closed before the process exits.
func playGame() error {
	logger, closeLog, err := newLogger("rapidroll")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig()
	if err != nil {
		logger.Error("loading config", "error", err)
		return err
	}
	if flagLevel < 0 || flagLevel > cfg.Level.MaxSelectableLevel {
		return fmt.Errorf("level must be between 1 and %d", cfg.Level.MaxSelectableLevel)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tui.Options{
		Runtime:    rt,
		Logger:     logger,
		StartLevel: flagLevel,
	}

	// Continue without storage - game still works
	scores, err := openScores(flagScores, nil, logger)
	if err != nil {
		logger.Warn("could not open high scores", "path", flagScores, "error", err)
	} else {
		opts.Board = scores.board
		defer scores.Close()
	}

	sound := audio.New(flagMute, logger)
	defer sound.Close()
	opts.Sound = sound

	// The terminal belongs to the game from here on.
	if flagLogFile == "" {
		logger.SetOutput(io.Discard)
	}

	if err := tui.Run(cfg, opts); err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
