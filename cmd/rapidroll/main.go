// rapidroll is a Rapid Roll-style vertical climber for the terminal.
//
// Usage:
//
//	rapidroll play           - Play in this terminal
//	rapidroll scores         - Show the high score table
//	rapidroll serve          - Start SSH server for remote play
//	rapidroll config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - easy, normal or hard
//	--scores <path>      - High score file (.json) or database (.db, .sqlite)
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rapidroll/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagScores     string
	flagFPS        int
	flagSeed       int64
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rapidroll",
	Short: "Rapid Roll - climb, dodge and survive in your terminal",
	Long: `Rapid Roll is a vertical climber: land on drifting and vanishing
platforms, dodge falling and patrolling hazards and collect power-ups
before the level clock runs out.

Available commands:
  play     - Play in this terminal
  scores   - View or clear high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  rapidroll play
  rapidroll play --level 3 --difficulty hard
  rapidroll scores --scores ~/.rapidroll/scores.db
  rapidroll serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagScores, "scores", "~/.rapidroll/scores.json", "High score file (.json) or database (.db, .sqlite)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. The returned function closes the
// log file, if any.
func newLogger(prefix string) (*log.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadGameConfig loads the config named by --config and applies --difficulty.
func loadGameConfig() (config.RapidRollConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.RapidRollConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
