// tetris is a falling-block puzzle for the terminal and the desktop.
//
// Usage:
//
//	tetris play           - Play in the terminal
//	tetris menu           - Pick a difficulty, then play
//	tetris gui            - Play in a window
//	tetris best [--reset] - Show or forget the best score
//	tetris sim            - Run headless random-input sessions
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 120)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-file <path>     - Log destination while a game is running
//	--debug               - Enable debug logging
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - a falling-block puzzle in your terminal",
	Long: `Tetris drops pieces from a 7-piece bag into a 10x24 well.
Complete rows to clear them; the game ends when a piece locks above the top.

Available commands:
  play   - Play in the terminal
  menu   - Pick a difficulty, then play
  gui    - Play in a desktop window
  best   - Show or reset the best score
  sim    - Soak-test the engine with random input

Examples:
  tetris play
  tetris play --difficulty hard
  tetris menu
  tetris gui --seed 42
  tetris best --reset
  tetris sim --sessions 16 --ticks 100000`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.tetris/tetris.log", "Log file used while a game is running")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the command logger. With toFile set the logger appends
// to --log-file so it never draws over a full-screen UI. The returned
// function closes the log file.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	done := func() {}
	if toFile {
		path := config.ExpandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		done = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, done, nil
}
