package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D  - Move
  Up/W             - Rotate
  Down/S           - Soft drop (hold)
  Space            - Hard drop
  C                - Hold piece
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Terminals do not report key releases, so a key counts as held until
input.key_hold_ms passes without a repeat. Tapping a key again while it
is still held counts as a new press.

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --seed 7 --fps 60`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := terminalSize()
	sess, err := openSession(logger, width, height)
	if err != nil {
		return err
	}
	defer sess.Close()

	return playTerminal(sess, logger)
}

// terminalSize returns the size of stdout, or 80x24 if it is not a
// terminal.
func terminalSize() (width, height int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// playTerminal runs one terminal session until the player quits.
func playTerminal(sess *session, logger *log.Logger) error {
	game, err := registry.Create(tetris.ID)
	if err != nil {
		return err
	}

	logger.Info("starting terminal session", "seed", sess.runtime.Seed, "difficulty", flagDifficulty)
	return tui.Run(game, sess.runtime, tui.Options{
		Store:         sess.store,
		Logger:        logger,
		KeyHoldMS:     sess.cfg.Input.KeyHoldMS,
		ScreenshotDir: config.ExpandHome("~/.tetris/screenshots"),
	})
}
