package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/gui"
)

var flagScale int

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window.

Controls are the same as in the terminal; Shift also holds a piece.
Key releases are exact, so soft drop and auto-shift stop as soon as
the key goes up.

Examples:
  tetris gui
  tetris gui --scale 2`,
	Args: cobra.NoArgs,
	RunE: runGUI,
}

func init() {
	guiCmd.Flags().IntVar(&flagScale, "scale", 1, "Window scale factor")
}

func runGUI(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, err := openSession(logger, 0, 0)
	if err != nil {
		return err
	}
	defer sess.Close()

	logger.Info("starting window session", "seed", sess.runtime.Seed, "difficulty", flagDifficulty)
	return gui.Run(cmd.Context(), tetris.New(), sess.runtime, gui.Options{
		Store:  sess.store,
		Logger: logger,
		Scale:  flagScale,
	})
}
