package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play in the terminal",
	Long: `Show the start menu with the best score and a difficulty picker,
then start a terminal game with the chosen preset.

Examples:
  tetris menu`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
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

	preset, ok, err := tui.RunMenu(sess.runtime.BestScore, width, height, config.DifficultyPreset(flagDifficulty))
	if err != nil || !ok {
		return err
	}
	flagDifficulty = string(preset)
	tetris.SetDifficultyPreset(flagDifficulty)

	return playTerminal(sess, logger)
}
