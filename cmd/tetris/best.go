package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show or reset the best score",
	Long: `Print the persisted best score and where it is stored.

The backend (score file or SQLite) comes from the storage section of
the config.

Examples:
  tetris best
  tetris best --reset`,
	Args: cobra.NoArgs,
	RunE: runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Forget the best score")
}

func runBest(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := storage.OpenBest(cfg.Storage, tetris.ID, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagReset {
		if err := store.ResetBest(); err != nil {
			return err
		}
		fmt.Fprintf(out, "Best score reset (%s)\n", store.Location())
		return nil
	}

	fmt.Fprintf(out, "Best score: %d\n", store.LoadBest())
	fmt.Fprintf(out, "Stored in:  %s\n", store.Location())
	return nil
}
