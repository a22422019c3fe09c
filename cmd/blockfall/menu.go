package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play",
	Long: `Start with an interactive difficulty picker.

After a game is quit you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Q/Esc        - Quit

Examples:
  blockfall menu
  blockfall menu --seed 7`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	base, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(base.Logging, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	rt := terminalConfig()
	initial, _ := config.ParsePreset(flagDifficulty)
	for {
		result, err := tui.RunMenu(rt, initial)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		rt = result.Config
		initial = result.Preset

		cfg := base
		config.ApplyPreset(&cfg, result.Preset)
		if err := playGame(cfg, rt, logger); err != nil {
			return err
		}
	}
}
