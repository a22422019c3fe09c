package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blocks"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var flagGrid bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D  - Shift piece
  Up/W             - Rotate clockwise
  Down/S           - Soft drop
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save screenshot
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow start (700ms), speeds up every level
  normal - 500ms start, 20ms faster every level
  hard   - Fast start (300ms), 25ms faster every level
  fixed  - Keeps the starting speed

Examples:
  blockfall play
  blockfall play --difficulty easy
  blockfall play --seed 42 --log-file /tmp/blockfall.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagGrid, "grid", false, "Show dots in empty cells")
	menuCmd.Flags().BoolVar(&flagGrid, "grid", false, "Show dots in empty cells")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs go nowhere unless a file is set.
	logger, closer, err := newLogger(cfg.Logging, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	return playGame(cfg, terminalConfig(), logger)
}

// terminalConfig returns the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
}

// playGame runs one interactive session with cfg.
func playGame(cfg config.BlocksConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	logger.Info("starting", "cols", cfg.Field.Cols(), "rows", cfg.Field.Rows(),
		"interval_ms", cfg.Timing.InitialIntervalMs, "seed", rt.Seed)
	return tui.Run(blocks.OptionsFromConfig(cfg), rt, logger, tui.WithGrid(flagGrid))
}
