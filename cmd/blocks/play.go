package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level or a random board",
	Long: `Start playing. Without a level ID a random board is generated from the
config (size and palette).

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Enter/Space/Click - Select the block under the cursor or pointer
  R                 - New board
  P                 - Pause
  ?                 - Show all keys
  Esc/B             - Leave the board
  Q/Ctrl+C          - Quit

Examples:
  blocks play
  blocks play 03_checker
  blocks play --seed 7 --config ./my-blocks.yaml
  blocks play --log-level debug --log-file blocks.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
		// Fail before taking over the terminal.
		if _, err := levelLoader().LoadByID(levelID); err != nil {
			return fmt.Errorf("%w (run 'blocks levels' to see available levels)", err)
		}
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	return playBoard(levelID, runtimeConfig(), logger)
}

// playBoard runs one game of the given level, or a random board for an empty ID.
func playBoard(levelID string, cfg core.RuntimeConfig, logger *log.Logger) error {
	blocks.SetLogger(logger)
	blocks.SetConfigPath(flagConfig)
	blocks.SetLevelsDir(flagLevelsDir)
	blocks.SetLevel(levelID)

	game, err := registry.Create("blocks")
	if err != nil {
		return err
	}

	return tui.Run(game, cfg, logger)
}
