package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board interactively",
	Long: `Start with a board picker listing a random board and every level.
After a game ends, you return to the picker to play again.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select board
  Esc/Q        - Quit

Examples:
  blocks menu
  blocks menu --levels ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	lvls, err := levelLoader().LoadAll()
	if err != nil {
		return err
	}
	items := make([]tui.MenuItem, len(lvls))
	for i, l := range lvls {
		items[i] = tui.MenuItem{ID: l.ID, Title: l.Name, Size: sizeString(l.Width, l.Height)}
	}

	blocksCfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
		blocksCfg = config.DefaultBlocksConfig()
	}
	randomSize := sizeString(blocksCfg.Grid.Width, blocksCfg.Grid.Height)

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(items, randomSize, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		if result.Quit {
			return nil
		}
		cfg = result.Config

		if err := playBoard(result.LevelID, cfg, logger); err != nil {
			return err
		}
	}
}

func sizeString(w, h int) string {
	return strconv.Itoa(w) + "x" + strconv.Itoa(h)
}
