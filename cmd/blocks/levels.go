package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long:  `Shows the levels found in the --levels directory, or the built-in levels.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	lvls, err := levelLoader().LoadAll()
	if err != nil {
		return err
	}

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println(levelsTable(lvls))
	fmt.Println()
	fmt.Println("Run 'blocks play <id>' to play a level.")
	return nil
}

// levelsTable renders the level list as a bordered table.
func levelsTable(lvls []levels.Level) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "Name", "Size", "Colours").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, l := range lvls {
		colours := "-"
		if len(l.Palette) > 0 {
			colours = strings.Join(l.Palette.Names(), ",")
		}
		t.Row(l.ID, l.Name, sizeString(l.Width, l.Height), colours)
	}
	return t.String()
}
