package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridplan/pkg/grid"
	"github.com/matzehuels/gridplan/pkg/store"
)

// showCommand creates the show command, a non-interactive layout dump.
func (c *CLI) showCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a layout's boxes and a static render of the grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(args[0])
		},
	}
	return cmd
}

func (c *CLI) runShow(path string) error {
	layout, err := store.Load(path)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(layout.Name))
	fmt.Println()

	rows := make([][]string, len(layout.Boxes))
	for i, b := range layout.Boxes {
		rows[i] = []string{
			b.ID,
			b.Title,
			fmt.Sprintf("(%d,%d)", b.X, b.Y),
			fmt.Sprintf("%d×%d", b.W, b.H),
			strconv.Itoa(b.W * b.H),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("ID", "Title", "Position", "Size", "Cells").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			if col == 0 {
				return StyleDim
			}
			return StyleValue
		})
	fmt.Println(t.Render())

	cfg := c.loadConfig()
	view := gridView{CellW: cfg.Grid.CellWidth, CellH: cfg.Grid.CellHeight}
	fmt.Println(styleGridFrame.Render(view.Render(layout)))

	if res := grid.ValidateLayout(layout); !res.Valid {
		fmt.Println()
		printWarning("layout has %d validation problem(s); run 'gridplan validate %s'", len(res.Errors), path)
	}
	return nil
}
