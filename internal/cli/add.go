package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridplan/pkg/editor"
	"github.com/matzehuels/gridplan/pkg/errors"
	"github.com/matzehuels/gridplan/pkg/grid"
	"github.com/matzehuels/gridplan/pkg/store"
)

// addCommand creates the add command for headless box insertion.
func (c *CLI) addCommand() *cobra.Command {
	var (
		title  string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Insert a box at the first free position",
		Long: `Insert a box at the first free position, scanning the grid top to
bottom and left to right. The save is validation-gated: the file is only
rewritten when the resulting layout passes every invariant.

If the file does not exist a fresh layout named after it is created.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAdd(cmd, args[0], title, width, height)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "box title (default: auto-generated)")
	cmd.Flags().IntVarP(&width, "width", "W", 4, "box width in cells")
	cmd.Flags().IntVarP(&height, "height", "H", 3, "box height in cells")

	return cmd
}

func (c *CLI) runAdd(cmd *cobra.Command, path, title string, width, height int) error {
	logger := loggerFromContext(cmd.Context())
	if err := errors.ValidateLayoutPath(path); err != nil {
		return err
	}

	layout, err := store.Load(path)
	if errors.Is(err, errors.ErrCodeLayoutNotFound) {
		layout = grid.NewLayout(layoutNameFromPath(path))
		logger.Debug("starting a fresh layout", "name", layout.Name)
	} else if err != nil {
		return err
	}

	ed := editor.New(layout)
	res, err := ed.NewBoxAt(title, width, height)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	if err := store.Save(path, ed.Layout()); err != nil {
		return err
	}
	prog.done("Saved " + path)

	printSuccess("added %q %d×%d at (%d,%d)", res.Box.Title, res.Box.W, res.Box.H, res.Box.X, res.Box.Y)
	printDetail("%d boxes in %s", len(ed.Layout().Boxes), path)
	return nil
}
