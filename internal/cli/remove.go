package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridplan/pkg/errors"
	"github.com/matzehuels/gridplan/pkg/store"
)

// removeCommand creates the remove command for headless box deletion.
func (c *CLI) removeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <file> <title>",
		Short: "Delete a box by title",
		Long: `Delete the box whose title matches, ignoring case and surrounding
whitespace. The save is validation-gated like every other write.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRemove(cmd, args[0], args[1])
		},
	}
	return cmd
}

func (c *CLI) runRemove(cmd *cobra.Command, path, title string) error {
	logger := loggerFromContext(cmd.Context())

	layout, err := store.Load(path)
	if err != nil {
		return err
	}

	box, ok := layout.BoxByTitle(title)
	if !ok {
		return errors.New(errors.ErrCodeBoxNotFound, "no box titled %q in %s", title, path)
	}
	layout = layout.WithoutBox(box.ID)

	prog := newProgress(logger)
	if err := store.Save(path, layout); err != nil {
		return err
	}
	prog.done("Saved " + path)

	printSuccess("removed %q", box.Title)
	printDetail("%d boxes left in %s", len(layout.Boxes), path)
	return nil
}
