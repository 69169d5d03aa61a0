package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridplan/pkg/errors"
	"github.com/matzehuels/gridplan/pkg/grid"
	"github.com/matzehuels/gridplan/pkg/store"
)

// validateCommand creates the validate command, the semantic gate as a
// standalone check.
func (c *CLI) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a layout file against all grid invariants",
		Long: `Check a layout file against all grid invariants.

Structural problems (malformed JSON, wrong field types) and semantic ones
(out-of-bounds boxes, duplicate ids or titles, overlapping boxes) are both
reported. Exits non-zero when the layout is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}
	return cmd
}

func (c *CLI) runValidate(path string) error {
	layout, err := store.Load(path)
	if err != nil {
		return err
	}

	res := grid.ValidateLayout(layout)
	if res.Valid {
		printSuccess("%s is valid (%d boxes)", path, len(layout.Boxes))
		return nil
	}

	for _, msg := range res.Errors {
		printError("%s", msg)
	}
	return errors.New(errors.ErrCodeInvalidLayout, "%s has %d validation error(s)", path, len(res.Errors))
}
