package cli

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridplan/internal/config"
	"github.com/matzehuels/gridplan/pkg/errors"
	"github.com/matzehuels/gridplan/pkg/grid"
	"github.com/matzehuels/gridplan/pkg/store"
)

// editCommand creates the edit command, the interactive grid editor.
func (c *CLI) editCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Open the interactive grid editor",
		Long: `Open the mouse-driven grid editor on a layout file.

Drag on empty space to create a box, drag a box to move it, and drag the
handles of the selected box to resize it. Boxes can never overlap or leave
the grid; illegal positions freeze in place until the pointer reaches a
legal one.

If the file does not exist it is created on the first save, with the layout
named after the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(args[0])
		},
	}
	return cmd
}

func (c *CLI) runEdit(path string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New(errors.ErrCodeNotTerminal, "edit needs an interactive terminal; use 'add' and 'remove' for scripting")
	}
	if err := errors.ValidateLayoutPath(path); err != nil {
		return err
	}

	cfg := c.loadConfig()

	layout, err := store.Load(path)
	switch {
	case errors.Is(err, errors.ErrCodeLayoutNotFound):
		layout = grid.NewLayout(layoutNameFromPath(path))
		c.Logger.Debug("starting a fresh layout", "name", layout.Name)
	case err != nil:
		return err
	default:
		if res := grid.ValidateLayout(layout); !res.Valid {
			for _, msg := range res.Errors {
				printError("%s", msg)
			}
			return errors.New(errors.ErrCodeInvalidLayout, "%s is not a valid layout; fix it or start a new file", path)
		}
	}

	c.Logger.Debug("opening editor", "path", path, "boxes", len(layout.Boxes))

	model := newEditorModel(path, layout, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "editor terminated abnormally")
	}
	return nil
}

// loadConfig reads the user config, warning and falling back to defaults
// when it is broken.
func (c *CLI) loadConfig() config.Config {
	path, err := config.Path()
	if err != nil {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		c.Logger.Warn("ignoring broken config", "err", errors.UserMessage(err))
	}
	return cfg
}

// layoutNameFromPath derives a layout name for fresh files: the base name
// without its extension.
func layoutNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
