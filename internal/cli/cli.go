// Package cli implements the gridplan command-line interface.
//
// This package provides commands for editing box layouts interactively in
// the terminal, validating and inspecting layout files, and making headless
// edits from scripts. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - edit: Open the interactive mouse-driven grid editor
//   - show: Print a layout's boxes and a static render of the grid
//   - validate: Run the full semantic gate against a layout file
//   - add: Insert a box at the first free position, headlessly
//   - remove: Delete a box by title, headlessly
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; the interactive editor logs around, never
// during, the Bubble Tea session, since both would fight over the terminal.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridplan/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "gridplan"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "gridplan",
		Short:        "Gridplan composes box layouts on a 24×24 grid",
		Long:         `Gridplan is a terminal editor for composing named layouts of non-overlapping rectangular boxes on a fixed 24×24 cell grid, with direct mouse manipulation and collision-free guarantees.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.editCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.completionCommand())

	return root
}
