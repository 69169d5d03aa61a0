package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridplan/internal/config"
	"github.com/matzehuels/gridplan/pkg/editor"
	"github.com/matzehuels/gridplan/pkg/errors"
	"github.com/matzehuels/gridplan/pkg/grid"
	"github.com/matzehuels/gridplan/pkg/store"
)

// The grid content is drawn inside a border below the title bar. These
// offsets convert terminal (col, row) into grid-local coordinates.
const (
	gridOriginX = 1 // border left edge
	gridOriginY = 2 // title line + border top edge
)

// Terminal cells have no pixels, so the mouse position is reported to the
// editor in nominal ones. The values only need to be consistent: with a
// 10×20 cell, one cell of travel is always comfortably past the default
// drag threshold, so box drags engage on the first cell boundary crossed.
const (
	pixelsPerCol = 10
	pixelsPerRow = 20
)

// Default size for boxes created with the keyboard.
const (
	defaultBoxW = 4
	defaultBoxH = 3
)

// =============================================================================
// Key Bindings
// =============================================================================

// keymap declares the editor's key bindings for bubbles/help.
type keymap struct {
	Move   key.Binding
	Resize key.Binding
	New    key.Binding
	Rename key.Binding
	Delete key.Binding
	Cycle  key.Binding
	Save   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

func newKeymap() keymap {
	return keymap{
		Move:   key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("↑↓←→", "move")),
		Resize: key.NewBinding(key.WithKeys("shift+up", "shift+down", "shift+left", "shift+right"), key.WithHelp("shift+↑↓←→", "resize")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new box")),
		Rename: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Cycle:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next box")),
		Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Rename, k.Delete, k.Cycle, k.Save, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Resize, k.Cycle},
		{k.New, k.Rename, k.Delete},
		{k.Save, k.Escape, k.Quit},
	}
}

// =============================================================================
// Editor Model
// =============================================================================

// uiMode selects which input handler is live.
type uiMode int

const (
	modeNormal uiMode = iota
	modeRename
	modeConfirmDelete
	modeConfirmQuit
)

// editorModel is the Bubble Tea model wrapping an [editor.Editor]. It owns
// every terminal concern: mouse-to-cell conversion, hit testing, styling,
// overlays, and persistence triggers. The editor core never sees a terminal.
type editorModel struct {
	ed   *editor.Editor
	path string
	cfg  config.Config

	mode   uiMode
	input  textinput.Model
	keys   keymap
	help   help.Model
	dirty  bool
	status string
	width  int
}

// newEditorModel builds the model for one layout file.
func newEditorModel(path string, layout grid.Layout, cfg config.Config) editorModel {
	ed := editor.New(layout)
	ed.SetDragThreshold(float64(cfg.Editor.DragThreshold))

	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 32

	return editorModel{
		ed:    ed,
		path:  path,
		cfg:   cfg,
		input: ti,
		keys:  newKeymap(),
		help:  help.New(),
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		if m.mode == modeNormal {
			return m.updateMouse(msg), nil
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeRename:
			return m.updateRename(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg), nil
		case modeConfirmQuit:
			return m.updateConfirmQuit(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

// =============================================================================
// Mouse Handling
// =============================================================================

// updateMouse feeds pointer events into the editor core.
func (m editorModel) updateMouse(msg tea.MouseMsg) editorModel {
	pt := editor.Point{X: float64(msg.X) * pixelsPerCol, Y: float64(msg.Y) * pixelsPerRow}
	cell, inGrid := m.cellAt(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !inGrid {
			return m
		}
		m.ed.PointerDown(m.targetAt(cell), pt, cell)
		m.status = ""

	case msg.Action == tea.MouseActionMotion:
		m.ed.PointerMove(pt, cell)

	case msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft:
		res := m.ed.PointerUp(pt, cell)
		m = m.applyResult(res)
	}
	return m
}

// cellAt converts a terminal position to a grid cell. The cell is clamped
// into the grid; the bool reports whether the position was actually inside.
func (m editorModel) cellAt(col, row int) (grid.Cell, bool) {
	gx := (col - gridOriginX) / m.cfg.Grid.CellWidth
	gy := (row - gridOriginY) / m.cfg.Grid.CellHeight
	inside := gx >= 0 && gx < grid.Size && gy >= 0 && gy < grid.Size
	return grid.Cell{
		X: grid.Clamp(gx, 0, grid.Size-1),
		Y: grid.Clamp(gy, 0, grid.Size-1),
	}, inside
}

// targetAt hit-tests a grid cell: the selected box's handles win, then box
// bodies (topmost insertion first), then empty space.
func (m editorModel) targetAt(cell grid.Cell) editor.Target {
	if sel, ok := m.ed.Selected(); ok {
		for _, hp := range handlePositions(sel) {
			if hp.Cell == cell {
				return editor.HandleTarget(sel.ID, hp.Handle)
			}
		}
	}

	boxes := m.ed.Layout().Boxes
	for i := len(boxes) - 1; i >= 0; i-- {
		if boxes[i].Contains(cell) {
			return editor.BodyTarget(boxes[i].ID)
		}
	}
	return editor.EmptyTarget()
}

// =============================================================================
// Keyboard Handling
// =============================================================================

func (m editorModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		m = m.applyResult(m.ed.MoveSelected(0, -1))
	case "down":
		m = m.applyResult(m.ed.MoveSelected(0, 1))
	case "left":
		m = m.applyResult(m.ed.MoveSelected(-1, 0))
	case "right":
		m = m.applyResult(m.ed.MoveSelected(1, 0))
	case "shift+up":
		m = m.applyResult(m.ed.ResizeSelected(0, -1))
	case "shift+down":
		m = m.applyResult(m.ed.ResizeSelected(0, 1))
	case "shift+left":
		m = m.applyResult(m.ed.ResizeSelected(-1, 0))
	case "shift+right":
		m = m.applyResult(m.ed.ResizeSelected(1, 0))

	case "n":
		res, err := m.ed.NewBoxAt("", defaultBoxW, defaultBoxH)
		if err != nil {
			m.status = StyleError.Render(errors.UserMessage(err))
			return m, nil
		}
		m = m.applyResult(res)

	case "r":
		sel, ok := m.ed.Selected()
		if !ok {
			m.status = StyleDim.Render("nothing selected")
			return m, nil
		}
		m.mode = modeRename
		m.input.SetValue(sel.Title)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case "d":
		if _, ok := m.ed.Selected(); !ok {
			m.status = StyleDim.Render("nothing selected")
			return m, nil
		}
		m.mode = modeConfirmDelete

	case "tab":
		m.cycleSelection()

	case "s":
		m = m.save()

	case "esc":
		if m.ed.Active() {
			m.ed.Cancel()
			m.status = StyleDim.Render("cancelled")
		} else {
			m.ed.ClearSelection()
		}

	case "q", "ctrl+c":
		if m.dirty {
			m.mode = modeConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m editorModel) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		res, err := m.ed.RenameSelected(m.input.Value())
		if err != nil {
			m.status = StyleError.Render(errors.UserMessage(err))
		} else {
			m = m.applyResult(res)
		}
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m editorModel) updateConfirmDelete(msg tea.KeyMsg) editorModel {
	switch msg.String() {
	case "y", "enter":
		m = m.applyResult(m.ed.DeleteSelected())
	}
	m.mode = modeNormal
	return m
}

func (m editorModel) updateConfirmQuit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		return m, tea.Quit
	case "s":
		m = m.save()
		if !m.dirty {
			return m, tea.Quit
		}
	}
	m.mode = modeNormal
	return m, nil
}

// =============================================================================
// Results and Persistence
// =============================================================================

// applyResult folds an editor result into the UI: dirty tracking, status
// text, and the autosave write-through.
func (m editorModel) applyResult(res editor.Result) editorModel {
	switch {
	case res.Changed:
		m.dirty = true
		m.status = ""
		if m.cfg.Editor.Autosave {
			m = m.save()
		}
	case res.Colliding:
		m.status = StyleWarning.Render("blocked: boxes cannot overlap")
	case res.Op == editor.OpCreate:
		m.status = StyleDim.Render("too small or overlapping, not created")
	}
	return m
}

func (m editorModel) save() editorModel {
	if err := store.Save(m.path, m.ed.Layout()); err != nil {
		m.status = StyleError.Render(errors.UserMessage(err))
		return m
	}
	m.dirty = false
	m.status = StyleSuccess.Render("saved " + m.path)
	return m
}

// cycleSelection moves the selection to the next box in layout order.
func (m *editorModel) cycleSelection() {
	boxes := m.ed.Layout().Boxes
	if len(boxes) == 0 {
		return
	}
	next := 0
	for i, b := range boxes {
		if b.ID == m.ed.SelectedID() {
			next = (i + 1) % len(boxes)
			break
		}
	}
	m.ed.Select(boxes[next].ID)
}

// =============================================================================
// View
// =============================================================================

var styleGridFrame = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorDim)

func (m editorModel) View() string {
	var b strings.Builder

	// Title bar.
	name := m.ed.Layout().Name
	if m.dirty {
		name += " *"
	}
	b.WriteString(StyleTitle.Render(name))
	b.WriteString("\n")

	// The grid, framed. A live gesture hides the dragged box and draws the
	// proposal instead.
	view := gridView{
		CellW:      m.cfg.Grid.CellWidth,
		CellH:      m.cfg.Grid.CellHeight,
		SelectedID: m.ed.SelectedID(),
	}
	if g, ok := m.ed.Gesture(); ok {
		view.Overlay = &g
		if g.Kind != editor.GestureCreate {
			view.HideID = g.Box.ID
		}
	}
	b.WriteString(styleGridFrame.Render(view.Render(m.ed.Layout())))
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// statusLine shows the overlay prompt when one is live, otherwise the
// selection summary and the last message.
func (m editorModel) statusLine() string {
	switch m.mode {
	case modeRename:
		return "rename: " + m.input.View()
	case modeConfirmDelete:
		sel, _ := m.ed.Selected()
		return StyleWarning.Render(fmt.Sprintf("delete %q? (y/n)", sel.Title))
	case modeConfirmQuit:
		return StyleWarning.Render("unsaved changes, quit anyway? (y / s to save / n)")
	}

	parts := []string{StyleDim.Render(fmt.Sprintf("%d boxes", len(m.ed.Layout().Boxes)))}
	if sel, ok := m.ed.Selected(); ok {
		parts = append(parts, StyleHighlight.Render(fmt.Sprintf("%s %d×%d at (%d,%d)", sel.Title, sel.W, sel.H, sel.X, sel.Y)))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}
