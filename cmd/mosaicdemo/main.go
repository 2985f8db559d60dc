// mosaicdemo is an interactive split-pane editor. Drag a pane onto
// another pane's edge to split, onto its middle to replace. Press e to
// toggle edit mode, a to add a pane, x to close the focused pane.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kungfusheep/mosaic"
)

type keyMap struct {
	Edit  key.Binding
	Add   key.Binding
	Close key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Edit:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit mode")),
	Add:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add pane")),
	Close: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close pane")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

type model struct {
	ctrl     *mosaic.Controller
	renderer mosaic.Renderer
	paneIDs  mosaic.IDSource
	logger   *slog.Logger

	width, height int
	panes         []mosaic.PaneRect
	dragging      *mosaic.DragItem
	dragged       mosaic.Node
	focused       string
}

func newModel(logger *slog.Logger) *model {
	ctrl := mosaic.NewController(mosaic.NewBranch("root", mosaic.AxisHorizontal,
		mosaic.NewLeaf("one", nil),
		mosaic.NewLeaf("two", nil),
	))
	ctrl.SetEditMode(true)
	return &model{
		ctrl:     ctrl,
		renderer: mosaic.NewRenderer(),
		paneIDs:  mosaic.NewCounterSource("pane"),
		logger:   logger,
		focused:  "one",
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Edit):
			m.ctrl.SetEditMode(!m.ctrl.EditMode())
		case key.Matches(msg, keys.Add):
			if m.focused != "" {
				id := m.paneIDs.NextID()
				if m.ctrl.SplitNode(m.focused, mosaic.AxisHorizontal, mosaic.NewLeaf(id, nil)) {
					m.focused = id
					m.relayout()
				}
			}
		case key.Matches(msg, keys.Close):
			if m.focused != "" && m.ctrl.CloseNode(m.focused) {
				m.focused = ""
				m.relayout()
			}
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	pt := mosaic.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		pane, ok := mosaic.HitTest(m.panes, pt)
		if !ok {
			return
		}
		m.focused = pane.ID
		item := mosaic.DragItem{ID: pane.ID, Kind: "pane", OriginalPath: pane.Path}
		if m.ctrl.OnDragStart(item) {
			m.dragging = &item
			m.dragged = pane.Leaf
			m.logger.Info("drag start", "id", pane.ID, "path", pane.Path.String())
		}

	case tea.MouseActionMotion:
		if m.dragging == nil {
			return
		}
		pane, ok := mosaic.HitTest(m.panes, pt)
		if !ok {
			m.ctrl.ClearPreview()
			return
		}
		m.ctrl.OnHoverUpdate(pane.Local(pt), pane.Rect.Size(), pane.ID, pane.Path)

	case tea.MouseActionRelease:
		if m.dragging == nil {
			return
		}
		item, dragged := *m.dragging, m.dragged
		m.dragging, m.dragged = nil, nil
		if m.ctrl.Preview() != nil {
			if m.ctrl.OnDrop(item, func() mosaic.Node { return dragged }) {
				m.logger.Info("drop", "id", item.ID, "tree", mosaic.DescribeTree(m.ctrl.Root()))
			}
		}
		m.ctrl.OnDragEnd()
		m.relayout()
	}
}

func (m *model) relayout() {
	if m.width == 0 || m.height < 2 {
		return
	}
	bounds := mosaic.Rect{W: float64(m.width), H: float64(m.height - 1)}
	m.panes = mosaic.LayoutTree(m.ctrl.Root(), bounds, 0)
}

func (m *model) View() string {
	if m.width == 0 || m.height < 2 {
		return ""
	}
	layout := m.renderer.Render(m.ctrl.Snapshot(), m.width, m.height-1)

	mode := "view"
	if m.ctrl.EditMode() {
		mode = "edit"
	}
	status := statusStyle.Render(fmt.Sprintf(" %s ", mode))
	if m.focused != "" {
		status += hintStyle.Render(" focus:" + m.focused)
	}
	if item := m.ctrl.ActiveDragItem(); item != nil {
		status += hintStyle.Render(" dragging:" + item.ID)
	}
	status += hintStyle.Render("  e edit · a add · x close · q quit")

	return layout + "\n" + status
}

func main() {
	logFile, err := os.OpenFile("mosaicdemo.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))

	p := tea.NewProgram(newModel(logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
