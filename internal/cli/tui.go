package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/matzehuels/panels/pkg/core/gesture"
	"github.com/matzehuels/panels/pkg/core/layout"
	"github.com/matzehuels/panels/pkg/group"
	pio "github.com/matzehuels/panels/pkg/io"
	"github.com/matzehuels/panels/pkg/watch"
)

// tuiCommand creates the interactive terminal view.
func (c *CLI) tuiCommand() *cobra.Command {
	var watchFile bool

	cmd := &cobra.Command{
		Use:   "tui FILE",
		Short: "Resize a panel group interactively",
		Long: `Open a panel group in an interactive terminal view.

Drag the handles between panels with the mouse, or select a panel with tab
and grow or shrink it with the arrow keys. With --watch the declaration is
reloaded whenever the file changes.

Keys:
  tab, shift+tab   select the next or previous panel
  →, ↓, +          grow the selected panel
  ←, ↑, -          shrink the selected panel
  c / e            collapse / expand the selected panel
  s                type every size at once ("30,0,70")
  r                reset to the declared layout
  q                quit

Log output is suppressed while the view is open.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context(), args[0], watchFile)
		},
	}

	cmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "reload when the file changes")

	return cmd
}

func (c *CLI) runTUI(ctx context.Context, path string, watchFile bool) error {
	m, err := c.newTUIModel(path)
	if err != nil {
		return err
	}

	// Resolver warnings would be drawn over the alternate screen.
	c.Logger.SetOutput(io.Discard)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	if watchFile {
		w, err := watch.New(path,
			func(d *pio.Declaration) { p.Send(reloadMsg{decl: d}) },
			watch.WithDebounce(c.config.debounce()),
			watch.WithLogger(c.Logger),
			watch.WithErrorHandler(func(err error) { p.Send(reloadErrMsg{err: err}) }),
		)
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		go func() { _ = w.Run(ctx) }()
	}

	_, err = p.Run()
	return err
}

// =============================================================================
// Model
// =============================================================================

type reloadMsg struct{ decl *pio.Declaration }

type reloadErrMsg struct{ err error }

// tuiModel is the bubbletea model of one panel group. It is used through a
// pointer so that the group's extent callback sees the current window size.
type tuiModel struct {
	path   string
	group  *group.Group
	specs  []layout.Spec
	step   float64
	width  int
	height int
	focus  int
	resize *group.Resize
	status string

	// input is shown while the user types a full layout.
	input   textinput.Model
	editing bool
}

var (
	tuiHandleStyle      = lipgloss.NewStyle().Foreground(colorDim)
	tuiHandleFocusStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	tuiLabelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("16"))
	tuiErrorStyle       = lipgloss.NewStyle().Foreground(colorRed)
)

func (c *CLI) newTUIModel(path string) (*tuiModel, error) {
	input := textinput.New()
	input.Prompt = "sizes: "
	input.Placeholder = "30,0,70"

	m := &tuiModel{path: path, step: c.config.step(), input: input}
	g, d, err := c.openGroup(path, group.WithExtent(m.extent))
	if err != nil {
		return nil, err
	}
	m.group = g
	m.specs = d.Specs()
	return m, nil
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if m.editing {
			return m, m.handleInput(msg)
		}
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case reloadMsg:
		if err := m.group.SetSpecs(msg.decl.Specs()); err != nil {
			m.status = tuiErrorStyle.Render(err.Error())
			break
		}
		m.specs = msg.decl.Specs()
		m.clampFocus()
		m.status = "reloaded " + m.path
	case reloadErrMsg:
		m.status = tuiErrorStyle.Render(msg.err.Error())
	}
	return m, nil
}

func (m *tuiModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	panels := m.group.Panels()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "tab":
		if len(panels) > 0 {
			m.focus = (m.focus + 1) % len(panels)
		}
	case "shift+tab":
		if len(panels) > 0 {
			m.focus = (m.focus - 1 + len(panels)) % len(panels)
		}
	case "right", "down", "+", "l", "j":
		m.nudge(m.step)
	case "left", "up", "-", "h", "k":
		m.nudge(-m.step)
	case "c":
		if id, ok := m.focused(); ok {
			m.group.Collapse(id)
		}
	case "e":
		if id, ok := m.focused(); ok {
			m.group.Expand(id)
		}
	case "s":
		sizes := make([]string, len(panels))
		for i, p := range panels {
			sizes[i] = formatSize(p.Size)
		}
		m.input.SetValue(strings.Join(sizes, ","))
		m.input.CursorEnd()
		m.editing = true
		return m.input.Focus()
	case "r":
		if err := m.group.SetSpecs(m.specs); err != nil {
			m.status = tuiErrorStyle.Render(err.Error())
		} else {
			m.status = "reset"
		}
	}
	return nil
}

// handleInput edits the size list; enter applies it, esc discards it.
func (m *tuiModel) handleInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		return nil
	case tea.KeyEnter:
		m.editing = false
		m.input.Blur()
		sizes, err := parseSizes(m.input.Value())
		if err == nil {
			err = m.group.SetLayout(sizes)
		}
		if err != nil {
			m.status = tuiErrorStyle.Render(err.Error())
		} else {
			m.status = "layout set"
		}
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// nudge grows the focused panel by delta percent. The last panel has no
// handle after it, so the store moves the handle before it instead.
func (m *tuiModel) nudge(delta float64) {
	id, ok := m.focused()
	if !ok {
		return
	}
	s := m.group.Store()
	s.ApplyDelta(id, delta, s.Snapshot())
}

func (m *tuiModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if pivot, ok := m.handleAt(msg.X, msg.Y); ok {
			m.resize = m.group.BeginResize(m.group.Panels()[pivot].ID, gesture.Point{X: float64(msg.X), Y: float64(msg.Y)})
			m.focus = pivot
			return
		}
		if i, ok := m.panelAt(msg.X, msg.Y); ok {
			m.focus = i
		}
	case tea.MouseActionMotion:
		if m.resize != nil {
			m.resize.Move(gesture.Point{X: float64(msg.X), Y: float64(msg.Y)})
		}
	case tea.MouseActionRelease:
		if m.resize != nil {
			m.resize.End()
			m.resize = nil
		}
	}
}

func (m *tuiModel) focused() (string, bool) {
	panels := m.group.Panels()
	if m.focus < 0 || m.focus >= len(panels) {
		return "", false
	}
	return panels[m.focus].ID, true
}

func (m *tuiModel) clampFocus() {
	if n := len(m.group.Panels()); m.focus >= n {
		m.focus = max(n-1, 0)
	}
}

// =============================================================================
// Geometry
// =============================================================================

// The first line holds the title and the last line the status.
const tuiChromeLines = 2

func (m *tuiModel) horizontal() bool {
	return m.group.Direction().IsHorizontal()
}

// area returns the main-axis length and the cross-axis length of the
// panel area in cells, handles included.
func (m *tuiModel) area() (main, cross int) {
	h := max(m.height-tuiChromeLines, 0)
	if m.horizontal() {
		return m.width, h
	}
	return h, m.width
}

// extent returns the main-axis cells shared by the panels, handles excluded.
func (m *tuiModel) extent() float64 {
	main, _ := m.area()
	return float64(max(main-m.handles(), 0))
}

func (m *tuiModel) handles() int {
	return max(len(m.group.Panels())-1, 0)
}

// order lists panel indices in screen order.
func (m *tuiModel) order() []int {
	n := len(m.group.Panels())
	order := make([]int, n)
	for i := range order {
		order[i] = i
		if m.group.Direction().IsReverse() {
			order[i] = n - 1 - i
		}
	}
	return order
}

// cells returns the main-axis cells of each panel, by panel index.
func (m *tuiModel) cells() []int {
	return layout.Apportion(m.group.Sizes(), int(m.extent()))
}

// axisPos converts a screen position to a main-axis offset into the panel
// area, or -1 outside it.
func (m *tuiModel) axisPos(x, y int) int {
	if y < 1 || y >= m.height-1 {
		return -1
	}
	if m.horizontal() {
		return x
	}
	return y - 1
}

// handleAt returns the index of the panel before the handle at (x, y).
func (m *tuiModel) handleAt(x, y int) (int, bool) {
	pos := m.axisPos(x, y)
	if pos < 0 {
		return 0, false
	}
	cells := m.cells()
	order := m.order()
	offset := 0
	for j := 0; j < len(order)-1; j++ {
		offset += cells[order[j]]
		if pos == offset {
			return min(order[j], order[j+1]), true
		}
		offset++
	}
	return 0, false
}

// panelAt returns the index of the panel at (x, y).
func (m *tuiModel) panelAt(x, y int) (int, bool) {
	pos := m.axisPos(x, y)
	if pos < 0 {
		return 0, false
	}
	cells := m.cells()
	offset := 0
	for _, i := range m.order() {
		if pos >= offset && pos < offset+cells[i] {
			return i, true
		}
		offset += cells[i] + 1
	}
	return 0, false
}

// =============================================================================
// View
// =============================================================================

func (m *tuiModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.path))
	b.WriteString(" ")
	b.WriteString(StyleDim.Render(m.group.Direction().String()))
	b.WriteString("\n")
	b.WriteString(m.renderPanels())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m *tuiModel) renderPanels() string {
	panels := m.group.Panels()
	if len(panels) == 0 {
		return StyleDim.Render("no panels")
	}
	_, cross := m.area()
	cells := m.cells()
	order := m.order()

	var parts []string
	for j, i := range order {
		if n := cells[i]; n > 0 {
			parts = append(parts, m.renderPanel(panels[i], i, n, cross))
		}
		if j < len(order)-1 {
			parts = append(parts, m.renderHandle(min(i, order[j+1]), cross))
		}
	}

	if m.horizontal() {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *tuiModel) renderPanel(p layout.Panel, i, main, cross int) string {
	w, h := main, cross
	if !m.horizontal() {
		w, h = cross, main
	}
	label := truncate(fmt.Sprintf("%s %s%%", p.ID, formatSize(p.Size)), w)
	style := tuiLabelStyle.
		Background(panelColor(i)).
		Width(w).MaxWidth(w).
		Height(h).MaxHeight(h).
		Align(lipgloss.Center, lipgloss.Center)
	if i == m.focus {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(label)
}

func (m *tuiModel) renderHandle(pivot, cross int) string {
	style := tuiHandleStyle
	if pivot == m.focus || m.resize != nil && m.resize.Pivot() == m.group.Panels()[pivot].ID {
		style = tuiHandleFocusStyle
	}
	if m.horizontal() {
		return style.Render(strings.TrimSuffix(strings.Repeat("│\n", cross), "\n"))
	}
	return style.Render(strings.Repeat("─", cross))
}

func (m *tuiModel) statusLine() string {
	if m.editing {
		return m.input.View() + StyleDim.Render("  ·  enter apply  esc cancel")
	}
	help := "tab select  ←/→ resize  c collapse  e expand  s set  r reset  q quit"
	if m.status != "" {
		return m.status + StyleDim.Render("  ·  "+help)
	}
	return StyleDim.Render(help)
}

// truncate shortens s to at most n cells.
func truncate(s string, n int) string {
	return runewidth.Truncate(s, max(n, 0), "")
}
