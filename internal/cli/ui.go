package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/panels/pkg/core/gesture"
	"github.com/matzehuels/panels/pkg/core/layout"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// panelColors cycles through the panels of a group in bars and the TUI.
var panelColors = []lipgloss.Color{
	lipgloss.Color("36"),
	lipgloss.Color("75"),
	lipgloss.Color("141"),
	lipgloss.Color("179"),
	lipgloss.Color("114"),
	lipgloss.Color("174"),
}

func panelColor(i int) lipgloss.Color {
	return panelColors[i%len(panelColors)]
}

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleHeader    = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCollapsed = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
	iconBlock   = "█"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// =============================================================================
// Layout Output
// =============================================================================

// formatSize prints a size without trailing zeros ("25", "33.3333").
func formatSize(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// panelState describes the collapse state of p for display.
func panelState(p layout.Panel) string {
	switch {
	case p.Collapsed():
		return "collapsed"
	case p.Collapsible:
		return "collapsible"
	}
	return ""
}

// renderBar draws l as a single line of width cells, one color per panel.
func renderBar(l layout.Layout, width int) string {
	var b strings.Builder
	for i, cells := range layout.Apportion(l.Sizes(), width) {
		if cells == 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(panelColor(i))
		b.WriteString(style.Render(strings.Repeat(iconBlock, cells)))
	}
	return b.String()
}

// renderLayout renders l as a titled table with one row per panel, followed
// by a proportional bar.
func renderLayout(title string, direction gesture.Direction, l layout.Layout) string {
	rows := make([][]string, len(l))
	for i, p := range l {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			p.ID,
			formatSize(p.Size),
			formatSize(p.MinSize),
			formatSize(p.MaxSize),
			panelState(p),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Panel", "Size", "Min", "Max", "State").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return base.Inherit(styleHeader)
			}
			if row < 0 || row >= len(l) {
				return base
			}
			if l[row].Collapsed() {
				return base.Inherit(styleCollapsed)
			}
			if col == 1 {
				return base.Foreground(panelColor(row))
			}
			return base
		})

	var b strings.Builder
	b.WriteString(StyleTitle.Render(title))
	b.WriteString(" ")
	b.WriteString(StyleDim.Render(direction.String()))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(renderBar(l, barWidth))
	b.WriteString("\n")
	return b.String()
}

// printLayout writes the rendered layout to w.
func printLayout(w io.Writer, title string, direction gesture.Direction, l layout.Layout) {
	fmt.Fprint(w, renderLayout(title, direction, l))
}
