package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pathviz/internal/config"
	"github.com/vovakirdan/tui-pathviz/internal/grid"
)

// cellWidth is how many terminal columns one board cell occupies; two
// columns keep cells roughly square.
const cellWidth = 2

// cellRunes maps each kind to its two-character glyph.
var cellRunes = map[grid.Kind]string{
	grid.KindEmpty:    " ·",
	grid.KindWall:     "██",
	grid.KindStart:    "▶▶",
	grid.KindEnd:      "◀◀",
	grid.KindVisited:  "▒▒",
	grid.KindPath:     "██",
	grid.KindFrontier: "░░",
}

// Theme holds the lipgloss styles derived from the configured colors.
type Theme struct {
	styles map[grid.Kind]lipgloss.Style
	cursor lipgloss.Style
	hud    lipgloss.Style
	dim    lipgloss.Style
}

// NewTheme builds a theme from the color configuration.
func NewTheme(cfg config.ThemeConfig) *Theme {
	return &Theme{
		styles: map[grid.Kind]lipgloss.Style{
			grid.KindEmpty:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			grid.KindWall:     lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Wall)),
			grid.KindStart:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Start)),
			grid.KindEnd:      lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.End)),
			grid.KindVisited:  lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Visited)),
			grid.KindPath:     lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Path)),
			grid.KindFrontier: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Frontier)),
		},
		cursor: lipgloss.NewStyle().Background(lipgloss.Color(cfg.Cursor)).Foreground(lipgloss.Color("0")),
		hud:    lipgloss.NewStyle().Bold(true),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// RenderBoard converts the grid to a styled string, overlaying the cursor
// cell when showCursor is set. Groups adjacent cells with the same kind
// to minimize ANSI escape sequences.
func (t *Theme) RenderBoard(g *grid.Grid, cursor grid.Coord, showCursor bool) string {
	var sb strings.Builder
	sb.Grow(g.Rows() * (g.Cols()*cellWidth*2 + 1))

	for row := 0; row < g.Rows(); row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		col := 0
		for col < g.Cols() {
			c := grid.At(row, col)
			if showCursor && c == cursor {
				sb.WriteString(t.cursor.Render(cellRunes[g.Kind(c)]))
				col++
				continue
			}

			kind := g.Kind(c)
			var run strings.Builder
			for col < g.Cols() {
				c = grid.At(row, col)
				if g.Kind(c) != kind || (showCursor && c == cursor) {
					break
				}
				run.WriteString(cellRunes[kind])
				col++
			}
			sb.WriteString(t.styles[kind].Render(run.String()))
		}
	}
	return sb.String()
}

// RenderLegend returns the one-line color legend.
func (t *Theme) RenderLegend() string {
	entries := []struct {
		kind  grid.Kind
		label string
	}{
		{grid.KindStart, "start"},
		{grid.KindEnd, "end"},
		{grid.KindWall, "wall"},
		{grid.KindVisited, "visited"},
		{grid.KindFrontier, "frontier"},
		{grid.KindPath, "path"},
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, t.styles[e.kind].Render(cellRunes[e.kind])+" "+t.dim.Render(e.label))
	}
	return strings.Join(parts, "  ")
}
