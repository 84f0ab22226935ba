package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/breachpath/grid"
	"github.com/katalvlaran/breachpath/pathsearch"
)

// Catppuccin Mocha colors used by DefaultTheme.
const (
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorPink     lipgloss.Color = "#f5c2e7"
	colorLavender lipgloss.Color = "#b4befe"
	colorRed      lipgloss.Color = "#f38ba8"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface0 lipgloss.Color = "#313244"
)

// Theme holds the lipgloss styles used by Styled.
type Theme struct {
	Title   lipgloss.Style
	Cell    lipgloss.Style // unvisited cell
	Visited lipgloss.Style // cell on the solution path
	Label   lipgloss.Style // "Sequence:", "Path:", ...
	Value   lipgloss.Style
	Empty   lipgloss.Style // no-solution message
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorPink).MarginBottom(1),
		Cell:    lipgloss.NewStyle().Foreground(colorOverlay0).Width(cellWidth),
		Visited: lipgloss.NewStyle().Bold(true).Foreground(colorGreen).Background(colorSurface0).Width(cellWidth),
		Label:   lipgloss.NewStyle().Foreground(colorLavender),
		Value:   lipgloss.NewStyle().Foreground(colorText),
		Empty:   lipgloss.NewStyle().Foreground(colorRed),
	}
}

// Styled renders res for m with th. The title line is omitted when empty.
func Styled(m *grid.Matrix, res pathsearch.Result, th Theme, title string) string {
	blocks := make([]string, 0, 3)
	if title != "" {
		blocks = append(blocks, th.Title.Render(title))
	}
	if !res.Found {
		blocks = append(blocks, th.Empty.Render(NoSolution))

		return lipgloss.JoinVertical(lipgloss.Left, blocks...) + "\n"
	}

	sol := res.Solution
	steps := stepIndex(sol.Path)
	rows := make([]string, 0, m.Rows())
	for r, row := range m.Cells() {
		cells := make([]string, len(row))
		for c, code := range row {
			step := steps[grid.Position{Row: r, Col: c}]
			if step == 0 {
				cells[c] = th.Cell.Render(cellLabel(code, 0))
				continue
			}
			cells[c] = th.Visited.Render(cellLabel(code, step))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, rows...))

	info := []string{
		th.Label.Render("Sequence: ") + th.Value.Render(grid.JoinCodes(sol.Sequence)),
		th.Label.Render("Path:     ") + th.Value.Render(joinPath(sol.Path)),
		th.Label.Render("Covered:  ") + th.Value.Render(joinTargets(sol.Covered)),
	}
	blocks = append(blocks, "", strings.Join(info, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, blocks...) + "\n"
}
