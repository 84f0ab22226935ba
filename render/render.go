package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/breachpath/grid"
	"github.com/katalvlaran/breachpath/pathsearch"
)

// ErrUnknownStyle is returned by ParseStyle for unrecognized names.
var ErrUnknownStyle = errors.New("render: unknown style")

// Style selects an output layout.
type Style int

const (
	// Plain renders unstyled text.
	Plain Style = iota
	// Color renders with lipgloss styles.
	Color
)

// String returns the style name accepted by ParseStyle.
func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case Color:
		return "color"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle maps "plain" or "color" to a Style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "":
		return Plain, nil
	case "color", "colour":
		return Color, nil
	default:
		return Plain, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
}

// NoSolution is printed when a search finds no covering path.
const NoSolution = "No solution found."

// cellWidth is the minimum column width of the plain matrix.
const cellWidth = 8

// Text renders res for m in the Plain style.
func Text(m *grid.Matrix, res pathsearch.Result) string {
	if !res.Found {
		return NoSolution + "\n"
	}
	sol := res.Solution
	steps := stepIndex(sol.Path)

	var b strings.Builder
	b.WriteString("Matrix with steps:\n")
	for r, row := range m.Cells() {
		line := make([]string, len(row))
		for c, code := range row {
			line[c] = fmt.Sprintf("%-*s", cellWidth, cellLabel(code, steps[grid.Position{Row: r, Col: c}]))
		}
		b.WriteString(strings.TrimRight(strings.Join(line, " "), " "))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Optimal sequence: %s\n", grid.JoinCodes(sol.Sequence))
	fmt.Fprintf(&b, "Solution path: %s\n", joinPath(sol.Path))
	fmt.Fprintf(&b, "Covered sequences: %s\n", joinTargets(sol.Covered))

	return b.String()
}

// Write renders res for m in the given style, preceded by a title line
// when title is non-empty.
func Write(w io.Writer, style Style, title string, m *grid.Matrix, res pathsearch.Result) error {
	var out string
	switch style {
	case Plain:
		out = Text(m, res)
		if title != "" {
			out = "== " + title + " ==\n" + out
		}
	case Color:
		out = Styled(m, res, DefaultTheme(), title)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownStyle, style)
	}
	_, err := io.WriteString(w, out)

	return err
}

// stepIndex maps each visited position to its 1-based step number.
func stepIndex(path []grid.Position) map[grid.Position]int {
	out := make(map[grid.Position]int, len(path))
	for i, p := range path {
		out[p] = i + 1
	}

	return out
}

// cellLabel appends "(step)" to visited cells.
func cellLabel(code grid.Code, step int) string {
	if step == 0 {
		return string(code)
	}

	return fmt.Sprintf("%s(%d)", code, step)
}

func joinPath(path []grid.Position) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.String()
	}

	return strings.Join(parts, " -> ")
}

func joinTargets(ts []grid.TargetSequence) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}

	return strings.Join(parts, ", ")
}
