package model

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultFill is written into every cell no point covers.
const DefaultFill = " "

// Grid is a dense rectangle of cells covering the bounds of a point set.
// Cells are indexed [row][column] with row 0 at Bounds.MinY and column 0 at
// Bounds.MinX.
type Grid struct {
	Bounds Bounds
	Cells  [][]string
}

// NewGrid materializes points into a grid. Cells not covered by any point
// hold fill. When several points share a coordinate the last one in the
// slice wins. NewGrid returns nil for an empty point set.
func NewGrid(points []Point, fill string) *Grid {
	b, ok := BoundsOf(points)
	if !ok {
		return nil
	}

	width, height := b.Width(), b.Height()
	cells := make([][]string, height)
	for i := range cells {
		row := make([]string, width)
		for j := range row {
			row[j] = fill
		}
		cells[i] = row
	}

	for _, p := range points {
		cells[p.Y-b.MinY][p.X-b.MinX] = p.Label
	}

	return &Grid{Bounds: b, Cells: cells}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	if g == nil {
		return 0
	}
	return g.Bounds.Width()
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	if g == nil {
		return 0
	}
	return len(g.Cells)
}

// Cell returns the label at the given source coordinate. The second return
// value is false when the coordinate is outside the grid.
func (g *Grid) Cell(x, y int) (string, bool) {
	if g == nil || !g.Bounds.Contains(x, y) {
		return "", false
	}
	return g.Cells[y-g.Bounds.MinY][x-g.Bounds.MinX], true
}

// Lines renders each row as the concatenation of its cells, top row first.
// A nil grid renders no lines.
func (g *Grid) Lines() []string {
	if g == nil {
		return nil
	}
	lines := make([]string, len(g.Cells))
	for i, row := range g.Cells {
		lines[i] = strings.Join(row, "")
	}
	return lines
}

// String returns the rendered rows joined by newlines, with a trailing
// newline after the last row.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, line := range g.Lines() {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// DisplayWidth returns the widest rendered row measured in terminal
// columns. It equals Width() only when every label occupies one column.
func (g *Grid) DisplayWidth() int {
	widest := 0
	for _, line := range g.Lines() {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}
