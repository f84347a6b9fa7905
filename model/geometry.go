package model

import (
	"strings"
	"unicode"
)

// Point is a single labeled coordinate taken from a table row.
type Point struct {
	X     int
	Y     int
	Label string
}

// PointFromCells interprets the first three cells of a row as x, label and y.
// The label sits between the two coordinates. The second return value is
// false when the row has fewer than three cells, either coordinate fails to
// parse, or the label is empty.
func PointFromCells(cells []string) (Point, bool) {
	if len(cells) < 3 {
		return Point{}, false
	}

	x, ok := ParseInt(cells[0])
	if !ok {
		return Point{}, false
	}
	y, ok := ParseInt(cells[2])
	if !ok {
		return Point{}, false
	}
	if cells[1] == "" {
		return Point{}, false
	}

	return Point{X: x, Y: y, Label: cells[1]}, true
}

// ParseInt parses the longest leading base-10 integer in s.
//
// Leading whitespace and a single sign are accepted, and anything after the
// digits is ignored, so "12px" parses as 12 and " -3.7" as -3. It reports
// false when no digit follows the optional sign or the value overflows int.
func ParseInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, isSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	const maxInt = int(^uint(0) >> 1)

	n := 0
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		d := int(s[digits] - '0')
		if n > (maxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
		digits++
	}
	if digits == 0 {
		return 0, false
	}

	if neg {
		n = -n
	}
	return n, true
}

// isSpace matches the whitespace skipped before a number, which includes
// the byte order mark as well as Unicode spaces.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Bounds is the smallest rectangle covering a set of points, inclusive on
// both ends.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// BoundsOf returns the bounds of points. It reports false for an empty set.
func BoundsOf(points []Point) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}

	b := Bounds{
		MinX: points[0].X, MaxX: points[0].X,
		MinY: points[0].Y, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		b = b.Extend(p)
	}
	return b, true
}

// Extend returns the bounds grown to include p.
func (b Bounds) Extend(p Point) Bounds {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}

// Width returns the number of columns covered.
func (b Bounds) Width() int {
	return b.MaxX - b.MinX + 1
}

// Height returns the number of rows covered.
func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}

// Contains checks if the coordinate lies inside the bounds.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Area returns Width*Height, or -1 if the product does not fit in an int.
func (b Bounds) Area() int {
	w, h := b.Width(), b.Height()
	if w <= 0 || h <= 0 {
		return -1
	}
	if w > int(^uint(0)>>1)/h {
		return -1
	}
	return w * h
}
