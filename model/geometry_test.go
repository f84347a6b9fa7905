package model

import (
	"strconv"
	"testing"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-7", -7, true},
		{"+7", 7, true},
		{"007", 7, true},
		{"-0", 0, true},
		{"  12", 12, true},
		{"\t\n3", 3, true},
		{" 5", 5, true},
		{"\uFEFF6", 6, true},
		{"12px", 12, true},
		{"3.9", 3, true},
		{"1e3", 1, true},
		{"0x1A", 0, true},
		{"5 6", 5, true},

		{"", 0, false},
		{"   ", 0, false},
		{"-", 0, false},
		{"+-1", 0, false},
		{"x12", 0, false},
		{"- 1", 0, false},
		{"１２", 0, false}, // fullwidth digits
		{"99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseInt(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseInt(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseInt_Limits(t *testing.T) {
	maxInt := int(^uint(0) >> 1)
	if got, ok := ParseInt(strconv.Itoa(maxInt)); !ok || got != maxInt {
		t.Errorf("ParseInt(maxInt) = %d, %v", got, ok)
	}
	if got, ok := ParseInt(strconv.Itoa(-maxInt)); !ok || got != -maxInt {
		t.Errorf("ParseInt(-maxInt) = %d, %v", got, ok)
	}
	if _, ok := ParseInt(strconv.Itoa(maxInt) + "0"); ok {
		t.Error("ParseInt(overflow) ok = true")
	}
}

func TestPointFromCells(t *testing.T) {
	tests := []struct {
		name   string
		cells  []string
		want   Point
		wantOK bool
	}{
		{"basic", []string{"1", "A", "2"}, Point{X: 1, Y: 2, Label: "A"}, true},
		{"label is the middle column", []string{"3", "█", "-4"}, Point{X: 3, Y: -4, Label: "█"}, true},
		{"extra cells ignored", []string{"0", "B", "0", "note"}, Point{Label: "B"}, true},
		{"multi-character label", []string{"0", "ab", "0"}, Point{Label: "ab"}, true},
		{"space label", []string{"0", " ", "0"}, Point{Label: " "}, true},
		{"permissive coordinates", []string{"1px", "C", " 2 "}, Point{X: 1, Y: 2, Label: "C"}, true},

		{"two cells", []string{"1", "A"}, Point{}, false},
		{"no cells", nil, Point{}, false},
		{"non-numeric x", []string{"x", "A", "2"}, Point{}, false},
		{"non-numeric y", []string{"1", "A", "y"}, Point{}, false},
		{"empty label", []string{"1", "", "2"}, Point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PointFromCells(tt.cells)
			if ok != tt.wantOK {
				t.Fatalf("PointFromCells(%q) ok = %v, want %v", tt.cells, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("PointFromCells(%q) = %+v, want %+v", tt.cells, got, tt.want)
			}
		})
	}
}

func TestBoundsOf(t *testing.T) {
	if _, ok := BoundsOf(nil); ok {
		t.Error("BoundsOf(nil) ok = true")
	}

	b, ok := BoundsOf([]Point{{X: 3, Y: -2}, {X: -1, Y: 4}, {X: 0, Y: 0}})
	if !ok {
		t.Fatal("BoundsOf() ok = false")
	}
	want := Bounds{MinX: -1, MinY: -2, MaxX: 3, MaxY: 4}
	if b != want {
		t.Errorf("BoundsOf() = %+v, want %+v", b, want)
	}
	if b.Width() != 5 || b.Height() != 7 {
		t.Errorf("size = %dx%d, want 5x7", b.Width(), b.Height())
	}
	if b.Area() != 35 {
		t.Errorf("Area() = %d, want 35", b.Area())
	}
}

func TestBounds_SinglePoint(t *testing.T) {
	b, _ := BoundsOf([]Point{{X: 9, Y: 9}})
	if b.Width() != 1 || b.Height() != 1 {
		t.Errorf("size = %dx%d, want 1x1", b.Width(), b.Height())
	}
}

func TestBounds_Contains(t *testing.T) {
	b := Bounds{MinX: 0, MinY: 0, MaxX: 2, MaxY: 1}
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{1, 1, true},
		{3, 0, false},
		{0, -1, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBounds_AreaOverflow(t *testing.T) {
	maxInt := int(^uint(0) >> 1)
	b := Bounds{MinX: 0, MinY: 0, MaxX: maxInt / 2, MaxY: maxInt / 2}
	if got := b.Area(); got != -1 {
		t.Errorf("Area() = %d, want -1", got)
	}

	wrapped := Bounds{MinX: -maxInt, MaxX: maxInt}
	if got := wrapped.Area(); got != -1 {
		t.Errorf("Area() = %d, want -1 for wrapped width", got)
	}
}
