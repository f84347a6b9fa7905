package export

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/docgrid/format"
	"github.com/tsawler/docgrid/model"
)

// PNGExporter rasterizes the text rendering with a fixed 7x13 bitmap face.
// Each terminal column of the rendering becomes one 7 pixel wide cell.
type PNGExporter struct {
	// Scale enlarges the image by an integer factor using nearest-neighbor
	// sampling. Values below 1 are treated as 1.
	Scale int

	// Padding is the margin around the grid in unscaled pixels.
	Padding int

	Foreground color.Color
	Background color.Color
}

// NewPNGExporter creates a PNG exporter drawing black on white at 2x scale.
func NewPNGExporter() *PNGExporter {
	return &PNGExporter{
		Scale:      2,
		Padding:    4,
		Foreground: color.Black,
		Background: color.White,
	}
}

// Export writes g as a PNG image.
func (e *PNGExporter) Export(w io.Writer, g *model.Grid) error {
	if g == nil {
		return nil
	}
	return png.Encode(w, e.Render(g))
}

// Render draws g into an image without encoding it.
func (e *PNGExporter) Render(g *model.Grid) image.Image {
	face := basicfont.Face7x13
	lines := g.Lines()

	pad := max(e.Padding, 0)
	width := g.DisplayWidth()*face.Advance + 2*pad
	height := len(lines)*face.Height + 2*pad

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(e.Background), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(e.Foreground),
		Face: face,
	}
	for i, line := range lines {
		baseline := pad + i*face.Height + face.Ascent
		col := 0
		for _, r := range line {
			d.Dot = fixed.P(pad+col*face.Advance, baseline)
			d.DrawString(string(r))
			col += runewidth.RuneWidth(r)
		}
	}

	scale := max(e.Scale, 1)
	if scale == 1 {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Format returns format.PNG.
func (e *PNGExporter) Format() format.Format {
	return format.PNG
}
