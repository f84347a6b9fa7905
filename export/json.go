package export

import (
	"encoding/json"
	"io"

	"github.com/tsawler/docgrid/format"
	"github.com/tsawler/docgrid/model"
)

// JSONExporter writes the grid bounds and rendered rows as a JSON object.
type JSONExporter struct {
	// Indent is used for pretty printing; empty writes compact JSON.
	Indent string
}

type jsonBounds struct {
	MinX int `json:"min_x"`
	MinY int `json:"min_y"`
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

type jsonGrid struct {
	Bounds jsonBounds `json:"bounds"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Rows   []string   `json:"rows"`
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{Indent: "  "}
}

// Export writes g as JSON.
func (e *JSONExporter) Export(w io.Writer, g *model.Grid) error {
	if g == nil {
		return nil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", e.Indent)
	enc.SetEscapeHTML(false)
	return enc.Encode(jsonGrid{
		Bounds: jsonBounds{
			MinX: g.Bounds.MinX,
			MinY: g.Bounds.MinY,
			MaxX: g.Bounds.MaxX,
			MaxY: g.Bounds.MaxY,
		},
		Width:  g.Width(),
		Height: g.Height(),
		Rows:   g.Lines(),
	})
}

// Format returns format.JSON.
func (e *JSONExporter) Format() format.Format {
	return format.JSON
}
