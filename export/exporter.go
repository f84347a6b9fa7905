// Package export writes decoded grids in the supported output formats.
//
// Every exporter writes nothing for a nil grid, matching the rule that a
// document without points produces no output.
package export

import (
	"fmt"
	"io"

	"github.com/tsawler/docgrid/format"
	"github.com/tsawler/docgrid/model"
)

// Exporter writes a grid in one output format.
type Exporter interface {
	// Export writes g to w. A nil g writes nothing.
	Export(w io.Writer, g *model.Grid) error
	// Format returns the format this exporter produces.
	Format() format.Format
}

// NewExporter creates an exporter for the specified format.
func NewExporter(f format.Format) (Exporter, error) {
	switch f {
	case format.Text:
		return NewTextExporter(), nil
	case format.Markdown:
		return NewMarkdownExporter(), nil
	case format.JSON:
		return NewJSONExporter(), nil
	case format.PNG:
		return NewPNGExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", f)
	}
}

// AvailableFormats returns every format NewExporter accepts.
func AvailableFormats() []format.Format {
	return []format.Format{
		format.Text,
		format.Markdown,
		format.JSON,
		format.PNG,
	}
}
