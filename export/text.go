package export

import (
	"bufio"
	"io"

	"github.com/tsawler/docgrid/format"
	"github.com/tsawler/docgrid/model"
)

// TextExporter writes one line per grid row.
type TextExporter struct{}

// NewTextExporter creates a new text exporter.
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Export writes the rendered rows of g, each followed by a newline.
func (e *TextExporter) Export(w io.Writer, g *model.Grid) error {
	bw := bufio.NewWriter(w)
	for _, line := range g.Lines() {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Format returns format.Text.
func (e *TextExporter) Format() format.Format {
	return format.Text
}

// MarkdownExporter wraps the text rendering in a fenced code block so the
// grid keeps its alignment when the markdown is rendered.
type MarkdownExporter struct {
	// Info is written after the opening fence.
	Info string
}

// NewMarkdownExporter creates a new markdown exporter.
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{Info: "text"}
}

// Export writes g as a fenced code block.
func (e *MarkdownExporter) Export(w io.Writer, g *model.Grid) error {
	if g == nil {
		return nil
	}

	bw := bufio.NewWriter(w)
	bw.WriteString("```" + e.Info + "\n")
	for _, line := range g.Lines() {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	bw.WriteString("```\n")
	return bw.Flush()
}

// Format returns format.Markdown.
func (e *MarkdownExporter) Format() format.Format {
	return format.Markdown
}
