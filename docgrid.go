// Package docgrid rebuilds character grids from published coordinate tables.
//
// The source is an HTML document whose table lists one character per row as
// x coordinate, character, y coordinate, after a header row. docgrid fetches
// the document, reads the rows and prints the grid they describe.
//
// Basic usage:
//
//	err := docgrid.Open("https://example.com/published-doc").Print(ctx, os.Stdout)
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	lines, err := docgrid.Open(url).
//	    Timeout(30 * time.Second).
//	    Fill(".").
//	    Lines(ctx)
//
// Rows that cannot be read as a point are skipped silently, so a document
// without any usable row produces no output and no error. Only the fetch
// itself reports failures.
//
// For already-loaded documents, [Decode] runs the whole pipeline on a string.
package docgrid

import (
	"fmt"
	"io"

	"github.com/tsawler/docgrid/htmldoc"
	"github.com/tsawler/docgrid/model"
)

// Open returns a Decoder for the document at source, which may be an http
// or https URL, a file URL or a local path. Nothing is fetched until a
// terminal operation like Lines() runs.
//
// Example:
//
//	lines, err := docgrid.Open("https://example.com/doc").Lines(ctx)
func Open(source string) *Decoder {
	return &Decoder{
		source:  source,
		options: defaultOptions(),
	}
}

// FromString returns a Decoder for a document already held in memory.
func FromString(doc string) *Decoder {
	return &Decoder{
		doc:     doc,
		hasDoc:  true,
		options: defaultOptions(),
	}
}

// FromReader reads r to the end and returns a Decoder for its contents.
// The bytes are treated like a fetched body: binary data is rejected and
// the text is converted to UTF-8, honoring Charset. A read error is
// reported by the first terminal operation.
func FromReader(r io.Reader) *Decoder {
	d := &Decoder{options: defaultOptions()}
	data, err := io.ReadAll(r)
	if err != nil {
		d.err = fmt.Errorf("reading document: %w", err)
		return d
	}
	d.raw = data
	d.hasRaw = true
	return d
}

// Decode runs the whole pipeline on doc and returns the rendered grid rows,
// top row first. It returns no rows when doc describes no points.
func Decode(doc string) []string {
	points := PointsFromTable(htmldoc.ScanString(doc))
	return model.NewGrid(points, model.DefaultFill).Lines()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	lines := docgrid.Must(docgrid.FromString(doc).Lines(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
