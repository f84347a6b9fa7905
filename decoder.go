package docgrid

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tsawler/docgrid/fetch"
	"github.com/tsawler/docgrid/htmldoc"
	"github.com/tsawler/docgrid/model"
)

var (
	// ErrNoSource is returned by terminal operations on a Decoder that has
	// neither a source to fetch nor a document.
	ErrNoSource = errors.New("no source specified")

	// ErrGridTooLarge is returned when the bounds of the decoded points
	// exceed the configured cell limit, or cannot be allocated at all.
	ErrGridTooLarge = errors.New("grid too large")
)

// Decoder provides a fluent interface for turning a published coordinate
// table into a character grid. Each configuration method returns a new
// Decoder instance, making it safe for concurrent use and allowing method
// chaining.
type Decoder struct {
	// Source (exactly one of source, doc or raw is used)
	source string
	doc    string
	hasDoc bool
	raw    []byte // undecoded reader input
	hasRaw bool

	// Configuration
	options DecodeOptions

	// Accumulated error (fail-fast)
	err error
}

// Result holds every stage of a decode.
type Result struct {
	// Table is every row scanned from the document, header included.
	Table *htmldoc.Table

	// Points are the data rows that described a point, in document order.
	Points []model.Point

	// Grid is nil when no row described a point.
	Grid *model.Grid
}

// clone creates a shallow copy of the Decoder with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (d *Decoder) clone() *Decoder {
	return &Decoder{
		source:  d.source,
		doc:     d.doc,
		hasDoc:  d.hasDoc,
		raw:     d.raw,
		hasRaw:  d.hasRaw,
		options: d.options.clone(),
		err:     d.err,
	}
}

// ============================================================================
// Configuration Methods (return new Decoder instance)
// ============================================================================

// Fill sets the string written into cells no point covers. The default is
// a single space.
//
// Example:
//
//	lines, err := docgrid.Open(url).Fill(".").Lines(ctx)
func (d *Decoder) Fill(fill string) *Decoder {
	newD := d.clone()
	if fill == "" && newD.err == nil {
		newD.err = fmt.Errorf("fill must not be empty")
	}
	newD.options.fill = fill
	return newD
}

// MaxCells limits the number of cells a grid may have. Decoding fails with
// ErrGridTooLarge when the bounds of the points exceed it. Zero, the
// default, means no limit.
func (d *Decoder) MaxCells(n int) *Decoder {
	newD := d.clone()
	if n < 0 && newD.err == nil {
		newD.err = fmt.Errorf("max cells must not be negative, got %d", n)
	}
	newD.options.maxCells = n
	return newD
}

// WithFetcher replaces the transport used to retrieve the source. Timeout,
// UserAgent and Charset have no effect on a custom fetcher.
func (d *Decoder) WithFetcher(f fetch.Fetcher) *Decoder {
	newD := d.clone()
	newD.options.fetcher = f
	return newD
}

// Timeout bounds the HTTP request. There is no timeout by default.
func (d *Decoder) Timeout(timeout time.Duration) *Decoder {
	newD := d.clone()
	newD.options.timeout = timeout
	return newD
}

// UserAgent sets the User-Agent header of the HTTP request.
func (d *Decoder) UserAgent(ua string) *Decoder {
	newD := d.clone()
	newD.options.userAgent = ua
	return newD
}

// Charset forces the encoding of the fetched body or reader input, e.g.
// "iso-8859-1". By default the encoding is detected.
func (d *Decoder) Charset(name string) *Decoder {
	newD := d.clone()
	newD.options.charset = name
	return newD
}

// ============================================================================
// Terminal Operations (fetch and decode)
// ============================================================================

// Result fetches the source once and runs every decode stage.
//
// Only fetching and the cell limit can fail. Rows that do not describe a
// point are skipped without notice, and a document without any point yields
// a Result whose Grid is nil.
func (d *Decoder) Result(ctx context.Context) (*Result, error) {
	if d.err != nil {
		return nil, d.err
	}

	doc, err := d.load(ctx)
	if err != nil {
		return nil, err
	}

	table := htmldoc.ScanString(doc)
	points := PointsFromTable(table)
	grid, err := buildGrid(points, d.options)
	if err != nil {
		return nil, err
	}

	return &Result{Table: table, Points: points, Grid: grid}, nil
}

// Table returns every row scanned from the document, header included.
func (d *Decoder) Table(ctx context.Context) (*htmldoc.Table, error) {
	if d.err != nil {
		return nil, d.err
	}
	doc, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	return htmldoc.ScanString(doc), nil
}

// Points returns the points described by the data rows.
func (d *Decoder) Points(ctx context.Context) ([]model.Point, error) {
	table, err := d.Table(ctx)
	if err != nil {
		return nil, err
	}
	return PointsFromTable(table), nil
}

// Grid returns the decoded grid, or nil when the document has no points.
func (d *Decoder) Grid(ctx context.Context) (*model.Grid, error) {
	res, err := d.Result(ctx)
	if err != nil {
		return nil, err
	}
	return res.Grid, nil
}

// Lines returns the rendered rows of the grid, top row first. The slice is
// empty when the document has no points.
//
// Example:
//
//	lines, err := docgrid.Open(url).Lines(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, line := range lines {
//	    fmt.Println(line)
//	}
func (d *Decoder) Lines(ctx context.Context) ([]string, error) {
	g, err := d.Grid(ctx)
	if err != nil {
		return nil, err
	}
	return g.Lines(), nil
}

// Print writes the rendered rows to w, one line per row. Nothing is written
// when the document has no points.
func (d *Decoder) Print(ctx context.Context, w io.Writer) error {
	lines, err := d.Lines(ctx)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// ============================================================================
// Helpers
// ============================================================================

// load returns the document text, fetching it if needed.
func (d *Decoder) load(ctx context.Context) (string, error) {
	if d.hasDoc {
		return d.doc, nil
	}
	if d.hasRaw {
		return fetch.DecodeBody("input", d.raw, "", d.options.charset)
	}
	if d.source == "" {
		return "", ErrNoSource
	}
	return d.options.resolveFetcher().Fetch(ctx, d.source)
}

// PointsFromTable converts the data rows of t into points, skipping the
// header and every row that does not describe a point.
func PointsFromTable(t *htmldoc.Table) []model.Point {
	rows := t.DataRows()
	points := make([]model.Point, 0, len(rows))
	for _, row := range rows {
		if p, ok := model.PointFromCells(row.Cells); ok {
			points = append(points, p)
		}
	}
	return points
}

// buildGrid checks the size of the point bounds against the options and
// materializes the grid.
func buildGrid(points []model.Point, opts DecodeOptions) (*model.Grid, error) {
	b, ok := model.BoundsOf(points)
	if !ok {
		return nil, nil
	}

	area := b.Area()
	if area < 0 {
		return nil, fmt.Errorf("%w: bounds (%d,%d)-(%d,%d)", ErrGridTooLarge, b.MinX, b.MinY, b.MaxX, b.MaxY)
	}
	if opts.maxCells > 0 && area > opts.maxCells {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrGridTooLarge, b.Width(), b.Height(), opts.maxCells)
	}

	return model.NewGrid(points, opts.fill), nil
}
