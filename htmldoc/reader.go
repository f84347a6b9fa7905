// Package htmldoc scans HTML documents for table rows.
//
// The scanner is a streaming tag matcher over the golang.org/x/net/html
// tokenizer rather than a DOM builder: a row runs from a <tr> start tag to
// the first </tr> after it, and a cell from a <td> start tag to the first
// </td> after it. Nothing is reordered or normalized, so cells are seen
// exactly as they appear in the source.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Open scans the HTML file at filename.
func Open(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Scan(f)
}

// ScanString scans an HTML document held in memory.
func ScanString(doc string) *Table {
	// A strings.Reader never fails, so neither does Scan.
	t, _ := Scan(strings.NewReader(doc))
	return t
}

// Scan reads r to the end and collects every table row in document order.
// Rows from all tables in the document are collected into one Table.
//
// A row that is still open at end of input is dropped, as is a cell still
// open when its row closes. Start tags of rows or cells that are already open
// are treated as content.
func Scan(r io.Reader) (*Table, error) {
	z := html.NewTokenizer(r)
	s := &scanner{table: &Table{}}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("scanning HTML: %w", err)
			}
			return s.table, nil

		case html.TextToken:
			// Raw keeps entities undecoded; DecodeEntities handles the
			// subset this format uses.
			s.text(string(z.Raw()))

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			s.open(string(name))

		case html.EndTagToken:
			name, _ := z.TagName()
			s.close(string(name))
		}
	}
}

// scanner tracks the open row and cell while tokens stream past.
type scanner struct {
	table  *Table
	inRow  bool
	inCell bool
	row    Row
	cell   strings.Builder
}

func (s *scanner) open(tag string) {
	switch tag {
	case "tr":
		if !s.inRow {
			s.inRow = true
			s.row = Row{}
		}
	case "td":
		if s.inRow && !s.inCell {
			s.inCell = true
			s.cell.Reset()
		}
	}
}

func (s *scanner) close(tag string) {
	switch tag {
	case "td":
		if s.inCell {
			s.inCell = false
			s.row.Cells = append(s.row.Cells, cleanCell(s.cell.String()))
		}
	case "tr":
		if s.inRow {
			s.inRow = false
			s.inCell = false
			s.table.Rows = append(s.table.Rows, s.row)
		}
	}
}

func (s *scanner) text(raw string) {
	if s.inCell {
		s.cell.WriteString(raw)
	}
}

// cleanCell trims the tag-free cell text and decodes its entities.
func cleanCell(raw string) string {
	return DecodeEntities(strings.TrimSpace(raw))
}
