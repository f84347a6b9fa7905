package htmldoc

import "strings"

// Row is one scanned table row. Cells hold tag-free, trimmed and
// entity-decoded text in source order.
type Row struct {
	Cells []string
}

// Table holds every row found in a document, in document order.
type Table struct {
	Rows []Row
}

// Header returns the first row, which names the columns. The second return
// value is false when the table has no rows.
func (t *Table) Header() (Row, bool) {
	if t == nil || len(t.Rows) == 0 {
		return Row{}, false
	}
	return t.Rows[0], true
}

// DataRows returns every row after the header.
func (t *Table) DataRows() []Row {
	if t == nil || len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}

// ToMarkdown converts the table to markdown format. The first row becomes
// the markdown header. Rows shorter than the header are padded.
func (t *Table) ToMarkdown() string {
	if t == nil || len(t.Rows) == 0 {
		return ""
	}

	cols := 0
	for _, row := range t.Rows {
		if len(row.Cells) > cols {
			cols = len(row.Cells)
		}
	}
	if cols == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		sb.WriteString("|")
		for i := 0; i < cols; i++ {
			text := ""
			if i < len(cells) {
				text = cells[i]
			}
			sb.WriteString(" " + markdownCell.Replace(text) + " |")
		}
		sb.WriteString("\n")
	}

	writeRow(t.Rows[0].Cells)

	// Separator
	sb.WriteString("|")
	for i := 0; i < cols; i++ {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	for _, row := range t.Rows[1:] {
		writeRow(row.Cells)
	}

	return sb.String()
}

// markdownCell keeps a cell on one line and stops its text from closing
// the cell or escaping the character after it. Backslashes are common in
// ASCII art.
var markdownCell = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", "",
)
