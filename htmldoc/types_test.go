package htmldoc

import "testing"

func TestTable_HeaderAndDataRows(t *testing.T) {
	var nilTable *Table
	if _, ok := nilTable.Header(); ok {
		t.Error("nil Header() ok = true")
	}
	if rows := nilTable.DataRows(); rows != nil {
		t.Errorf("nil DataRows() = %v", rows)
	}

	one := &Table{Rows: []Row{{Cells: []string{"h"}}}}
	if h, ok := one.Header(); !ok || h.Cells[0] != "h" {
		t.Errorf("Header() = %v, %v", h, ok)
	}
	if rows := one.DataRows(); len(rows) != 0 {
		t.Errorf("header-only DataRows() = %v, want none", rows)
	}

	three := &Table{Rows: []Row{{}, {Cells: []string{"a"}}, {Cells: []string{"b"}}}}
	rows := three.DataRows()
	if len(rows) != 2 || rows[0].Cells[0] != "a" || rows[1].Cells[0] != "b" {
		t.Errorf("DataRows() = %v", rows)
	}
}

func TestTable_ToMarkdown(t *testing.T) {
	table := &Table{Rows: []Row{
		{Cells: []string{"x", "ch", "y"}},
		{Cells: []string{"0", "|", "1"}},
		{Cells: []string{"2"}},
		{Cells: []string{"3", `\`, "a\r\nb"}},
	}}

	want := "| x | ch | y |\n" +
		"| --- | --- | --- |\n" +
		"| 0 | \\| | 1 |\n" +
		"| 2 |  |  |\n" +
		"| 3 | \\\\ | a b |\n"
	if got := table.ToMarkdown(); got != want {
		t.Errorf("ToMarkdown() =\n%s\nwant\n%s", got, want)
	}
}

func TestTable_ToMarkdown_Empty(t *testing.T) {
	if got := (&Table{}).ToMarkdown(); got != "" {
		t.Errorf("ToMarkdown() = %q, want empty", got)
	}
	if got := (&Table{Rows: []Row{{}}}).ToMarkdown(); got != "" {
		t.Errorf("ToMarkdown() = %q, want empty", got)
	}
}
