// Package table loads spreadsheet files into in-memory tables and writes
// result tables back out.
//
// Reading is format-aware: modern zip-based workbooks decode via excelize,
// legacy compound-file workbooks via the BIFF reader, with an explicit
// fallback for misnamed files. Tables carry both a positional index (the
// personnel feed is addressed by fixed column position) and a
// case-insensitive named index (the sales feed is addressed by header name).
package table

import "strings"

// HeaderIndex maps column names (lowercase) to their position in a row.
type HeaderIndex map[string]int

// Table is an immutable in-memory spreadsheet sheet: one header row plus
// data rows. Rows may be ragged; Cell is bounds-safe.
type Table struct {
	Header []string
	Rows   [][]string

	index HeaderIndex
}

// New builds a Table from a header row and data rows.
func New(header []string, rows [][]string) *Table {
	idx := make(HeaderIndex, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		// First occurrence wins for duplicate headers.
		if _, exists := idx[key]; !exists {
			idx[key] = i
		}
	}
	return &Table{Header: header, Rows: rows, index: idx}
}

// ColumnCount returns the width of the table per its header row.
func (t *Table) ColumnCount() int {
	return len(t.Header)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Cell returns the value at (row, col), or "" when the row is shorter than
// col. Decoders trim trailing empty cells, so short rows are expected.
func (t *Table) Cell(row, col int) string {
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// Lookup returns the position of a named column, matched case-insensitively
// with surrounding whitespace ignored.
func (t *Table) Lookup(name string) (int, bool) {
	pos, ok := t.index[strings.ToLower(strings.TrimSpace(name))]
	return pos, ok
}
