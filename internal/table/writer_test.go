package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opsdesk/loareturn/internal/sniff"
)

func TestWriteWorkbook_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	tbl := New(
		[]string{"# Employee ID*", "First Name", "Last Name"},
		[][]string{
			{"1001", "Ada", "Lovelace"},
			{"1002", "Grace", "Hopper"},
		},
	)

	path, err := WriteWorkbook(tbl, dir)
	if err != nil {
		t.Fatalf("WriteWorkbook() error = %v", err)
	}
	if filepath.Base(path) != OutputFileName {
		t.Errorf("output name = %q, want %q", filepath.Base(path), OutputFileName)
	}

	got, err := Read(path, sniff.Modern, 0)
	if err != nil {
		t.Fatalf("re-reading output: %v", err)
	}

	if len(got.Header) != len(tbl.Header) {
		t.Fatalf("header length = %d, want %d", len(got.Header), len(tbl.Header))
	}
	for i, name := range tbl.Header {
		if got.Header[i] != name {
			t.Errorf("header[%d] = %q, want %q", i, got.Header[i], name)
		}
	}
	if got.RowCount() != tbl.RowCount() {
		t.Errorf("RowCount() = %d, want %d", got.RowCount(), tbl.RowCount())
	}
	if got.Cell(1, 1) != "Grace" {
		t.Errorf("Cell(1,1) = %q, want %q", got.Cell(1, 1), "Grace")
	}
}

func TestWriteWorkbook_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	path, err := WriteWorkbook(New([]string{"A"}, nil), dir)
	if err != nil {
		t.Fatalf("WriteWorkbook() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestWriteWorkbook_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()

	if _, err := WriteWorkbook(New([]string{"A"}, [][]string{{"old"}, {"older"}}), dir); err != nil {
		t.Fatalf("first write: %v", err)
	}
	path, err := WriteWorkbook(New([]string{"A"}, [][]string{{"new"}}), dir)
	if err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, err := Read(path, sniff.Modern, 0)
	if err != nil {
		t.Fatalf("re-reading output: %v", err)
	}
	if got.RowCount() != 1 || got.Cell(0, 0) != "new" {
		t.Errorf("overwrite not effective: rows = %d, cell = %q", got.RowCount(), got.Cell(0, 0))
	}
}

func TestWriteWorkbook_EmptyTable(t *testing.T) {
	// Zero matches still produce a workbook with the header row.
	dir := t.TempDir()
	tbl := New([]string{"# Employee ID*", "First Name"}, nil)

	path, err := WriteWorkbook(tbl, dir)
	if err != nil {
		t.Fatalf("WriteWorkbook() error = %v", err)
	}

	got, err := Read(path, sniff.Modern, 0)
	if err != nil {
		t.Fatalf("re-reading output: %v", err)
	}
	if got.RowCount() != 0 {
		t.Errorf("RowCount() = %d, want 0", got.RowCount())
	}
	if got.Header[0] != "# Employee ID*" {
		t.Errorf("header[0] = %q, want %q", got.Header[0], "# Employee ID*")
	}
}
