package table

import "testing"

func TestNew_Index(t *testing.T) {
	tbl := New([]string{"Employee ID", "Active Status", " On Leave "}, nil)

	tests := []struct {
		name    string
		lookup  string
		wantPos int
		wantOK  bool
	}{
		{"exact", "Employee ID", 0, true},
		{"case insensitive", "employee id", 0, true},
		{"upper", "ACTIVE STATUS", 1, true},
		{"header whitespace ignored", "On Leave", 2, true},
		{"lookup whitespace ignored", "  Employee ID  ", 0, true},
		{"absent", "Department", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := tbl.Lookup(tt.lookup)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.lookup, ok, tt.wantOK)
			}
			if ok && pos != tt.wantPos {
				t.Errorf("Lookup(%q) = %d, want %d", tt.lookup, pos, tt.wantPos)
			}
		})
	}
}

func TestNew_DuplicateHeaderFirstWins(t *testing.T) {
	tbl := New([]string{"ID", "Name", "ID"}, nil)

	pos, ok := tbl.Lookup("ID")
	if !ok || pos != 0 {
		t.Errorf("Lookup(ID) = %d, %v; want 0, true", pos, ok)
	}
}

func TestCell_RaggedRows(t *testing.T) {
	tbl := New(
		[]string{"A", "B", "C"},
		[][]string{
			{"1", "2", "3"},
			{"4"},
			nil,
		},
	)

	if got := tbl.Cell(0, 2); got != "3" {
		t.Errorf("Cell(0,2) = %q, want %q", got, "3")
	}
	if got := tbl.Cell(1, 2); got != "" {
		t.Errorf("Cell(1,2) = %q, want empty", got)
	}
	if got := tbl.Cell(2, 0); got != "" {
		t.Errorf("Cell(2,0) = %q, want empty", got)
	}
}

func TestCounts(t *testing.T) {
	tbl := New([]string{"A", "B"}, [][]string{{"1", "2"}, {"3", "4"}, {"5"}})

	if got := tbl.ColumnCount(); got != 2 {
		t.Errorf("ColumnCount() = %d, want 2", got)
	}
	if got := tbl.RowCount(); got != 3 {
		t.Errorf("RowCount() = %d, want 3", got)
	}
}
