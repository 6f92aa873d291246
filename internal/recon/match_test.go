package recon

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/opsdesk/loareturn/internal/table"
)

func salesTable(rows ...[]string) *table.Table {
	return table.New([]string{"Employee ID", "Active Status", "On Leave"}, rows)
}

func TestActiveIdentifierSet(t *testing.T) {
	sales := salesTable(
		[]string{"1", "Yes", "No"},
		[]string{"2", "Yes", "Yes"},
		[]string{"3", "No", "No"},
	)

	active, err := ActiveIdentifierSet(sales)
	if err != nil {
		t.Fatalf("ActiveIdentifierSet() error = %v", err)
	}

	if len(active) != 1 || !active.Contains(1) {
		t.Errorf("active set = %v, want {1}", active)
	}
}

func TestActiveIdentifierSet_FlagNormalization(t *testing.T) {
	sales := salesTable(
		[]string{"10", " yes ", ""},
		[]string{"11", "YES", "no"},
		[]string{"12", "yes", " YES "},
		[]string{"13", "maybe", "no"},
		[]string{"14", "", ""},
	)

	active, err := ActiveIdentifierSet(sales)
	if err != nil {
		t.Fatalf("ActiveIdentifierSet() error = %v", err)
	}

	for _, id := range []int64{10, 11} {
		if !active.Contains(id) {
			t.Errorf("active set missing %d", id)
		}
	}
	for _, id := range []int64{12, 13, 14} {
		if active.Contains(id) {
			t.Errorf("active set wrongly contains %d", id)
		}
	}
}

func TestActiveIdentifierSet_DropsInvalidIDs(t *testing.T) {
	sales := salesTable(
		[]string{"", "Yes", "No"},
		[]string{"E42", "Yes", "No"},
		[]string{"101.0", "Yes", "No"},
	)

	active, err := ActiveIdentifierSet(sales)
	if err != nil {
		t.Fatalf("ActiveIdentifierSet() error = %v", err)
	}

	if len(active) != 1 || !active.Contains(101) {
		t.Errorf("active set = %v, want {101}", active)
	}
}

func TestActiveIdentifierSet_Deduplicates(t *testing.T) {
	sales := salesTable(
		[]string{"7", "Yes", "No"},
		[]string{"7", "Yes", "No"},
		[]string{"7.0", "Yes", "No"},
	)

	active, err := ActiveIdentifierSet(sales)
	if err != nil {
		t.Fatalf("ActiveIdentifierSet() error = %v", err)
	}

	if len(active) != 1 {
		t.Errorf("active set size = %d, want 1", len(active))
	}
}

func TestActiveIdentifierSet_SchemaMismatch(t *testing.T) {
	sales := table.New([]string{"Employee ID", "Status"}, nil)

	_, err := ActiveIdentifierSet(sales)

	var mismatch *SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want SchemaMismatchError", err)
	}
	for _, want := range []string{"Active Status", "On Leave"} {
		found := false
		for _, m := range mismatch.Missing {
			if m == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Missing = %v, should include %q", mismatch.Missing, want)
		}
	}
	// The message names what is present so the operator can diagnose the export.
	if !strings.Contains(err.Error(), "Status") {
		t.Errorf("message should list available columns: %v", err)
	}
}

// peopleTable builds a table wide enough for the positional contract, with
// the given id and status values per row.
func peopleTable(rows ...[2]string) *table.Table {
	header := make([]string, MinPersonColumns)
	for i := range header {
		header[i] = fmt.Sprintf("Col%d", i+1)
	}
	var data [][]string
	for _, r := range rows {
		row := make([]string, MinPersonColumns)
		row[colPersonID] = r[0]
		row[colPersonStatus] = r[1]
		data = append(data, row)
	}
	return table.New(header, data)
}

func TestSelectionMask(t *testing.T) {
	people := peopleTable(
		[2]string{"1", "loa"},     // active, LOA (case-insensitive)
		[2]string{"1", " LOA "},   // active, LOA (whitespace)
		[2]string{"2", "LOA"},     // not in active set
		[2]string{"1", "Active"},  // wrong status
		[2]string{"E1", "LOA"},    // unparseable id
		[2]string{"1.0", "LOA"},   // float-form id joins
		[2]string{"", "LOA"},      // empty id
	)
	active := ActiveIDSet{1: {}}

	mask, err := SelectionMask(people, active)
	if err != nil {
		t.Fatalf("SelectionMask() error = %v", err)
	}

	want := []bool{true, true, false, false, false, true, false}
	if len(mask) != len(want) {
		t.Fatalf("mask length = %d, want %d", len(mask), len(want))
	}
	for i := range want {
		if mask[i] != want[i] {
			t.Errorf("mask[%d] = %v, want %v", i, mask[i], want[i])
		}
	}
}

func TestSelectionMask_InsufficientColumns(t *testing.T) {
	header := make([]string, 40)
	for i := range header {
		header[i] = fmt.Sprintf("Col%d", i+1)
	}
	people := table.New(header, nil)

	_, err := SelectionMask(people, ActiveIDSet{})

	var insufficient *InsufficientColumnsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("error = %v, want InsufficientColumnsError", err)
	}
	if insufficient.Got != 40 || insufficient.Need != MinPersonColumns {
		t.Errorf("Got/Need = %d/%d, want 40/%d", insufficient.Got, insufficient.Need, MinPersonColumns)
	}
	if !strings.Contains(err.Error(), "40") {
		t.Errorf("message should name the actual column count: %v", err)
	}
}
