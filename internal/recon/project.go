package recon

import (
	"fmt"

	"github.com/opsdesk/loareturn/internal/table"
)

// ColumnMapping pairs a source column position with its output name.
type ColumnMapping struct {
	Position int
	Name     string
}

// Projection is a versioned, ordered list of column mappings. The two
// variants below coexist across front ends; treat the lists as
// configuration, not as duplicated logic to unify.
type Projection struct {
	Name    string
	Columns []ColumnMapping
}

// ReturnUpdate is the eight-column projection used by the CLI flow.
var ReturnUpdate = Projection{
	Name: "return-update",
	Columns: []ColumnMapping{
		{0, "# Employee ID*"},
		{6, "First Name"},
		{8, "Last Name"},
		{9, "Region"},
		{68, "Country"},
		{10, "Employee Status"},
		{50, "Analyst_Name"},
		{104, "Plan_Type"},
	},
}

// ReturnUpdateWithTermination is the nine-column projection used by the
// web flow; it adds the termination date after the status column.
var ReturnUpdateWithTermination = Projection{
	Name: "return-update-termination",
	Columns: []ColumnMapping{
		{0, "# Employee ID*"},
		{6, "First Name"},
		{8, "Last Name"},
		{9, "Region"},
		{68, "Country"},
		{10, "Employee Status"},
		{12, "Termination Date"},
		{50, "Analyst_Name"},
		{104, "Plan_Type"},
	},
}

// Project selects the masked people rows, picks columns by fixed position,
// and renames them to the projection's output schema. Source row order is
// preserved. A mask of the wrong length is a programming error, not a
// runtime input condition, and panics.
func Project(people *table.Table, mask []bool, proj Projection) *table.Table {
	if len(mask) != people.RowCount() {
		panic(fmt.Sprintf("recon: mask length %d does not match %d rows", len(mask), people.RowCount()))
	}
	if len(proj.Columns) == 0 {
		panic("recon: empty projection")
	}

	header := make([]string, len(proj.Columns))
	for i, m := range proj.Columns {
		header[i] = m.Name
	}

	var rows [][]string
	for i, keep := range mask {
		if !keep {
			continue
		}
		row := make([]string, len(proj.Columns))
		for j, m := range proj.Columns {
			row[j] = people.Cell(i, m.Position)
		}
		rows = append(rows, row)
	}
	return table.New(header, rows)
}
