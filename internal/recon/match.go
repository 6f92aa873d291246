package recon

import (
	"strings"

	"github.com/opsdesk/loareturn/internal/table"
)

// Sales report named-column contract.
const (
	colSalesEmployeeID = "Employee ID"
	colSalesActive     = "Active Status"
	colSalesOnLeave    = "On Leave"
)

// People file positional contract. Positions are an external agreement
// with the personnel export, not something to discover from headers.
const (
	colPersonID     = 0
	colPersonStatus = 10

	// MinPersonColumns is the narrowest people file the positional
	// contract can be applied to (the plan-type column sits at index 104).
	MinPersonColumns = 105
)

// statusLOA is the personnel status code for leave of absence.
const statusLOA = "LOA"

// ActiveIDSet holds the employee identifiers considered active and not on
// leave per the sales roster.
type ActiveIDSet map[int64]struct{}

// Contains reports set membership.
func (s ActiveIDSet) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

// ActiveIdentifierSet derives the active-and-not-on-leave identifier set
// from the sales table. Rows with unparseable or empty identifiers are
// dropped silently: they cannot participate in the join. Duplicates
// collapse.
func ActiveIdentifierSet(sales *table.Table) (ActiveIDSet, error) {
	required := []string{colSalesEmployeeID, colSalesActive, colSalesOnLeave}

	positions := make(map[string]int, len(required))
	var missing []string
	for _, name := range required {
		pos, ok := sales.Lookup(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		positions[name] = pos
	}
	if len(missing) > 0 {
		return nil, &SchemaMismatchError{Missing: missing, Available: sales.Header}
	}

	idCol := positions[colSalesEmployeeID]
	activeCol := positions[colSalesActive]
	leaveCol := positions[colSalesOnLeave]

	active := make(ActiveIDSet)
	for i := range sales.Rows {
		if !NormalizeFlag(sales.Cell(i, activeCol)) || NormalizeFlag(sales.Cell(i, leaveCol)) {
			continue
		}
		id, ok := ParseEmployeeID(sales.Cell(i, idCol))
		if !ok {
			continue
		}
		active[id] = struct{}{}
	}
	return active, nil
}

// SelectionMask computes, per people row in source order, whether the row
// belongs in the output: the identifier parses, it is in the active set,
// and the status column (trimmed, upper-cased) equals "LOA".
func SelectionMask(people *table.Table, active ActiveIDSet) ([]bool, error) {
	if people.ColumnCount() < MinPersonColumns {
		return nil, &InsufficientColumnsError{Got: people.ColumnCount(), Need: MinPersonColumns}
	}

	mask := make([]bool, people.RowCount())
	for i := range people.Rows {
		id, ok := ParseEmployeeID(people.Cell(i, colPersonID))
		if !ok || !active.Contains(id) {
			continue
		}
		status := strings.ToUpper(strings.TrimSpace(people.Cell(i, colPersonStatus)))
		mask[i] = status == statusLOA
	}
	return mask, nil
}
