package recon

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingInput is returned when a required file path was not supplied.
// Validation happens before the pipeline touches any file.
var ErrMissingInput = errors.New("missing input: both the sales report and the people file are required")

// SchemaMismatchError indicates the sales report lacks required named
// columns. The message lists what is missing and what is actually present
// so the operator can diagnose the export.
type SchemaMismatchError struct {
	Missing   []string
	Available []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("missing columns in sales report: %s. Available columns: %s",
		strings.Join(e.Missing, ", "), strings.Join(e.Available, ", "))
}

// InsufficientColumnsError indicates the people file is narrower than the
// fixed positional contract requires.
type InsufficientColumnsError struct {
	Got  int
	Need int
}

func (e *InsufficientColumnsError) Error() string {
	return fmt.Sprintf("people file has %d columns; need at least %d to reach column DA", e.Got, e.Need)
}
