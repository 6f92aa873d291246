package table

import "fmt"

// ProtectedDocumentError indicates a legacy workbook whose payload is
// wrapped by sensitivity labels or IRM. It is fatal and never retried; the
// message carries the remediation guidance verbatim to the caller.
type ProtectedDocumentError struct {
	Path string
}

func (e *ProtectedDocumentError) Error() string {
	return "protected document: the file appears to be protected by sensitivity labels or IRM. Open it in Excel and save an unprotected copy, then retry."
}

// UnreadableFileError indicates that no decode strategy could read the file.
// The underlying decode error is preserved for logs.
type UnreadableFileError struct {
	Path string
	Err  error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("unreadable file %s: %v", e.Path, e.Err)
}

func (e *UnreadableFileError) Unwrap() error {
	return e.Err
}
