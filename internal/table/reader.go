package table

import (
	"errors"
	"fmt"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/opsdesk/loareturn/internal/sniff"
)

// strategy is a decode plan chosen from the sniffer's classification. The
// mapping is a fixed decision table so every combination stays enumerable
// in tests rather than hiding inside an error-triggered branch.
type strategy int

const (
	// strategyReject refuses to parse at all (encrypted container).
	strategyReject strategy = iota

	// strategyLegacy decodes via the BIFF path directly.
	strategyLegacy

	// strategyModernFirst attempts the zip-based decode; if that fails and
	// an independent signature check confirms a legacy container, the BIFF
	// path is retried before surfacing an error. This tolerates legacy
	// files carrying a modern extension.
	strategyModernFirst
)

// chooseStrategy maps a classification to its decode strategy.
func chooseStrategy(class sniff.Classification) strategy {
	switch class {
	case sniff.LegacyEncrypted:
		return strategyReject
	case sniff.LegacyBinary:
		return strategyLegacy
	default:
		// Modern and Unknown both attempt the modern path; Unknown means
		// probing failed and the decode gets to fail on its own terms.
		return strategyModernFirst
	}
}

// Read loads the file at path into a Table using the decode strategy for
// the given classification. skipRows leading rows are dropped before the
// next row is treated as the header.
func Read(path string, class sniff.Classification, skipRows int) (*Table, error) {
	switch chooseStrategy(class) {
	case strategyReject:
		return nil, &ProtectedDocumentError{Path: path}

	case strategyLegacy:
		rows, err := decodeLegacy(path)
		if err != nil {
			return nil, &UnreadableFileError{Path: path, Err: err}
		}
		return splitHeader(rows, skipRows, path)

	default:
		rows, modernErr := decodeModern(path)
		if modernErr == nil {
			return splitHeader(rows, skipRows, path)
		}
		if sniff.IsLegacyContainer(path) {
			rows, legacyErr := decodeLegacy(path)
			if legacyErr == nil {
				return splitHeader(rows, skipRows, path)
			}
			return nil, &UnreadableFileError{Path: path, Err: legacyErr}
		}
		return nil, &UnreadableFileError{Path: path, Err: modernErr}
	}
}

// decodeModern reads the first sheet of a zip-based workbook.
func decodeModern(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// decodeLegacy reads the first sheet of a BIFF workbook. Charset is tried
// as windows-1251 first, then utf-8, matching what the files in the wild
// actually carry.
func decodeLegacy(path string) ([][]string, error) {
	wb, err := xls.Open(path, "windows-1251")
	if err != nil {
		wb, err = xls.Open(path, "utf-8")
		if err != nil {
			return nil, err
		}
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("workbook has no sheets")
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cols := make([]string, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			cols[j] = row.Col(j)
		}
		rows = append(rows, cols)
	}
	return rows, nil
}

// splitHeader drops skipRows leading rows, takes the next row as the
// header, and builds the Table from the remainder.
func splitHeader(rows [][]string, skipRows int, path string) (*Table, error) {
	if skipRows < 0 {
		skipRows = 0
	}
	if len(rows) <= skipRows {
		return nil, &UnreadableFileError{
			Path: path,
			Err:  fmt.Errorf("no header row: sheet has %d rows, need more than %d", len(rows), skipRows),
		}
	}
	return New(rows[skipRows], rows[skipRows+1:]), nil
}
