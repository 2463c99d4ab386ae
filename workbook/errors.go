package workbook

import (
	"errors"
	"fmt"
)

// ErrRowShape marks a data row that is wider than the sheet's header row and
// therefore cannot be aligned with the table's columns.
var ErrRowShape = errors.New("row does not match range shape")

// ParseError is the spreadsheet side of the error taxonomy: workbook open
// failures, malformed ranges, and per-row deserialization failures all wrap
// their cause in one of these.
type ParseError struct {
	Path  string // workbook path, when the whole file failed to open
	Sheet string // sheet name, when a single sheet or row is at fault
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case e.Sheet != "":
		return fmt.Sprintf("parse sheet %s: %v", e.Sheet, e.Err)
	case e.Path != "":
		return fmt.Sprintf("parse workbook %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("parse workbook: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }
