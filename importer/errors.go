package importer

import (
	"errors"
	"fmt"
)

// ErrTableNotExist is the structured "table does not exist" condition from
// the existence check. Match it with errors.Is.
var ErrTableNotExist = errors.New("table doesn't exist")

// ImportError is the database side of the error taxonomy: connection and
// statement failures, and the missing-table condition, all wrap their cause
// in one of these, tagged with the resolved table name.
type ImportError struct {
	Table string
	Err   error
}

func (e *ImportError) Error() string {
	if errors.Is(e.Err, ErrTableNotExist) {
		return fmt.Sprintf("Table '%s' doesn't exist", e.Table)
	}
	return fmt.Sprintf("import %s: %v", e.Table, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }
