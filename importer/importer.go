// Package importer drives one table's worth of rows from a parsed workbook
// into the target database.
package importer

import (
	"log"

	"github.com/darianmavgo/mkmysql/adapters"
	"github.com/darianmavgo/mkmysql/workbook"
)

// Options is the immutable run configuration, built once from user input and
// shared read-only across every concurrent table import.
type Options struct {
	Source       string // workbook path
	DatabaseType string
	Database     string
	Host         string
	Port         int
	User         string
	Password     string
	Clear        bool // delete existing rows before loading
	Skip         int  // rows discarded from the top of each sheet's range
	DjangoStyle  bool // naming-convention transform for table and column names
}

// Outcome reports one finished table import. No cross-table aggregate
// exists; each table succeeds or fails on its own.
type Outcome struct {
	Rows  int    // rows successfully inserted
	Table string // resolved table name actually used in SQL
}

// ImportTable loads one table: resolve the effective name, verify the table
// exists, optionally clear it, then stream rows through BuildInsert and
// execute each statement in source order. A row that fails to deserialize or
// that cannot be aligned with the field list is skipped with a warning; a
// statement failure aborts the table with an ImportError, leaving any rows
// already executed in place.
func ImportTable(opts *Options, db adapters.Adapter, table *workbook.Table) (Outcome, error) {
	name := table.Name
	if opts.DjangoStyle {
		name = workbook.ConventionalTableName(opts.Source, table.Name)
	}

	exists, err := db.TableExists(name)
	if err != nil {
		return Outcome{}, &ImportError{Table: name, Err: err}
	}
	if !exists {
		return Outcome{}, &ImportError{Table: name, Err: ErrTableNotExist}
	}

	if opts.Clear {
		if err := db.Clear(name); err != nil {
			return Outcome{}, &ImportError{Table: name, Err: err}
		}
	}

	count := 0
	err = table.ScanRows(opts.Skip, func(row []workbook.Cell, rowErr error) error {
		if rowErr != nil {
			log.Printf("[MKMYSQL] table %s: skipping row: %v", name, rowErr)
			return nil
		}
		if len(row) != len(table.Fields) {
			log.Printf("[MKMYSQL] table %s: skipping row with %d cells for %d fields", name, len(row), len(table.Fields))
			return nil
		}

		if err := db.Exec(BuildInsert(name, table.Fields, row)); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return Outcome{}, &ImportError{Table: name, Err: err}
	}

	return Outcome{Rows: count, Table: name}, nil
}
