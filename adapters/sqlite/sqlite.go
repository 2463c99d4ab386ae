// Package sqlite provides a file-backed SQLite import backend, mostly useful
// for local dry runs of a migration before pointing it at a live server.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/darianmavgo/mkmysql/adapters"
)

// AdapterType is the database-type name this backend registers under.
const AdapterType = "sqlite"

func init() {
	adapters.Register(AdapterType, func() adapters.Adapter {
		return &Adapter{}
	})
}

// Adapter implements adapters.Adapter over a SQLite database file. The
// Database config field is the file path; host, port, user and password are
// ignored.
type Adapter struct {
	db *sql.DB
}

func (a *Adapter) Connect(cfg adapters.Config) error {
	db, err := sql.Open("sqlite", cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// Single connection avoids file locking contention between table workers.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = db
	return nil
}

func (a *Adapter) Exec(stmt string) error {
	_, err := a.db.Exec(stmt)
	return err
}

func (a *Adapter) TableExists(name string) (bool, error) {
	query := fmt.Sprintf(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = '%s'`, name)

	var table string
	err := a.db.QueryRow(query).Scan(&table)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (a *Adapter) Clear(name string) error {
	return a.Exec(fmt.Sprintf("DELETE FROM `%s`", name))
}

func (a *Adapter) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
