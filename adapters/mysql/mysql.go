// Package mysql provides the MySQL import backend.
package mysql

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/darianmavgo/mkmysql/adapters"
)

// AdapterType is the database-type name this backend registers under.
const AdapterType = "mysql"

func init() {
	adapters.Register(AdapterType, func() adapters.Adapter {
		return &Adapter{}
	})
}

// Adapter implements adapters.Adapter over the MySQL wire protocol.
type Adapter struct {
	db *sql.DB
}

// Connect opens a pool against the configured server and pings it.
func (a *Adapter) Connect(cfg adapters.Config) error {
	db, err := sql.Open("mysql", buildDSN(cfg))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = db
	return nil
}

func buildDSN(cfg adapters.Config) string {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mc.DBName = cfg.Database
	return mc.FormatDSN()
}

func (a *Adapter) Exec(stmt string) error {
	_, err := a.db.Exec(stmt)
	return err
}

// TableExists issues SHOW TABLES LIKE with the name interpolated verbatim
// into the query text; a match can therefore only be a literal one.
func (a *Adapter) TableExists(name string) (bool, error) {
	query := fmt.Sprintf(`SHOW TABLES LIKE "%s"`, name)

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
