// Package adapters selects and opens the database backend the import runs
// against. Backends register themselves by name, mirroring database/sql's
// driver model.
package adapters

import (
	"fmt"
	"sort"
	"sync"
)

// Config carries the connection identity for a backend. File-backed
// backends use Database as the path and ignore the network fields.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// Adapter is the connection abstraction the importer needs: execute a
// statement with no result, probe for a table, clear a table. The underlying
// pool is shared; every method is safe for concurrent use.
type Adapter interface {
	// Connect opens and verifies the connection pool.
	Connect(cfg Config) error

	// Exec runs one statement and discards any result.
	Exec(stmt string) error

	// TableExists reports whether name is an existing table. The lookup uses
	// the backend's native catalog query with name interpolated verbatim.
	TableExists(name string) (bool, error)

	// Clear deletes every row from name.
	Clear(name string) error

	Close() error
}

var (
	adaptersMu sync.RWMutex
	registry   = make(map[string]func() Adapter)
)

// Register makes a backend available under the provided name. It panics if
// the name is already taken or factory is nil.
func Register(name string, factory func() Adapter) {
	adaptersMu.Lock()
	defer adaptersMu.Unlock()
	if factory == nil {
		panic("adapters: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic("adapters: Register called twice for adapter " + name)
	}
	registry[name] = factory
}

// Open constructs the named backend and connects it.
func Open(name string, cfg Config) (Adapter, error) {
	adaptersMu.RLock()
	factory, ok := registry[name]
	adaptersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("adapters: unknown database type %q (forgotten import?)", name)
	}

	a := factory()
	if err := a.Connect(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

// Types returns the sorted names of the registered backends.
func Types() []string {
	adaptersMu.RLock()
	defer adaptersMu.RUnlock()
	list := make([]string, 0, len(registry))
	for name := range registry {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}
