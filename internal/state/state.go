// Package state persists UI state in a small sqlite key/value store that
// plays the role of the browser's local storage.
package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "smartpack"
	dbFileName = "smartpack.db"
)

// Manager owns the sqlite database holding persisted UI state.
type Manager struct {
	db *sql.DB
}

// Open opens the database at the default xdg data location.
func Open() (*Manager, error) {
	dbPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens (creating if needed) the database at dbPath.
func OpenPath(dbPath string) (*Manager, error) {
	// Ensure directory exists
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if dbPath == ":memory:" {
		// each new connection would get its own empty in-memory database
		db.SetMaxOpenConns(1)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Manager{db: db}, nil
}

// DefaultPath returns the xdg data path of the state database.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Close closes the database.
func (m *Manager) Close() error {
	return m.db.Close()
}

// DB exposes the underlying database.
func (m *Manager) DB() *sql.DB {
	return m.db
}
