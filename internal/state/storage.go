package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/smartpack/internal/db"
)

// GetItem returns the value stored under key. The second result is false
// when the key is absent.
func (m *Manager) GetItem(key string) (string, bool, error) {
	var value sql.NullString
	err := m.db.QueryRow(`SELECT value FROM ui_storage WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return dbutil.NullStringValue(value), value.Valid, nil
}

// SetItem stores value under key, replacing any previous value.
func (m *Manager) SetItem(key, value string) error {
	return setItem(m.db, key, value)
}

// SetItems stores several keys in one transaction.
func (m *Manager) SetItems(items map[string]string) error {
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		for k, v := range items {
			if err := setItem(tx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveItem deletes key. Removing a missing key is not an error.
func (m *Manager) RemoveItem(key string) error {
	_, err := m.db.Exec(`DELETE FROM ui_storage WHERE key = ?`, key)
	return err
}

// Keys lists every stored key in lexical order.
func (m *Manager) Keys() ([]string, error) {
	rows, err := m.db.Query(`SELECT key FROM ui_storage ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func setItem(db execer, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO ui_storage (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now().Unix())
	return err
}
