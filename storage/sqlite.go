package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps records in a single sqlite database, one row per
// namespace. Useful when the host editor already ships a sqlite workspace
// file and wants session state inside it instead of a loose TOML file.
type SQLiteStore struct {
	db        *sql.DB
	namespace string
}

// OpenSQLiteStore opens or creates the database at path and prepares the
// records table.
func OpenSQLiteStore(path, namespace string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS records (
		namespace  TEXT PRIMARY KEY,
		record     BLOB NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLiteStore{db: db, namespace: namespace}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load implements Store.
func (s *SQLiteStore) Load(v any) (bool, error) {
	var data []byte
	err := s.db.QueryRow(
		`SELECT record FROM records WHERE namespace = ?`, s.namespace,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read record: %w", err)
	}
	if err := toml.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode record %q: %w", s.namespace, err)
	}
	return true, nil
}

// Save implements Store.
func (s *SQLiteStore) Save(v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO records (namespace, record, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET
			record = excluded.record,
			updated_at = excluded.updated_at
	`, s.namespace, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}
