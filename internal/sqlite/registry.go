// Package sqlite implements the SQLite backend for the prototype registry.
// The database is created in memory and discarded on Close; nothing touches
// disk, keeping the registry as transient as the map backend. The backend
// exists for the SQL error surface: duplicate keys arrive as primary-key
// conflicts and absent keys as sql.ErrNoRows, both mapped to the sentinel
// errors in pkg/types.
package sqlite

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/dukaforge/swatch/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

var _ types.Registry = (*Registry)(nil)

// Registry stores prototypes in an in-memory SQLite database.
type Registry struct {
	mu     sync.Mutex
	closed bool
	db     *sql.DB
}

// NewRegistry opens an in-memory database and applies the schema.
func NewRegistry() (*Registry, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// One connection only: each pooled connection would get its own
	// private :memory: database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &Registry{db: db}, nil
}

// Set inserts a prototype under key. When key is empty a UUID v7 is
// generated. Returns ErrDuplicateKey if the key is already present; the
// stored row is untouched on failure.
func (r *Registry) Set(key string, c *types.Color) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return "", types.ErrRegistryClosed
	}
	if c == nil {
		return "", types.ErrInvalidColor
	}

	if key == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating UUID v7: %w", err)
		}
		key = id.String()
	} else if strings.TrimSpace(key) == "" {
		return "", types.ErrInvalidKey
	}

	var existing string
	err := r.db.QueryRow("SELECT key FROM prototypes WHERE key = ?", key).Scan(&existing)
	switch {
	case err == nil:
		return "", types.ErrDuplicateKey
	case !errors.Is(err, sql.ErrNoRows):
		return "", fmt.Errorf("checking key %q: %w", key, err)
	}

	_, err = r.db.Exec(
		"INSERT INTO prototypes (key, red, green, blue) VALUES (?, ?, ?, ?)",
		key, c.Red, c.Green, c.Blue,
	)
	if err != nil {
		return "", fmt.Errorf("inserting prototype %q: %w", key, err)
	}
	return key, nil
}

// Get returns the prototype stored under key, hydrated into a fresh Color.
// Returns ErrKeyNotFound if the key is absent.
func (r *Registry) Get(key string) (*types.Color, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, types.ErrRegistryClosed
	}
	if key == "" {
		return nil, types.ErrInvalidKey
	}

	var red, green, blue uint8
	err := r.db.QueryRow(
		"SELECT red, green, blue FROM prototypes WHERE key = ?", key,
	).Scan(&red, &green, &blue)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrKeyNotFound
		}
		return nil, fmt.Errorf("getting prototype %q: %w", key, err)
	}
	return &types.Color{Red: red, Green: green, Blue: blue}, nil
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, types.ErrRegistryClosed
	}

	rows, err := r.db.Query("SELECT key FROM prototypes ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("listing keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning key: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating keys: %w", err)
	}
	return keys, nil
}

// Close tears down the database. Idempotent.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	return r.db.Close()
}
