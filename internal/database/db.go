package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// DB wraps the shared PostgreSQL connection pool. It is created once at
// process start, injected into every consumer, and closed at shutdown.
type DB struct {
	conn *sql.DB
}

// New opens a connection pool using a URL-form connection string and
// verifies it with a ping.
func New(connStr string) (*DB, error) {
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Ping verifies the connection is still alive.
func (db *DB) Ping() error {
	return db.conn.Ping()
}

// Close closes the connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}
