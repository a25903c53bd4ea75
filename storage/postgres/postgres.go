// Package postgres backs the storage interfaces with PostgreSQL via pgx.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store implements every storage interface over one connection pool.
type Store struct {
	db *pgxpool.Pool
}

// New wraps an existing connection pool.
func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}
