package catalog

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when no row has the requested id.
var ErrNotFound = errors.New("record not found")

// store handles all database operations for the catalog.
type store struct {
	db *sql.DB
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
