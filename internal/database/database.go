package database

import (
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

//go:embed migrations/*.sql
var migrations embed.FS

// InitDB opens the database and migrates it to the latest schema.
// Without primaryURL dbPath is opened as a local SQLite file; ":memory:"
// gives a throwaway database for tests.
func InitDB(dbPath string, primaryURL string, authToken string) (*sql.DB, error) {
	if primaryURL == "" {
		log.Info("Initializing local SQLite database", "path", dbPath)
		db, err := sql.Open("sqlite3", localDSN(dbPath))
		if err != nil {
			return nil, fmt.Errorf("failed to open local database: %w", err)
		}
		if dbPath == ":memory:" {
			// Each connection to :memory: is a separate database.
			db.SetMaxOpenConns(1)
		}
		if err = migrate(db, "sqlite3"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate local db: %w", err)
		}
		return db, nil
	}

	log.Info("Initializing Turso database", "url", primaryURL)
	db, err := sql.Open("libsql", primaryURL+"?authToken="+authToken)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", primaryURL, err)
	}
	if err = migrate(db, "turso"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate remote db: %w", err)
	}
	return db, nil
}

func localDSN(path string) string {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return path
	}
	return "file:" + path + "?_foreign_keys=on"
}

func migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return err
	}
	version, err := goose.GetDBVersion(db)
	if err != nil {
		return err
	}
	log.Info("Database initialized successfully", "version", version)
	return nil
}
