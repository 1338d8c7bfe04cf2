package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

var dbInitialized bool

// DataDir overrides the database location when set (e.g. from config).
// When empty, ~/.camptrack is used.
var DataDir string

func dataDir() (string, error) {
	if DataDir != "" {
		return DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".camptrack"), nil
}

// GetDB returns the database connection, initializing if needed
func GetDB() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}

	dir, err := dataDir()
	if err != nil {
		return nil, err
	}

	// Ensure .camptrack directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err = sql.Open("sqlite3", filepath.Join(dir, "camptrack.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create schema on first connection (but avoid recursion)
	if !dbInitialized {
		dbInitialized = true
		if err := InitSchema(); err != nil {
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	return db, nil
}

// Close closes the database connection
func Close() error {
	if db != nil {
		err := db.Close()
		db = nil
		dbInitialized = false
		return err
	}
	return nil
}

// GetDBPath returns the path to the database file
func GetDBPath() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "camptrack.db"), nil
}
