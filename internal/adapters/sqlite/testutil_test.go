// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/camptrack/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
// Uses db.GetSchemaSQL() to prevent test schemas from drifting.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Match production: constraints under test include foreign keys.
	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	// Use the authoritative schema from schema.go
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedUser inserts a test user and returns its ID.
func seedUser(t *testing.T, db *sql.DB, username, role string) int64 {
	t.Helper()
	res, err := db.Exec(
		"INSERT INTO users (username, password_hash, role) VALUES (?, 'x', ?)",
		username, role,
	)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get user id: %v", err)
	}
	return id
}

// seedCamp inserts a test camp owned by coordinatorID and returns its ID.
// leaderID zero leaves the camp unclaimed.
func seedCamp(t *testing.T, db *sql.DB, name string, coordinatorID, leaderID int64, startDate, endDate string) int64 {
	t.Helper()
	var leader any
	if leaderID != 0 {
		leader = leaderID
	}
	res, err := db.Exec(
		`INSERT INTO camps (name, coordinator_id, leader_id, start_date, end_date, type, capacity)
		 VALUES (?, ?, ?, ?, ?, 'day_camp', 20)`,
		name, coordinatorID, leader, startDate, endDate,
	)
	if err != nil {
		t.Fatalf("failed to seed camp: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get camp id: %v", err)
	}
	return id
}

// seedCamper inserts a test camper and returns its ID.
func seedCamper(t *testing.T, db *sql.DB, campID int64, name, dob string) int64 {
	t.Helper()
	res, err := db.Exec(
		"INSERT INTO campers (camp_id, name, date_of_birth) VALUES (?, ?, ?)",
		campID, name, dob,
	)
	if err != nil {
		t.Fatalf("failed to seed camper: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get camper id: %v", err)
	}
	return id
}

// seedActivity inserts a test activity and returns its ID.
func seedActivity(t *testing.T, db *sql.DB, campID int64, date, name string, incidents int) int64 {
	t.Helper()
	res, err := db.Exec(
		"INSERT INTO activities (camp_id, activity_date, activity_name, incident_count) VALUES (?, ?, ?, ?)",
		campID, date, name, incidents,
	)
	if err != nil {
		t.Fatalf("failed to seed activity: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get activity id: %v", err)
	}
	return id
}

// countRows counts rows in a table matching a WHERE clause.
func countRows(t *testing.T, db *sql.DB, table, where string, args ...any) int {
	t.Helper()
	var count int
	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return count
}
