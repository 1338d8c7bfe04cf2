package db

// SchemaSQL is the complete CampTrack schema.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Every
// invariant that must hold regardless of which code path writes data lives
// here as a declarative constraint: enum columns are CHECK-restricted to
// closed literal sets, boolean flags are 0/1 integers, camp date ranges are
// ordered at the table level, and camper identity is unique per camp so
// repeated CSV imports are no-ops.
//
// All tests load this schema via GetSchemaSQL() so that a repository
// referencing a column that does not exist fails immediately with
// "no such column" instead of drifting.
//
// Date columns are TEXT, length 10, pattern ####-##-##. The pattern check
// is deliberately format-only: it does not reject impossible calendar
// dates such as 2024-02-30. TODO(ed): decide whether to validate dates
// semantically; callers currently rely on the loose check.
const SchemaSQL = `
-- Users (accounts; never deleted, disabled instead)
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL CHECK(role IN ('admin', 'coordinator', 'leader')),
	is_disabled INTEGER NOT NULL DEFAULT 0 CHECK(is_disabled IN (0, 1)),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Messages (direct user-to-user mail; immutable except for the read flag)
CREATE TABLE IF NOT EXISTS messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	sender_id INTEGER NOT NULL,
	recipient_id INTEGER NOT NULL,
	message TEXT NOT NULL,
	is_read INTEGER NOT NULL DEFAULT 0 CHECK(is_read IN (0, 1)),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (sender_id) REFERENCES users(id),
	FOREIGN KEY (recipient_id) REFERENCES users(id)
);

-- Camps (owned by a coordinator, optionally claimed by a leader)
CREATE TABLE IF NOT EXISTS camps (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	coordinator_id INTEGER NOT NULL,
	leader_id INTEGER,
	location TEXT,
	latitude REAL,
	longitude REAL,
	start_date TEXT NOT NULL CHECK(
		length(start_date) = 10 AND
		start_date GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	),
	end_date TEXT NOT NULL CHECK(
		length(end_date) = 10 AND
		end_date GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	),
	type TEXT NOT NULL CHECK(type IN ('day_camp', 'overnight', 'expedition')),
	capacity INTEGER NOT NULL DEFAULT 0,
	approved_daily_food_stock INTEGER NOT NULL DEFAULT 0,
	leader_daily_payment_rate REAL NOT NULL DEFAULT 0,
	daily_food_per_camper INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	CHECK(end_date >= start_date),
	FOREIGN KEY (coordinator_id) REFERENCES users(id),
	FOREIGN KEY (leader_id) REFERENCES users(id)
);

-- Campers (roster entries, not user accounts; the UNIQUE triple is the
-- idempotency key for CSV re-imports)
CREATE TABLE IF NOT EXISTS campers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	camp_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	date_of_birth TEXT NOT NULL CHECK(
		length(date_of_birth) = 10 AND
		date_of_birth GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (camp_id) REFERENCES camps(id) ON DELETE CASCADE,
	UNIQUE(camp_id, name, date_of_birth)
);

-- Camper registrations (optional sub-range of a camp's dates; schema
-- support only, default workflows assume presence for the whole camp)
CREATE TABLE IF NOT EXISTS camper_registrations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	camper_id INTEGER NOT NULL,
	camp_id INTEGER NOT NULL,
	start_date TEXT NOT NULL CHECK(
		length(start_date) = 10 AND
		start_date GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	),
	end_date TEXT NOT NULL CHECK(
		length(end_date) = 10 AND
		end_date GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	),
	CHECK(end_date >= start_date),
	FOREIGN KEY (camper_id) REFERENCES campers(id) ON DELETE CASCADE,
	FOREIGN KEY (camp_id) REFERENCES camps(id) ON DELETE CASCADE
);

-- Notifications (coordinator-facing alerts tied to a camp)
CREATE TABLE IF NOT EXISTS notifications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	camp_id INTEGER NOT NULL,
	coordinator_id INTEGER NOT NULL,
	type TEXT CHECK(type IN ('not_enough_food', 'low_daily_payment_rate')),
	message TEXT NOT NULL,
	is_read INTEGER NOT NULL DEFAULT 0 CHECK(is_read IN (0, 1)),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (camp_id) REFERENCES camps(id) ON DELETE CASCADE,
	FOREIGN KEY (coordinator_id) REFERENCES users(id)
);

-- Activities (daily log entries within a camp)
CREATE TABLE IF NOT EXISTS activities (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	camp_id INTEGER NOT NULL,
	activity_date TEXT NOT NULL CHECK(
		length(activity_date) = 10 AND
		activity_date GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	),
	activity_name TEXT NOT NULL,
	incident_count INTEGER NOT NULL DEFAULT 0,
	notes TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (camp_id) REFERENCES camps(id) ON DELETE CASCADE
);

-- Activity participation (at most one record per activity/camper pair)
CREATE TABLE IF NOT EXISTS activity_campers (
	activity_id INTEGER NOT NULL,
	camper_id INTEGER NOT NULL,
	PRIMARY KEY (activity_id, camper_id),
	FOREIGN KEY (activity_id) REFERENCES activities(id) ON DELETE CASCADE,
	FOREIGN KEY (camper_id) REFERENCES campers(id) ON DELETE CASCADE
);

-- Attendance (one row per camp/camper/date by convention; the tuple is
-- intentionally not UNIQUE-constrained)
CREATE TABLE IF NOT EXISTS attendance_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	camp_id INTEGER NOT NULL,
	camper_id INTEGER NOT NULL,
	date TEXT NOT NULL CHECK(
		length(date) = 10 AND
		date GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	),
	status TEXT NOT NULL DEFAULT 'pending' CHECK(status IN ('absent', 'present', 'pending')),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (camp_id) REFERENCES camps(id) ON DELETE CASCADE,
	FOREIGN KEY (camper_id) REFERENCES campers(id) ON DELETE CASCADE
);

-- Food stock ledger (append-only; stock_available is the level after the
-- change, change_amount is the signed delta)
CREATE TABLE IF NOT EXISTS food_stock_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	camp_id INTEGER NOT NULL,
	date TEXT NOT NULL CHECK(
		length(date) = 10 AND
		date GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	),
	stock_available INTEGER NOT NULL,
	change_amount INTEGER NOT NULL,
	change_reason TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (camp_id) REFERENCES camps(id) ON DELETE CASCADE
);

-- Create indexes for the application's query patterns
CREATE INDEX IF NOT EXISTS idx_users_login ON users(username, is_disabled);
CREATE INDEX IF NOT EXISTS idx_messages_recipient ON messages(recipient_id, is_read);
CREATE INDEX IF NOT EXISTS idx_camps_leader ON camps(leader_id);
CREATE INDEX IF NOT EXISTS idx_camps_dates ON camps(start_date, end_date);
CREATE INDEX IF NOT EXISTS idx_campers_camp ON campers(camp_id);
CREATE INDEX IF NOT EXISTS idx_notifications_coordinator ON notifications(coordinator_id, is_read);
CREATE INDEX IF NOT EXISTS idx_activity_campers_camper ON activity_campers(camper_id);
CREATE INDEX IF NOT EXISTS idx_activities_camp_date ON activities(camp_id, activity_date);
CREATE INDEX IF NOT EXISTS idx_attendance_camp_date ON attendance_records(camp_id, date);
CREATE INDEX IF NOT EXISTS idx_food_stock_camp_date ON food_stock_history(camp_id, date);
`

// InitSchema creates the database schema. Safe to run against an
// already-initialized store.
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	_, err = db.Exec(SchemaSQL)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
