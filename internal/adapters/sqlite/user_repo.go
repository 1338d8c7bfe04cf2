// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/camptrack/internal/ports/secondary"
)

// UserRepository implements secondary.UserRepository with SQLite.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite user repository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user.
func (r *UserRepository) Create(ctx context.Context, user *secondary.UserRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, role, is_disabled) VALUES (?, ?, ?, ?)",
		user.Username, user.PasswordHash, user.Role, boolToInt(user.IsDisabled),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get user id: %w", err)
	}

	return id, nil
}

// GetByID retrieves a user by its ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*secondary.UserRecord, error) {
	record, err := r.scanUser(r.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, role, is_disabled, created_at FROM users WHERE id = ?",
		id,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return record, nil
}

// GetByUsername retrieves a user by username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*secondary.UserRecord, error) {
	record, err := r.scanUser(r.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, role, is_disabled, created_at FROM users WHERE username = ?",
		username,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %s not found", username)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return record, nil
}

// List retrieves users ordered by username.
func (r *UserRepository) List(ctx context.Context, disabledOnly bool) ([]*secondary.UserRecord, error) {
	query := "SELECT id, username, password_hash, role, is_disabled, created_at FROM users"
	if disabledOnly {
		query += " WHERE is_disabled = 1"
	}
	query += " ORDER BY username"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*secondary.UserRecord
	for rows.Next() {
		record, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, record)
	}

	return users, rows.Err()
}

// SetDisabled flips the soft-delete flag.
func (r *UserRepository) SetDisabled(ctx context.Context, id int64, disabled bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE users SET is_disabled = ? WHERE id = ?",
		boolToInt(disabled), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %d not found", id)
	}

	return nil
}

// SetPasswordHash replaces the stored password hash.
func (r *UserRepository) SetPasswordHash(ctx context.Context, id int64, hash string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE users SET password_hash = ? WHERE id = ?",
		hash, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %d not found", id)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *UserRepository) scanUser(row rowScanner) (*secondary.UserRecord, error) {
	var (
		disabledInt int
		createdAt   time.Time
	)

	record := &secondary.UserRecord{}
	err := row.Scan(&record.ID, &record.Username, &record.PasswordHash, &record.Role, &disabledInt, &createdAt)
	if err != nil {
		return nil, err
	}

	record.IsDisabled = disabledInt == 1
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ secondary.UserRepository = (*UserRepository)(nil)
