package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/camptrack/internal/ports/secondary"
)

// NotificationRepository implements secondary.NotificationRepository with SQLite.
type NotificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a new SQLite notification repository.
func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create persists a new notification.
func (r *NotificationRepository) Create(ctx context.Context, n *secondary.NotificationRecord) (int64, error) {
	var nType sql.NullString
	if n.Type != "" {
		nType = sql.NullString{String: n.Type, Valid: true}
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO notifications (camp_id, coordinator_id, type, message) VALUES (?, ?, ?, ?)",
		n.CampID, n.CoordinatorID, nType, n.Message,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create notification: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get notification id: %w", err)
	}

	return id, nil
}

// HasUnread reports whether an unread notification of the given type
// already exists for the camp.
func (r *NotificationRepository) HasUnread(ctx context.Context, campID int64, notificationType string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM notifications WHERE camp_id = ? AND type = ? AND is_read = 0",
		campID, notificationType,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check notifications: %w", err)
	}

	return count > 0, nil
}

// ListByCoordinator retrieves a coordinator's notifications, oldest first.
func (r *NotificationRepository) ListByCoordinator(ctx context.Context, coordinatorID int64, unreadOnly bool) ([]*secondary.NotificationRecord, error) {
	query := `
		SELECT id, camp_id, coordinator_id, type, message, is_read, created_at
		FROM notifications
		WHERE coordinator_id = ?`
	if unreadOnly {
		query += " AND is_read = 0"
	}
	query += " ORDER BY created_at, id"

	rows, err := r.db.QueryContext(ctx, query, coordinatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*secondary.NotificationRecord
	for rows.Next() {
		var (
			nType     sql.NullString
			readInt   int
			createdAt time.Time
		)

		record := &secondary.NotificationRecord{}
		err := rows.Scan(&record.ID, &record.CampID, &record.CoordinatorID, &nType, &record.Message, &readInt, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		record.Type = nType.String
		record.IsRead = readInt == 1
		record.CreatedAt = createdAt.Format(time.RFC3339)

		notifications = append(notifications, record)
	}

	return notifications, rows.Err()
}

// MarkRead marks a notification as read.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = 1 WHERE id = ?",
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("notification %d not found", id)
	}

	return nil
}

var _ secondary.NotificationRepository = (*NotificationRepository)(nil)
