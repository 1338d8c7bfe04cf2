package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/camptrack/internal/ports/secondary"
)

// MessageRepository implements secondary.MessageRepository with SQLite.
type MessageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new SQLite message repository.
func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create persists a new message.
func (r *MessageRepository) Create(ctx context.Context, senderID, recipientID int64, body string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO messages (sender_id, recipient_id, message) VALUES (?, ?, ?)",
		senderID, recipientID, body,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create message: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get message id: %w", err)
	}

	return id, nil
}

// ConversationBetween returns one page of messages exchanged between two
// users. The page is selected newest-first, then reversed so callers see
// it oldest-first.
func (r *MessageRepository) ConversationBetween(ctx context.Context, userID, otherID int64, limit, offset int) ([]*secondary.MessageRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.id, m.sender_id, m.recipient_id, u.username, m.message, m.is_read, m.created_at
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE (m.sender_id = ? AND m.recipient_id = ?)
		   OR (m.sender_id = ? AND m.recipient_id = ?)
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT ? OFFSET ?`,
		userID, otherID, otherID, userID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversation: %w", err)
	}
	defer rows.Close()

	var page []*secondary.MessageRecord
	for rows.Next() {
		record, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		page = append(page, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(page)-1; i < j; i, j = i+1, j-1 {
		page[i], page[j] = page[j], page[i]
	}

	return page, nil
}

// CountConversation returns the number of messages between two users.
func (r *MessageRepository) CountConversation(ctx context.Context, userID, otherID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM messages
		WHERE (sender_id = ? AND recipient_id = ?)
		   OR (sender_id = ? AND recipient_id = ?)`,
		userID, otherID, otherID, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count conversation: %w", err)
	}

	return count, nil
}

// Inbox returns messages addressed to a recipient, newest first.
func (r *MessageRepository) Inbox(ctx context.Context, recipientID int64, unreadOnly bool) ([]*secondary.MessageRecord, error) {
	query := `
		SELECT m.id, m.sender_id, m.recipient_id, u.username, m.message, m.is_read, m.created_at
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.recipient_id = ?`
	if unreadOnly {
		query += " AND m.is_read = 0"
	}
	query += " ORDER BY m.created_at DESC, m.id DESC"

	rows, err := r.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inbox: %w", err)
	}
	defer rows.Close()

	var messages []*secondary.MessageRecord
	for rows.Next() {
		record, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, record)
	}

	return messages, rows.Err()
}

// MarkConversationRead marks all messages from sender to recipient as read.
func (r *MessageRepository) MarkConversationRead(ctx context.Context, senderID, recipientID int64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE messages SET is_read = 1 WHERE sender_id = ? AND recipient_id = ? AND is_read = 0",
		senderID, recipientID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}

	return nil
}

// ChatPartners returns, per conversation partner, the latest message and
// the count of their unread messages. Most recent conversation first;
// disabled partners are excluded.
func (r *MessageRepository) ChatPartners(ctx context.Context, userID int64) ([]*secondary.ChatPartnerRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		WITH ranked AS (
			SELECT
				CASE WHEN m.sender_id = ? THEN m.recipient_id ELSE m.sender_id END AS partner_id,
				m.message,
				m.created_at,
				ROW_NUMBER() OVER (
					PARTITION BY CASE WHEN m.sender_id = ? THEN m.recipient_id ELSE m.sender_id END
					ORDER BY m.created_at DESC, m.id DESC
				) AS rn
			FROM messages m
			WHERE m.sender_id = ? OR m.recipient_id = ?
		)
		SELECT
			r.partner_id,
			u.username,
			u.role,
			r.message,
			r.created_at,
			(SELECT COUNT(*) FROM messages
			 WHERE sender_id = r.partner_id AND recipient_id = ? AND is_read = 0) AS unread
		FROM ranked r
		JOIN users u ON u.id = r.partner_id
		WHERE r.rn = 1 AND u.is_disabled = 0
		ORDER BY r.created_at DESC`,
		userID, userID, userID, userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat partners: %w", err)
	}
	defer rows.Close()

	var partners []*secondary.ChatPartnerRecord
	for rows.Next() {
		var lastAt time.Time

		record := &secondary.ChatPartnerRecord{}
		err := rows.Scan(&record.PartnerID, &record.PartnerUsername, &record.PartnerRole, &record.LastMessage, &lastAt, &record.UnreadCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat partner: %w", err)
		}
		record.LastTimestamp = lastAt.Format(time.RFC3339)

		partners = append(partners, record)
	}

	return partners, rows.Err()
}

func scanMessage(row rowScanner) (*secondary.MessageRecord, error) {
	var (
		readInt   int
		createdAt time.Time
	)

	record := &secondary.MessageRecord{}
	err := row.Scan(&record.ID, &record.SenderID, &record.RecipientID, &record.SenderUsername, &record.Body, &readInt, &createdAt)
	if err != nil {
		return nil, err
	}

	record.IsRead = readInt == 1
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

var _ secondary.MessageRepository = (*MessageRepository)(nil)
