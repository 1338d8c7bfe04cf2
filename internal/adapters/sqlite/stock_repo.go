package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/camptrack/internal/ports/secondary"
)

// StockRepository implements secondary.StockRepository with SQLite.
type StockRepository struct {
	db *sql.DB
}

// NewStockRepository creates a new SQLite stock repository.
func NewStockRepository(db *sql.DB) *StockRepository {
	return &StockRepository{db: db}
}

// Adjust applies a signed stock change to a camp. The camp's stock level
// and the ledger row move in one transaction so the ledger can never
// disagree with the camp. Returns the level after the change.
func (r *StockRepository) Adjust(ctx context.Context, campID int64, date string, delta int, reason string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var level int
	err = tx.QueryRowContext(ctx,
		"SELECT approved_daily_food_stock FROM camps WHERE id = ?",
		campID,
	).Scan(&level)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("camp %d not found", campID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read stock level: %w", err)
	}

	level += delta

	_, err = tx.ExecContext(ctx,
		"UPDATE camps SET approved_daily_food_stock = ? WHERE id = ?",
		level, campID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update stock level: %w", err)
	}

	var changeReason sql.NullString
	if reason != "" {
		changeReason = sql.NullString{String: reason, Valid: true}
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO food_stock_history (camp_id, date, stock_available, change_amount, change_reason) VALUES (?, ?, ?, ?, ?)",
		campID, date, level, delta, changeReason,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to append stock history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit stock adjustment: %w", err)
	}

	return level, nil
}

// History retrieves the ledger for a camp, oldest first.
func (r *StockRepository) History(ctx context.Context, campID int64) ([]*secondary.StockEntryRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, camp_id, date, stock_available, change_amount, COALESCE(change_reason, ''), created_at
		FROM food_stock_history
		WHERE camp_id = ?
		ORDER BY date, id`,
		campID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock history: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.StockEntryRecord
	for rows.Next() {
		var createdAt time.Time

		record := &secondary.StockEntryRecord{}
		err := rows.Scan(&record.ID, &record.CampID, &record.Date, &record.StockAvailable,
			&record.ChangeAmount, &record.ChangeReason, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock entry: %w", err)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)

		entries = append(entries, record)
	}

	return entries, rows.Err()
}

// CurrentLevel returns the camp's current approved daily food stock.
func (r *StockRepository) CurrentLevel(ctx context.Context, campID int64) (int, error) {
	var level int
	err := r.db.QueryRowContext(ctx,
		"SELECT approved_daily_food_stock FROM camps WHERE id = ?",
		campID,
	).Scan(&level)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("camp %d not found", campID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read stock level: %w", err)
	}

	return level, nil
}

// TotalConsumed returns the total stock consumed, as a positive number.
func (r *StockRepository) TotalConsumed(ctx context.Context, campID int64) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(-change_amount), 0) FROM food_stock_history WHERE camp_id = ? AND change_amount < 0",
		campID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum consumption: %w", err)
	}

	return total, nil
}

var _ secondary.StockRepository = (*StockRepository)(nil)
