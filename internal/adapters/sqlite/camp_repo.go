package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/camptrack/internal/ports/secondary"
)

const campColumns = `c.id, c.name, c.coordinator_id, c.leader_id, COALESCE(u.username, ''),
	COALESCE(c.location, ''), COALESCE(c.latitude, 0), COALESCE(c.longitude, 0),
	c.start_date, c.end_date, c.type, c.capacity, c.approved_daily_food_stock,
	c.leader_daily_payment_rate, c.daily_food_per_camper, c.created_at`

// CampRepository implements secondary.CampRepository with SQLite.
type CampRepository struct {
	db *sql.DB
}

// NewCampRepository creates a new SQLite camp repository.
func NewCampRepository(db *sql.DB) *CampRepository {
	return &CampRepository{db: db}
}

// Create persists a new camp.
func (r *CampRepository) Create(ctx context.Context, camp *secondary.CampRecord) (int64, error) {
	var leaderID sql.NullInt64
	if camp.LeaderID != 0 {
		leaderID = sql.NullInt64{Int64: camp.LeaderID, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO camps (name, coordinator_id, leader_id, location, latitude, longitude,
			start_date, end_date, type, capacity, approved_daily_food_stock,
			leader_daily_payment_rate, daily_food_per_camper)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		camp.Name, camp.CoordinatorID, leaderID, camp.Location, camp.Latitude, camp.Longitude,
		camp.StartDate, camp.EndDate, camp.Type, camp.Capacity, camp.ApprovedDailyFoodStock,
		camp.LeaderDailyPaymentRate, camp.DailyFoodPerCamper,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create camp: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get camp id: %w", err)
	}

	return id, nil
}

// GetByID retrieves a camp by its ID.
func (r *CampRepository) GetByID(ctx context.Context, id int64) (*secondary.CampRecord, error) {
	record, err := scanCamp(r.db.QueryRowContext(ctx,
		"SELECT "+campColumns+" FROM camps c LEFT JOIN users u ON u.id = c.leader_id WHERE c.id = ?",
		id,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("camp %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get camp: %w", err)
	}

	return record, nil
}

// List retrieves camps matching the given filters, start date order.
func (r *CampRepository) List(ctx context.Context, filters secondary.CampFilters) ([]*secondary.CampRecord, error) {
	query := "SELECT " + campColumns + " FROM camps c LEFT JOIN users u ON u.id = c.leader_id WHERE 1=1"
	args := []any{}

	if filters.CoordinatorID != 0 {
		query += " AND c.coordinator_id = ?"
		args = append(args, filters.CoordinatorID)
	}
	if filters.LeaderID != 0 {
		query += " AND c.leader_id = ?"
		args = append(args, filters.LeaderID)
	}
	if filters.Unassigned {
		query += " AND c.leader_id IS NULL"
	}
	if filters.FromDate != "" {
		query += " AND c.start_date >= ?"
		args = append(args, filters.FromDate)
	}
	if filters.ToDate != "" {
		query += " AND c.start_date <= ?"
		args = append(args, filters.ToDate)
	}

	query += " ORDER BY c.start_date, c.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list camps: %w", err)
	}
	defer rows.Close()

	var camps []*secondary.CampRecord
	for rows.Next() {
		record, err := scanCamp(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan camp: %w", err)
		}
		camps = append(camps, record)
	}

	return camps, rows.Err()
}

// ListWithCamperCounts retrieves all camps joined with their roster size.
func (r *CampRepository) ListWithCamperCounts(ctx context.Context) ([]*secondary.CampSummaryRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+campColumns+`, (SELECT COUNT(*) FROM campers WHERE camp_id = c.id)
		FROM camps c LEFT JOIN users u ON u.id = c.leader_id
		ORDER BY c.start_date, c.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list camps: %w", err)
	}
	defer rows.Close()

	var camps []*secondary.CampSummaryRecord
	for rows.Next() {
		record, err := scanCampSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan camp: %w", err)
		}
		camps = append(camps, record)
	}

	return camps, rows.Err()
}

// ActiveInWindow retrieves camps whose date range intersects [from, to].
func (r *CampRepository) ActiveInWindow(ctx context.Context, from, to string) ([]*secondary.CampRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+campColumns+` FROM camps c LEFT JOIN users u ON u.id = c.leader_id
		WHERE c.start_date <= ? AND c.end_date >= ?
		ORDER BY c.start_date, c.id`,
		to, from,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list active camps: %w", err)
	}
	defer rows.Close()

	var camps []*secondary.CampRecord
	for rows.Next() {
		record, err := scanCamp(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan camp: %w", err)
		}
		camps = append(camps, record)
	}

	return camps, rows.Err()
}

// AssignLeader claims a camp for a leader. Only an unclaimed camp can be
// claimed; a camp that already has a leader is reported not found.
func (r *CampRepository) AssignLeader(ctx context.Context, campID, leaderID int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE camps SET leader_id = ? WHERE id = ? AND leader_id IS NULL",
		leaderID, campID,
	)
	if err != nil {
		return fmt.Errorf("failed to assign leader: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("camp %d not found or already claimed", campID)
	}

	return nil
}

// SetLeaderDailyRate updates the leader daily payment rate.
func (r *CampRepository) SetLeaderDailyRate(ctx context.Context, campID int64, rate float64) error {
	return r.updateCampField(ctx, campID, "leader_daily_payment_rate", rate)
}

// SetDailyFoodPerCamper updates the per-camper daily food allotment.
func (r *CampRepository) SetDailyFoodPerCamper(ctx context.Context, campID int64, units int) error {
	return r.updateCampField(ctx, campID, "daily_food_per_camper", units)
}

func (r *CampRepository) updateCampField(ctx context.Context, campID int64, column string, value any) error {
	result, err := r.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE camps SET %s = ? WHERE id = ?", column),
		value, campID,
	)
	if err != nil {
		return fmt.Errorf("failed to update camp: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("camp %d not found", campID)
	}

	return nil
}

// Occupancy returns the number of campers enrolled in a camp.
func (r *CampRepository) Occupancy(ctx context.Context, campID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM campers WHERE camp_id = ?",
		campID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count campers: %w", err)
	}

	return count, nil
}

// Delete removes a camp. Scoped children go with it via cascade.
func (r *CampRepository) Delete(ctx context.Context, campID int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM camps WHERE id = ?", campID)
	if err != nil {
		return fmt.Errorf("failed to delete camp: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("camp %d not found", campID)
	}

	return nil
}

func scanCampInto(row rowScanner, record *secondary.CampRecord, extra ...any) error {
	var (
		leaderID  sql.NullInt64
		createdAt time.Time
	)

	dest := []any{
		&record.ID, &record.Name, &record.CoordinatorID, &leaderID, &record.LeaderUsername,
		&record.Location, &record.Latitude, &record.Longitude,
		&record.StartDate, &record.EndDate, &record.Type, &record.Capacity,
		&record.ApprovedDailyFoodStock, &record.LeaderDailyPaymentRate,
		&record.DailyFoodPerCamper, &createdAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return err
	}

	record.LeaderID = leaderID.Int64
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return nil
}

func scanCamp(row rowScanner) (*secondary.CampRecord, error) {
	record := &secondary.CampRecord{}
	if err := scanCampInto(row, record); err != nil {
		return nil, err
	}
	return record, nil
}

func scanCampSummary(row rowScanner) (*secondary.CampSummaryRecord, error) {
	record := &secondary.CampSummaryRecord{}
	if err := scanCampInto(row, &record.CampRecord, &record.NumCampers); err != nil {
		return nil, err
	}
	return record, nil
}

var _ secondary.CampRepository = (*CampRepository)(nil)
