package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/camptrack/internal/ports/secondary"
)

// StatsRepository implements secondary.StatsRepository with SQLite.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new SQLite stats repository.
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// LeaderOverview aggregates a leader's history across every camp they
// lead that has started. Money earned counts each camp day from start
// through the earlier of its end date and today, at the camp's daily
// rate; julianday keeps the day arithmetic inside SQLite.
func (r *StatsRepository) LeaderOverview(ctx context.Context, leaderID int64) (*secondary.LeaderOverviewRecord, error) {
	record := &secondary.LeaderOverviewRecord{}

	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(
				(julianday(MIN(end_date, date('now'))) - julianday(start_date) + 1)
				* leader_daily_payment_rate
			), 0),
			COALESCE(SUM((SELECT COUNT(*) FROM campers WHERE camp_id = camps.id)), 0)
		FROM camps
		WHERE leader_id = ? AND start_date <= date('now')`,
		leaderID,
	).Scan(&record.CampsLed, &record.MoneyEarned, &record.CampersLed)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate camps: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(a.incident_count), 0)
		FROM activities a
		JOIN camps c ON c.id = a.camp_id
		WHERE c.leader_id = ? AND c.start_date <= date('now')`,
		leaderID,
	).Scan(&record.IncidentCount)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate incidents: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(-h.change_amount), 0)
		FROM food_stock_history h
		JOIN camps c ON c.id = h.camp_id
		WHERE c.leader_id = ? AND c.start_date <= date('now') AND h.change_amount < 0`,
		leaderID,
	).Scan(&record.FoodConsumed)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate consumption: %w", err)
	}

	// Participation is weighted by roster size: actual participant rows
	// over the seats available across all logged activities.
	var participants, seats int
	err = r.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM((SELECT COUNT(*) FROM activity_campers WHERE activity_id = a.id)), 0),
			COALESCE(SUM((SELECT COUNT(*) FROM campers WHERE camp_id = a.camp_id)), 0)
		FROM activities a
		JOIN camps c ON c.id = a.camp_id
		WHERE c.leader_id = ? AND c.start_date <= date('now')`,
		leaderID,
	).Scan(&participants, &seats)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate participation: %w", err)
	}
	if seats > 0 {
		record.ParticipationRate = float64(participants) / float64(seats)
	}

	return record, nil
}

var _ secondary.StatsRepository = (*StatsRepository)(nil)
