package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/example/camptrack/internal/ports/secondary"
)

const activityColumns = `a.id, a.camp_id, c.name, a.activity_date, a.activity_name,
	a.incident_count, COALESCE(a.notes, ''), a.created_at`

// ActivityRepository implements secondary.ActivityRepository with SQLite.
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new SQLite activity repository.
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create persists a new activity.
func (r *ActivityRepository) Create(ctx context.Context, a *secondary.ActivityRecord) (int64, error) {
	var notes sql.NullString
	if a.Notes != "" {
		notes = sql.NullString{String: a.Notes, Valid: true}
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO activities (camp_id, activity_date, activity_name, incident_count, notes) VALUES (?, ?, ?, ?, ?)",
		a.CampID, a.ActivityDate, a.ActivityName, a.IncidentCount, notes,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create activity: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get activity id: %w", err)
	}

	return id, nil
}

// GetByID retrieves an activity by its ID.
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*secondary.ActivityRecord, error) {
	record, err := scanActivity(r.db.QueryRowContext(ctx,
		"SELECT "+activityColumns+" FROM activities a JOIN camps c ON c.id = a.camp_id WHERE a.id = ?",
		id,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("activity %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return record, nil
}

// ListByCamp retrieves a camp's activities in timeline order.
func (r *ActivityRepository) ListByCamp(ctx context.Context, campID int64) ([]*secondary.ActivityRecord, error) {
	return r.listActivities(ctx,
		"SELECT "+activityColumns+` FROM activities a JOIN camps c ON c.id = a.camp_id
		WHERE a.camp_id = ? ORDER BY a.activity_date, a.id`,
		campID,
	)
}

// ListByLeader retrieves activities across all camps led by a leader.
func (r *ActivityRepository) ListByLeader(ctx context.Context, leaderID int64) ([]*secondary.ActivityRecord, error) {
	return r.listActivities(ctx,
		"SELECT "+activityColumns+` FROM activities a JOIN camps c ON c.id = a.camp_id
		WHERE c.leader_id = ? ORDER BY a.activity_date, a.id`,
		leaderID,
	)
}

// AddParticipant records a camper's participation in an activity. The
// composite primary key makes a second record for the same pair fail;
// that failure is translated to ErrDuplicateParticipant.
func (r *ActivityRepository) AddParticipant(ctx context.Context, activityID, camperID int64) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO activity_campers (activity_id, camper_id) VALUES (?, ?)",
		activityID, camperID,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return secondary.ErrDuplicateParticipant
		}
		return fmt.Errorf("failed to add participant: %w", err)
	}

	return nil
}

// Participants retrieves the campers recorded for an activity.
func (r *ActivityRepository) Participants(ctx context.Context, activityID int64) ([]*secondary.CamperRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT cp.id, cp.camp_id, cp.name, cp.date_of_birth, cp.created_at
		FROM activity_campers ac
		JOIN campers cp ON cp.id = ac.camper_id
		WHERE ac.activity_id = ?
		ORDER BY cp.name`,
		activityID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var campers []*secondary.CamperRecord
	for rows.Next() {
		record, err := scanCamper(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan camper: %w", err)
		}
		campers = append(campers, record)
	}

	return campers, rows.Err()
}

// ActivitiesForCamper retrieves the activities a camper attended.
func (r *ActivityRepository) ActivitiesForCamper(ctx context.Context, camperID int64) ([]*secondary.ActivityRecord, error) {
	return r.listActivities(ctx,
		"SELECT "+activityColumns+` FROM activity_campers ac
		JOIN activities a ON a.id = ac.activity_id
		JOIN camps c ON c.id = a.camp_id
		WHERE ac.camper_id = ? ORDER BY a.activity_date, a.id`,
		camperID,
	)
}

func (r *ActivityRepository) listActivities(ctx context.Context, query string, args ...any) ([]*secondary.ActivityRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*secondary.ActivityRecord
	for rows.Next() {
		record, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, record)
	}

	return activities, rows.Err()
}

func scanActivity(row rowScanner) (*secondary.ActivityRecord, error) {
	var createdAt time.Time

	record := &secondary.ActivityRecord{}
	err := row.Scan(&record.ID, &record.CampID, &record.CampName, &record.ActivityDate,
		&record.ActivityName, &record.IncidentCount, &record.Notes, &createdAt)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

var _ secondary.ActivityRepository = (*ActivityRepository)(nil)
