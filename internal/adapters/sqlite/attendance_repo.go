package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/camptrack/internal/ports/secondary"
)

// AttendanceRepository implements secondary.AttendanceRepository with SQLite.
type AttendanceRepository struct {
	db *sql.DB
}

// NewAttendanceRepository creates a new SQLite attendance repository.
func NewAttendanceRepository(db *sql.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Record sets the status for a (camp, camper, date). The tuple has no
// UNIQUE constraint; single-row-per-day is kept here by updating any
// existing row instead of inserting a second one.
func (r *AttendanceRepository) Record(ctx context.Context, campID, camperID int64, date, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE attendance_records SET status = ? WHERE camp_id = ? AND camper_id = ? AND date = ?",
		status, campID, camperID, date,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO attendance_records (camp_id, camper_id, date, status) VALUES (?, ?, ?, ?)",
		campID, camperID, date, status,
	)
	if err != nil {
		return fmt.Errorf("failed to record attendance: %w", err)
	}

	return nil
}

// ListByCampDate retrieves a camp's attendance sheet for a date, with
// unrecorded campers shown as pending.
func (r *AttendanceRepository) ListByCampDate(ctx context.Context, campID int64, date string) ([]*secondary.AttendanceRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT COALESCE(ar.id, 0), cp.camp_id, cp.id, cp.name, COALESCE(ar.date, ?), COALESCE(ar.status, 'pending')
		FROM campers cp
		LEFT JOIN attendance_records ar ON ar.camper_id = cp.id AND ar.camp_id = cp.camp_id AND ar.date = ?
		WHERE cp.camp_id = ?
		ORDER BY cp.name`,
		date, date, campID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []*secondary.AttendanceRecord
	for rows.Next() {
		record := &secondary.AttendanceRecord{}
		err := rows.Scan(&record.ID, &record.CampID, &record.CamperID, &record.CamperName, &record.Date, &record.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// AbsenceCount returns the number of absences for a camp on a date.
func (r *AttendanceRepository) AbsenceCount(ctx context.Context, campID int64, date string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM attendance_records WHERE camp_id = ? AND date = ? AND status = 'absent'",
		campID, date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count absences: %w", err)
	}

	return count, nil
}

var _ secondary.AttendanceRepository = (*AttendanceRepository)(nil)
