package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/camptrack/internal/ports/secondary"
)

// CamperRepository implements secondary.CamperRepository with SQLite.
type CamperRepository struct {
	db *sql.DB
}

// NewCamperRepository creates a new SQLite camper repository.
func NewCamperRepository(db *sql.DB) *CamperRepository {
	return &CamperRepository{db: db}
}

// InsertOrIgnore inserts a camper unless the (camp, name, date_of_birth)
// triple already exists. The UNIQUE constraint makes re-imports no-ops.
func (r *CamperRepository) InsertOrIgnore(ctx context.Context, campID int64, name, dateOfBirth string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO campers (camp_id, name, date_of_birth) VALUES (?, ?, ?)",
		campID, name, dateOfBirth,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert camper: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// GetByID retrieves a camper by its ID.
func (r *CamperRepository) GetByID(ctx context.Context, id int64) (*secondary.CamperRecord, error) {
	record, err := scanCamper(r.db.QueryRowContext(ctx,
		"SELECT id, camp_id, name, date_of_birth, created_at FROM campers WHERE id = ?",
		id,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("camper %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get camper: %w", err)
	}

	return record, nil
}

// ListByCamp retrieves a camp's roster ordered by name.
func (r *CamperRepository) ListByCamp(ctx context.Context, campID int64) ([]*secondary.CamperRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, camp_id, name, date_of_birth, created_at FROM campers WHERE camp_id = ? ORDER BY name",
		campID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list campers: %w", err)
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

// ExistsGlobally reports whether a camper with this name and date of
// birth is enrolled in any camp.
func (r *CamperRepository) ExistsGlobally(ctx context.Context, name, dateOfBirth string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM campers WHERE name = ? AND date_of_birth = ?",
		name, dateOfBirth,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check camper: %w", err)
	}

	return count > 0, nil
}

// CreateRegistration records a sub-range registration for a camper.
func (r *CamperRepository) CreateRegistration(ctx context.Context, reg *secondary.RegistrationRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO camper_registrations (camper_id, camp_id, start_date, end_date) VALUES (?, ?, ?, ?)",
		reg.CamperID, reg.CampID, reg.StartDate, reg.EndDate,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create registration: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get registration id: %w", err)
	}

	return id, nil
}

// RegistrationsByCamper retrieves a camper's registrations.
func (r *CamperRepository) RegistrationsByCamper(ctx context.Context, camperID int64) ([]*secondary.RegistrationRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, camper_id, camp_id, start_date, end_date FROM camper_registrations WHERE camper_id = ? ORDER BY start_date",
		camperID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	var regs []*secondary.RegistrationRecord
	for rows.Next() {
		record := &secondary.RegistrationRecord{}
		err := rows.Scan(&record.ID, &record.CamperID, &record.CampID, &record.StartDate, &record.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		regs = append(regs, record)
	}

	return regs, rows.Err()
}

func scanCamper(row rowScanner) (*secondary.CamperRecord, error) {
	var createdAt time.Time

	record := &secondary.CamperRecord{}
	err := row.Scan(&record.ID, &record.CampID, &record.Name, &record.DateOfBirth, &createdAt)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

var _ secondary.CamperRepository = (*CamperRepository)(nil)
