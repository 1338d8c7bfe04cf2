package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/ports/secondary"
	"github.com/example/camptrack/internal/roster"
)

// RosterServiceImpl implements the RosterService interface.
type RosterServiceImpl struct {
	camperRepo secondary.CamperRepository
	campRepo   secondary.CampRepository
	logger     *zap.Logger
}

// NewRosterService creates a new RosterService with injected dependencies.
func NewRosterService(camperRepo secondary.CamperRepository, campRepo secondary.CampRepository, logger *zap.Logger) *RosterServiceImpl {
	return &RosterServiceImpl{
		camperRepo: camperRepo,
		campRepo:   campRepo,
		logger:     logger,
	}
}

// ImportCSV loads campers from a CSV file into a camp. Rows are skipped
// rather than failing the whole import: blank required fields, campers
// already enrolled in any camp, and rows past the camp's remaining
// capacity (or the request limit) are counted and reported. A second
// import of the same file changes nothing.
func (s *RosterServiceImpl) ImportCSV(ctx context.Context, req primary.ImportRosterRequest) (*primary.ImportRosterResult, error) {
	camp, err := s.campRepo.GetByID(ctx, req.CampID)
	if err != nil {
		return nil, err
	}

	parsed, err := roster.ParseFile(req.Path)
	if err != nil {
		return nil, err
	}

	occupancy, err := s.campRepo.Occupancy(ctx, req.CampID)
	if err != nil {
		return nil, err
	}

	headroom := camp.Capacity - occupancy
	if headroom < 0 {
		headroom = 0
	}
	if req.Limit > 0 && req.Limit < headroom {
		headroom = req.Limit
	}

	result := &primary.ImportRosterResult{SkippedMissing: parsed.SkippedMissing}
	for _, row := range parsed.Rows {
		exists, err := s.camperRepo.ExistsGlobally(ctx, row.Name, row.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("failed to check camper: %w", err)
		}
		if exists {
			result.SkippedExisting++
			continue
		}

		if result.Imported >= headroom {
			result.SkippedCapacity++
			continue
		}

		inserted, err := s.camperRepo.InsertOrIgnore(ctx, req.CampID, row.Name, row.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("failed to import camper %s: %w", row.Name, err)
		}
		if inserted {
			result.Imported++
		}
	}

	s.logger.Info("roster imported",
		zap.Int64("camp_id", req.CampID),
		zap.Int("imported", result.Imported),
		zap.Int("skipped_missing", result.SkippedMissing),
		zap.Int("skipped_existing", result.SkippedExisting),
		zap.Int("skipped_capacity", result.SkippedCapacity))

	return result, nil
}

// AddCamper enrolls a single camper. Reports whether the camper was new.
func (s *RosterServiceImpl) AddCamper(ctx context.Context, campID int64, name, dateOfBirth string) (bool, error) {
	camp, err := s.campRepo.GetByID(ctx, campID)
	if err != nil {
		return false, err
	}

	occupancy, err := s.campRepo.Occupancy(ctx, campID)
	if err != nil {
		return false, err
	}
	if occupancy >= camp.Capacity {
		return false, fmt.Errorf("camp %s is full (%d/%d)", camp.Name, occupancy, camp.Capacity)
	}

	return s.camperRepo.InsertOrIgnore(ctx, campID, name, dateOfBirth)
}

// ListCampers returns a camp's roster.
func (s *RosterServiceImpl) ListCampers(ctx context.Context, campID int64) ([]*primary.Camper, error) {
	records, err := s.camperRepo.ListByCamp(ctx, campID)
	if err != nil {
		return nil, err
	}

	campers := make([]*primary.Camper, 0, len(records))
	for _, record := range records {
		campers = append(campers, &primary.Camper{
			ID:          record.ID,
			CampID:      record.CampID,
			Name:        record.Name,
			DateOfBirth: record.DateOfBirth,
		})
	}
	return campers, nil
}

var _ primary.RosterService = (*RosterServiceImpl)(nil)
