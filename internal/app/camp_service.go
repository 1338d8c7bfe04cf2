package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/camptrack/internal/core/campstatus"
	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/ports/secondary"
)

const dateFormat = "2006-01-02"

// CampServiceImpl implements the CampService interface.
type CampServiceImpl struct {
	campRepo secondary.CampRepository
	userRepo secondary.UserRepository
	logger   *zap.Logger

	// now is swapped out in tests.
	now func() time.Time
}

// NewCampService creates a new CampService with injected dependencies.
func NewCampService(campRepo secondary.CampRepository, userRepo secondary.UserRepository, logger *zap.Logger) *CampServiceImpl {
	return &CampServiceImpl{
		campRepo: campRepo,
		userRepo: userRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateCamp creates a new camp owned by a coordinator. Date ordering,
// date format and the type enum are enforced by the schema; violations
// surface as constraint errors.
func (s *CampServiceImpl) CreateCamp(ctx context.Context, req primary.CreateCampRequest) (*primary.Camp, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid camp request: %w", err)
	}

	coordinator, err := s.userRepo.GetByID(ctx, req.CoordinatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate coordinator: %w", err)
	}
	if coordinator.Role != primary.RoleCoordinator {
		return nil, fmt.Errorf("user %s is not a coordinator", coordinator.Username)
	}

	id, err := s.campRepo.Create(ctx, &secondary.CampRecord{
		Name:          req.Name,
		CoordinatorID: req.CoordinatorID,
		Location:      req.Location,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Type:          req.Type,
		Capacity:      req.Capacity,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create camp: %w", err)
	}

	s.logger.Info("camp created",
		zap.Int64("camp_id", id),
		zap.String("name", req.Name),
		zap.String("start", req.StartDate),
		zap.String("end", req.EndDate))

	return s.GetCamp(ctx, id)
}

// GetCamp retrieves a camp by ID.
func (s *CampServiceImpl) GetCamp(ctx context.Context, campID int64) (*primary.Camp, error) {
	record, err := s.campRepo.GetByID(ctx, campID)
	if err != nil {
		return nil, err
	}

	camp := recordToCamp(record)
	count, err := s.campRepo.Occupancy(ctx, campID)
	if err != nil {
		return nil, err
	}
	camp.NumCampers = count

	return camp, nil
}

// ListCamps lists camps with optional filters.
func (s *CampServiceImpl) ListCamps(ctx context.Context, filters primary.CampFilters) ([]*primary.Camp, error) {
	records, err := s.campRepo.List(ctx, secondary.CampFilters{
		CoordinatorID: filters.CoordinatorID,
		LeaderID:      filters.LeaderID,
		Unassigned:    filters.Unassigned,
		FromDate:      filters.FromDate,
		ToDate:        filters.ToDate,
	})
	if err != nil {
		return nil, err
	}

	camps := make([]*primary.Camp, 0, len(records))
	for _, record := range records {
		camps = append(camps, recordToCamp(record))
	}
	return camps, nil
}

// ClaimCamp assigns a leader to an unclaimed camp. A leader cannot hold
// two camps with intersecting date ranges.
func (s *CampServiceImpl) ClaimCamp(ctx context.Context, campID, leaderID int64) error {
	leader, err := s.userRepo.GetByID(ctx, leaderID)
	if err != nil {
		return fmt.Errorf("failed to validate leader: %w", err)
	}
	if leader.Role != primary.RoleLeader {
		return fmt.Errorf("user %s is not a leader", leader.Username)
	}

	camp, err := s.campRepo.GetByID(ctx, campID)
	if err != nil {
		return err
	}
	if camp.LeaderID != 0 {
		return fmt.Errorf("camp %s already has a leader", camp.Name)
	}

	existing, err := s.campRepo.List(ctx, secondary.CampFilters{LeaderID: leaderID})
	if err != nil {
		return fmt.Errorf("failed to check leader schedule: %w", err)
	}
	for _, other := range existing {
		if other.StartDate <= camp.EndDate && other.EndDate >= camp.StartDate {
			return fmt.Errorf("camp dates conflict with %s (%s to %s)",
				other.Name, other.StartDate, other.EndDate)
		}
	}

	if err := s.campRepo.AssignLeader(ctx, campID, leaderID); err != nil {
		return err
	}

	s.logger.Info("camp claimed",
		zap.Int64("camp_id", campID),
		zap.String("leader", leader.Username))

	return nil
}

// SetLeaderDailyRate sets the leader daily payment rate.
func (s *CampServiceImpl) SetLeaderDailyRate(ctx context.Context, campID int64, rate float64) error {
	if rate < 0 {
		return fmt.Errorf("daily rate cannot be negative")
	}
	return s.campRepo.SetLeaderDailyRate(ctx, campID, rate)
}

// SetDailyFoodPerCamper sets the per-camper daily food allotment.
func (s *CampServiceImpl) SetDailyFoodPerCamper(ctx context.Context, campID int64, units int) error {
	if units < 0 {
		return fmt.Errorf("food allotment cannot be negative")
	}
	return s.campRepo.SetDailyFoodPerCamper(ctx, campID, units)
}

// CampStatus derives the camp's operational status.
func (s *CampServiceImpl) CampStatus(ctx context.Context, campID int64) (string, error) {
	record, err := s.campRepo.GetByID(ctx, campID)
	if err != nil {
		return "", err
	}

	count, err := s.campRepo.Occupancy(ctx, campID)
	if err != nil {
		return "", err
	}

	start, err := time.Parse(dateFormat, record.StartDate)
	if err != nil {
		return "", fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := time.Parse(dateFormat, record.EndDate)
	if err != nil {
		return "", fmt.Errorf("failed to parse end date: %w", err)
	}

	return campstatus.Derive(campstatus.Input{
		Today:          s.now(),
		StartDate:      start,
		EndDate:        end,
		HasLeader:      record.LeaderID != 0,
		NumCampers:     count,
		FoodSufficient: record.DailyFoodPerCamper*count <= record.ApprovedDailyFoodStock,
	}), nil
}

// DeleteCamp removes a camp and everything scoped under it.
func (s *CampServiceImpl) DeleteCamp(ctx context.Context, campID int64) error {
	if err := s.campRepo.Delete(ctx, campID); err != nil {
		return err
	}
	s.logger.Info("camp deleted", zap.Int64("camp_id", campID))
	return nil
}

func recordToCamp(record *secondary.CampRecord) *primary.Camp {
	return &primary.Camp{
		ID:                     record.ID,
		Name:                   record.Name,
		CoordinatorID:          record.CoordinatorID,
		LeaderID:               record.LeaderID,
		LeaderUsername:         record.LeaderUsername,
		Location:               record.Location,
		Latitude:               record.Latitude,
		Longitude:              record.Longitude,
		StartDate:              record.StartDate,
		EndDate:                record.EndDate,
		Type:                   record.Type,
		Capacity:               record.Capacity,
		ApprovedDailyFoodStock: record.ApprovedDailyFoodStock,
		LeaderDailyPaymentRate: record.LeaderDailyPaymentRate,
		DailyFoodPerCamper:     record.DailyFoodPerCamper,
	}
}

var _ primary.CampService = (*CampServiceImpl)(nil)
