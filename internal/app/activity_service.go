package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/ports/secondary"
)

// ActivityServiceImpl implements the ActivityService interface.
type ActivityServiceImpl struct {
	activityRepo secondary.ActivityRepository
	camperRepo   secondary.CamperRepository
	logger       *zap.Logger
}

// NewActivityService creates a new ActivityService with injected dependencies.
func NewActivityService(activityRepo secondary.ActivityRepository, camperRepo secondary.CamperRepository, logger *zap.Logger) *ActivityServiceImpl {
	return &ActivityServiceImpl{
		activityRepo: activityRepo,
		camperRepo:   camperRepo,
		logger:       logger,
	}
}

// LogActivity records an activity for a camp day.
func (s *ActivityServiceImpl) LogActivity(ctx context.Context, req primary.LogActivityRequest) (*primary.Activity, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid activity request: %w", err)
	}

	id, err := s.activityRepo.Create(ctx, &secondary.ActivityRecord{
		CampID:        req.CampID,
		ActivityDate:  req.Date,
		ActivityName:  req.Name,
		IncidentCount: req.IncidentCount,
		Notes:         req.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("activity logged",
		zap.Int64("camp_id", req.CampID),
		zap.String("activity", req.Name),
		zap.Int("incidents", req.IncidentCount))

	record, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logged activity: %w", err)
	}
	return recordToActivity(record), nil
}

// MarkParticipation records that a camper took part in an activity.
// Returns false without an error when the pair was already recorded;
// the camper must belong to the activity's camp.
func (s *ActivityServiceImpl) MarkParticipation(ctx context.Context, activityID, camperID int64) (bool, error) {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return false, err
	}

	camper, err := s.camperRepo.GetByID(ctx, camperID)
	if err != nil {
		return false, err
	}
	if camper.CampID != activity.CampID {
		return false, fmt.Errorf("camper %s is not enrolled in camp %s", camper.Name, activity.CampName)
	}

	err = s.activityRepo.AddParticipant(ctx, activityID, camperID)
	if errors.Is(err, secondary.ErrDuplicateParticipant) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// Timeline lists a camp's activities in date order.
func (s *ActivityServiceImpl) Timeline(ctx context.Context, campID int64) ([]*primary.Activity, error) {
	records, err := s.activityRepo.ListByCamp(ctx, campID)
	if err != nil {
		return nil, err
	}
	return recordsToActivities(records), nil
}

// LeaderActivities lists activities across all camps led by a leader.
func (s *ActivityServiceImpl) LeaderActivities(ctx context.Context, leaderID int64) ([]*primary.Activity, error) {
	records, err := s.activityRepo.ListByLeader(ctx, leaderID)
	if err != nil {
		return nil, err
	}
	return recordsToActivities(records), nil
}

// Participants lists the campers recorded for an activity.
func (s *ActivityServiceImpl) Participants(ctx context.Context, activityID int64) ([]*primary.Camper, error) {
	records, err := s.activityRepo.Participants(ctx, activityID)
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

// CamperHistory lists the activities a camper attended.
func (s *ActivityServiceImpl) CamperHistory(ctx context.Context, camperID int64) ([]*primary.Activity, error) {
	records, err := s.activityRepo.ActivitiesForCamper(ctx, camperID)
	if err != nil {
		return nil, err
	}
	return recordsToActivities(records), nil
}

func recordToActivity(record *secondary.ActivityRecord) *primary.Activity {
	return &primary.Activity{
		ID:            record.ID,
		CampID:        record.CampID,
		CampName:      record.CampName,
		Date:          record.ActivityDate,
		Name:          record.ActivityName,
		IncidentCount: record.IncidentCount,
		Notes:         record.Notes,
	}
}

func recordsToActivities(records []*secondary.ActivityRecord) []*primary.Activity {
	activities := make([]*primary.Activity, 0, len(records))
	for _, record := range records {
		activities = append(activities, recordToActivity(record))
	}
	return activities
}

var _ primary.ActivityService = (*ActivityServiceImpl)(nil)
