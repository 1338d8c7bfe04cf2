package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/ports/secondary"
)

// AttendanceServiceImpl implements the AttendanceService interface.
type AttendanceServiceImpl struct {
	attendanceRepo secondary.AttendanceRepository
	camperRepo     secondary.CamperRepository
	logger         *zap.Logger
}

// NewAttendanceService creates a new AttendanceService with injected dependencies.
func NewAttendanceService(attendanceRepo secondary.AttendanceRepository, camperRepo secondary.CamperRepository, logger *zap.Logger) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		camperRepo:     camperRepo,
		logger:         logger,
	}
}

// RecordAttendance sets a camper's status for one camp day. Any earlier
// status for the same day is overwritten.
func (s *AttendanceServiceImpl) RecordAttendance(ctx context.Context, req primary.RecordAttendanceRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("invalid attendance request: %w", err)
	}

	camper, err := s.camperRepo.GetByID(ctx, req.CamperID)
	if err != nil {
		return err
	}
	if camper.CampID != req.CampID {
		return fmt.Errorf("camper %s is not enrolled in camp %d", camper.Name, req.CampID)
	}

	if err := s.attendanceRepo.Record(ctx, req.CampID, req.CamperID, req.Date, req.Status); err != nil {
		return err
	}

	s.logger.Debug("attendance recorded",
		zap.Int64("camp_id", req.CampID),
		zap.Int64("camper_id", req.CamperID),
		zap.String("date", req.Date),
		zap.String("status", req.Status))

	return nil
}

// Sheet returns a camp's attendance for one date, the whole roster with
// unrecorded campers shown as pending.
func (s *AttendanceServiceImpl) Sheet(ctx context.Context, campID int64, date string) ([]*primary.AttendanceEntry, error) {
	records, err := s.attendanceRepo.ListByCampDate(ctx, campID, date)
	if err != nil {
		return nil, err
	}

	entries := make([]*primary.AttendanceEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, &primary.AttendanceEntry{
			CamperID:   record.CamperID,
			CamperName: record.CamperName,
			Date:       record.Date,
			Status:     record.Status,
		})
	}
	return entries, nil
}

// Absences returns the number of absences for a camp on a date.
func (s *AttendanceServiceImpl) Absences(ctx context.Context, campID int64, date string) (int, error) {
	return s.attendanceRepo.AbsenceCount(ctx, campID, date)
}

var _ primary.AttendanceService = (*AttendanceServiceImpl)(nil)
