package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/ports/secondary"
)

// StockServiceImpl implements the StockService interface.
type StockServiceImpl struct {
	stockRepo      secondary.StockRepository
	campRepo       secondary.CampRepository
	attendanceRepo secondary.AttendanceRepository
	logger         *zap.Logger
}

// NewStockService creates a new StockService with injected dependencies.
func NewStockService(stockRepo secondary.StockRepository, campRepo secondary.CampRepository, attendanceRepo secondary.AttendanceRepository, logger *zap.Logger) *StockServiceImpl {
	return &StockServiceImpl{
		stockRepo:      stockRepo,
		campRepo:       campRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

// TopUp adds stock to a camp.
func (s *StockServiceImpl) TopUp(ctx context.Context, campID int64, date string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("top up amount must be positive")
	}

	level, err := s.stockRepo.Adjust(ctx, campID, date, amount, primary.StockReasonTopUp)
	if err != nil {
		return 0, err
	}

	s.logger.Info("stock topped up",
		zap.Int64("camp_id", campID),
		zap.Int("amount", amount),
		zap.Int("level", level))

	return level, nil
}

// ConsumeDaily books one day of consumption: the per-camper allotment
// for every camper not marked absent on the date.
func (s *StockServiceImpl) ConsumeDaily(ctx context.Context, campID int64, date string) (int, error) {
	camp, err := s.campRepo.GetByID(ctx, campID)
	if err != nil {
		return 0, err
	}

	occupancy, err := s.campRepo.Occupancy(ctx, campID)
	if err != nil {
		return 0, err
	}

	absences, err := s.attendanceRepo.AbsenceCount(ctx, campID, date)
	if err != nil {
		return 0, err
	}

	eating := occupancy - absences
	if eating < 0 {
		eating = 0
	}

	usage := camp.DailyFoodPerCamper * eating
	if usage == 0 {
		return s.stockRepo.CurrentLevel(ctx, campID)
	}

	level, err := s.stockRepo.Adjust(ctx, campID, date, -usage, primary.StockReasonDailyUsage)
	if err != nil {
		return 0, err
	}

	s.logger.Info("daily stock consumed",
		zap.Int64("camp_id", campID),
		zap.String("date", date),
		zap.Int("usage", usage),
		zap.Int("level", level))

	return level, nil
}

// AllocateInitial books the opening allocation for a camp.
func (s *StockServiceImpl) AllocateInitial(ctx context.Context, campID int64, date string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("allocation must be positive")
	}
	return s.stockRepo.Adjust(ctx, campID, date, amount, primary.StockReasonInitial)
}

// Level returns the camp's current stock level.
func (s *StockServiceImpl) Level(ctx context.Context, campID int64) (int, error) {
	return s.stockRepo.CurrentLevel(ctx, campID)
}

// History returns the camp's ledger, oldest first.
func (s *StockServiceImpl) History(ctx context.Context, campID int64) ([]*primary.StockEntry, error) {
	records, err := s.stockRepo.History(ctx, campID)
	if err != nil {
		return nil, err
	}

	entries := make([]*primary.StockEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, &primary.StockEntry{
			ID:             record.ID,
			CampID:         record.CampID,
			Date:           record.Date,
			StockAvailable: record.StockAvailable,
			ChangeAmount:   record.ChangeAmount,
			ChangeReason:   record.ChangeReason,
		})
	}
	return entries, nil
}

var _ primary.StockService = (*StockServiceImpl)(nil)
