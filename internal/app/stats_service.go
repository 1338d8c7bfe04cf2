package app

import (
	"context"

	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/ports/secondary"
)

// StatsServiceImpl implements the StatsService interface.
type StatsServiceImpl struct {
	statsRepo secondary.StatsRepository
}

// NewStatsService creates a new StatsService with injected dependencies.
func NewStatsService(statsRepo secondary.StatsRepository) *StatsServiceImpl {
	return &StatsServiceImpl{statsRepo: statsRepo}
}

// LeaderOverview aggregates a leader's history.
func (s *StatsServiceImpl) LeaderOverview(ctx context.Context, leaderID int64) (*primary.LeaderOverview, error) {
	record, err := s.statsRepo.LeaderOverview(ctx, leaderID)
	if err != nil {
		return nil, err
	}

	return &primary.LeaderOverview{
		CampsLed:          record.CampsLed,
		MoneyEarned:       record.MoneyEarned,
		CampersLed:        record.CampersLed,
		IncidentCount:     record.IncidentCount,
		FoodConsumed:      record.FoodConsumed,
		ParticipationRate: record.ParticipationRate,
	}, nil
}

var _ primary.StatsService = (*StatsServiceImpl)(nil)
