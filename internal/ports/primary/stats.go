package primary

import "context"

// StatsService defines the primary port for aggregate statistics.
type StatsService interface {
	// LeaderOverview aggregates a leader's history across every camp they
	// have led that has started.
	LeaderOverview(ctx context.Context, leaderID int64) (*LeaderOverview, error)
}

// LeaderOverview holds a leader's aggregate figures. ParticipationRate
// is weighted by roster size across activities, in [0, 1].
type LeaderOverview struct {
	CampsLed          int
	MoneyEarned       float64
	CampersLed        int
	IncidentCount     int
	FoodConsumed      int
	ParticipationRate float64
}
