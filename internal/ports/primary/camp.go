package primary

import "context"

// Camp types.
const (
	CampTypeDay        = "day_camp"
	CampTypeOvernight  = "overnight"
	CampTypeExpedition = "expedition"
)

// CampService defines the primary port for camp operations.
type CampService interface {
	// CreateCamp creates a new camp owned by a coordinator.
	CreateCamp(ctx context.Context, req CreateCampRequest) (*Camp, error)

	// GetCamp retrieves a camp by ID.
	GetCamp(ctx context.Context, campID int64) (*Camp, error)

	// ListCamps lists camps with optional filters.
	ListCamps(ctx context.Context, filters CampFilters) ([]*Camp, error)

	// ClaimCamp assigns a leader to an unclaimed camp. Fails when the
	// camp already has a leader or when the leader's existing camps
	// overlap the camp's date range.
	ClaimCamp(ctx context.Context, campID, leaderID int64) error

	// SetLeaderDailyRate sets the leader daily payment rate.
	SetLeaderDailyRate(ctx context.Context, campID int64, rate float64) error

	// SetDailyFoodPerCamper sets the per-camper daily food allotment.
	SetDailyFoodPerCamper(ctx context.Context, campID int64, units int) error

	// CampStatus derives the camp's operational status from its dates,
	// leader assignment, roster and food position.
	CampStatus(ctx context.Context, campID int64) (string, error)

	// DeleteCamp removes a camp and everything scoped under it.
	DeleteCamp(ctx context.Context, campID int64) error
}

// CreateCampRequest contains parameters for creating a camp.
// Date ordering and the type enum are enforced by the schema; the
// request carries the field-level requirements.
type CreateCampRequest struct {
	Name          string `validate:"required"`
	CoordinatorID int64  `validate:"required"`
	Location      string
	Latitude      float64
	Longitude     float64
	StartDate     string `validate:"required,len=10"`
	EndDate       string `validate:"required,len=10"`
	Type          string `validate:"required,oneof=day_camp overnight expedition"`
	Capacity      int    `validate:"min=0"`
}

// CampFilters contains filter options for listing camps.
type CampFilters struct {
	CoordinatorID int64
	LeaderID      int64
	Unassigned    bool
	FromDate      string
	ToDate        string
}

// Camp is a camp as exposed to callers. LeaderID zero means unclaimed.
type Camp struct {
	ID                     int64
	Name                   string
	CoordinatorID          int64
	LeaderID               int64
	LeaderUsername         string
	Location               string
	Latitude               float64
	Longitude              float64
	StartDate              string
	EndDate                string
	Type                   string
	Capacity               int
	ApprovedDailyFoodStock int
	LeaderDailyPaymentRate float64
	DailyFoodPerCamper     int
	NumCampers             int
}
