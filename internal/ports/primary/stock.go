package primary

import "context"

// Stock ledger reasons written by the standard workflows.
const (
	StockReasonInitial    = "initial allocation"
	StockReasonDailyUsage = "daily usage"
	StockReasonTopUp      = "top up"
)

// StockService defines the primary port for the food stock ledger.
// Every change moves the camp's stock level and appends a ledger row in
// one transaction.
type StockService interface {
	// TopUp adds stock to a camp. Amount must be positive.
	TopUp(ctx context.Context, campID int64, date string, amount int) (int, error)

	// ConsumeDaily books one day of consumption: daily_food_per_camper
	// times the number of campers present. Returns the new level.
	ConsumeDaily(ctx context.Context, campID int64, date string) (int, error)

	// AllocateInitial books the opening allocation for a camp.
	AllocateInitial(ctx context.Context, campID int64, date string, amount int) (int, error)

	// Level returns the camp's current stock level.
	Level(ctx context.Context, campID int64) (int, error)

	// History returns the camp's ledger, oldest first.
	History(ctx context.Context, campID int64) ([]*StockEntry, error)
}

// StockEntry is one food stock ledger row as exposed to callers.
type StockEntry struct {
	ID             int64
	CampID         int64
	Date           string
	StockAvailable int
	ChangeAmount   int
	ChangeReason   string
}
