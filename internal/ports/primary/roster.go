package primary

import "context"

// RosterService defines the primary port for camper roster management.
type RosterService interface {
	// ImportCSV loads campers from a CSV file into a camp. Rows with
	// missing fields, campers already enrolled anywhere, and rows beyond
	// the camp's remaining capacity are skipped rather than failing the
	// import. Re-importing the same file is a no-op.
	ImportCSV(ctx context.Context, req ImportRosterRequest) (*ImportRosterResult, error)

	// AddCamper enrolls a single camper.
	AddCamper(ctx context.Context, campID int64, name, dateOfBirth string) (bool, error)

	// ListCampers returns a camp's roster.
	ListCampers(ctx context.Context, campID int64) ([]*Camper, error)
}

// ImportRosterRequest contains parameters for a CSV roster import.
type ImportRosterRequest struct {
	CampID int64
	Path   string
	// Limit caps how many rows are imported; zero means no cap beyond
	// the camp's capacity.
	Limit int
}

// ImportRosterResult breaks down what happened to each CSV row.
type ImportRosterResult struct {
	Imported        int
	SkippedMissing  int // rows with a blank required field
	SkippedExisting int // campers already enrolled in some camp
	SkippedCapacity int // rows beyond remaining capacity or the limit
}

// Camper is a roster entry as exposed to callers.
type Camper struct {
	ID          int64
	CampID      int64
	Name        string
	DateOfBirth string
}
