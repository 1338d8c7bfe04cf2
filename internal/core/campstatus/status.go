// Package campstatus derives a camp's operational status from its state.
// Status is never stored; it is computed on demand from the current date,
// leader assignment, roster size and food position.
package campstatus

import "time"

// MinCampers is the smallest roster a camp can run with.
const MinCampers = 1

// Status values.
const (
	// Planned: future camp, no leader yet.
	Planned = "planned"
	// NoCampers: future camp, has leader, empty roster.
	NoCampers = "no_campers"
	// InsufficientFood: future camp, has leader and campers, food short.
	InsufficientFood = "insufficient_food"
	// Ready: future camp with leader, campers and sufficient food.
	Ready = "ready"
	// InProgress: the camp is running.
	InProgress = "in_progress"
	// Completed: past camp that had leader, campers and sufficient food.
	Completed = "completed"
	// Cancelled: the camp reached its start date without being ready.
	Cancelled = "cancelled"
)

// Input is the state a status is derived from. FoodSufficient means the
// approved daily stock covers daily_food_per_camper for the whole roster.
type Input struct {
	Today          time.Time
	StartDate      time.Time
	EndDate        time.Time
	HasLeader      bool
	NumCampers     int
	FoodSufficient bool
}

// Derive returns the camp's status for the given state.
func Derive(in Input) string {
	viable := in.HasLeader && in.NumCampers >= MinCampers && in.FoodSufficient

	today := truncate(in.Today)
	start := truncate(in.StartDate)
	end := truncate(in.EndDate)

	switch {
	case end.Before(today):
		if viable {
			return Completed
		}
		return Cancelled
	case !start.After(today):
		if viable {
			return InProgress
		}
		return Cancelled
	}

	switch {
	case !in.HasLeader:
		return Planned
	case in.NumCampers < MinCampers:
		return NoCampers
	case !in.FoodSufficient:
		return InsufficientFood
	}
	return Ready
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
