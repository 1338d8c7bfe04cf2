package primary

import "context"

// ActivityService defines the primary port for the daily activity log.
type ActivityService interface {
	// LogActivity records an activity for a camp day.
	LogActivity(ctx context.Context, req LogActivityRequest) (*Activity, error)

	// MarkParticipation records that a camper took part in an activity.
	// Marking the same camper twice reports a duplicate without failing.
	MarkParticipation(ctx context.Context, activityID, camperID int64) (bool, error)

	// Timeline lists a camp's activities in date order.
	Timeline(ctx context.Context, campID int64) ([]*Activity, error)

	// LeaderActivities lists activities across all camps led by a leader.
	LeaderActivities(ctx context.Context, leaderID int64) ([]*Activity, error)

	// Participants lists the campers recorded for an activity.
	Participants(ctx context.Context, activityID int64) ([]*Camper, error)

	// CamperHistory lists the activities a camper attended.
	CamperHistory(ctx context.Context, camperID int64) ([]*Activity, error)
}

// LogActivityRequest contains parameters for logging an activity.
type LogActivityRequest struct {
	CampID        int64  `validate:"required"`
	Date          string `validate:"required,len=10"`
	Name          string `validate:"required"`
	IncidentCount int    `validate:"min=0"`
	Notes         string
}

// Activity is a daily log entry as exposed to callers.
type Activity struct {
	ID            int64
	CampID        int64
	CampName      string
	Date          string
	Name          string
	IncidentCount int
	Notes         string
}
