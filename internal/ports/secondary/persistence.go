// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives the storage layer.
package secondary

import (
	"context"
	"errors"
)

// ErrDuplicateParticipant is returned when a camper is already recorded as
// a participant of an activity (composite primary key collision).
var ErrDuplicateParticipant = errors.New("camper already logged for this activity")

// UserRepository defines the secondary port for user persistence.
type UserRepository interface {
	// Create persists a new user and returns its ID.
	Create(ctx context.Context, user *UserRecord) (int64, error)

	// GetByID retrieves a user by its ID.
	GetByID(ctx context.Context, id int64) (*UserRecord, error)

	// GetByUsername retrieves a user by username.
	GetByUsername(ctx context.Context, username string) (*UserRecord, error)

	// List retrieves users ordered by username. When disabledOnly is set,
	// only disabled accounts are returned.
	List(ctx context.Context, disabledOnly bool) ([]*UserRecord, error)

	// SetDisabled flips the soft-delete flag.
	SetDisabled(ctx context.Context, id int64, disabled bool) error

	// SetPasswordHash replaces the stored password hash.
	SetPasswordHash(ctx context.Context, id int64, hash string) error
}

// UserRecord represents a user as stored in persistence.
type UserRecord struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	IsDisabled   bool
	CreatedAt    string
}

// MessageRepository defines the secondary port for message persistence.
// Messages are immutable once created except for the read flag.
type MessageRepository interface {
	// Create persists a new message and returns its ID.
	Create(ctx context.Context, senderID, recipientID int64, body string) (int64, error)

	// ConversationBetween returns messages exchanged between two users,
	// oldest first within the requested page (newest page first).
	ConversationBetween(ctx context.Context, userID, otherID int64, limit, offset int) ([]*MessageRecord, error)

	// CountConversation returns the number of messages between two users.
	CountConversation(ctx context.Context, userID, otherID int64) (int, error)

	// Inbox returns messages addressed to a recipient, newest first.
	Inbox(ctx context.Context, recipientID int64, unreadOnly bool) ([]*MessageRecord, error)

	// MarkConversationRead marks all messages from sender to recipient as read.
	MarkConversationRead(ctx context.Context, senderID, recipientID int64) error

	// ChatPartners returns, for each user this user has exchanged messages
	// with, the latest message and the unread count. Disabled partners are
	// excluded.
	ChatPartners(ctx context.Context, userID int64) ([]*ChatPartnerRecord, error)
}

// MessageRecord represents a message as stored in persistence.
type MessageRecord struct {
	ID             int64
	SenderID       int64
	RecipientID    int64
	SenderUsername string
	Body           string
	IsRead         bool
	CreatedAt      string
}

// ChatPartnerRecord summarizes a conversation with one other user.
type ChatPartnerRecord struct {
	PartnerID       int64
	PartnerUsername string
	PartnerRole     string
	LastMessage     string
	LastTimestamp   string
	UnreadCount     int
}

// CampRepository defines the secondary port for camp persistence.
type CampRepository interface {
	// Create persists a new camp and returns its ID.
	Create(ctx context.Context, camp *CampRecord) (int64, error)

	// GetByID retrieves a camp by its ID.
	GetByID(ctx context.Context, id int64) (*CampRecord, error)

	// List retrieves camps matching the given filters.
	List(ctx context.Context, filters CampFilters) ([]*CampRecord, error)

	// ListWithCamperCounts retrieves all camps together with their roster
	// size, for status derivation and notification generation.
	ListWithCamperCounts(ctx context.Context) ([]*CampSummaryRecord, error)

	// ActiveInWindow retrieves camps whose date range intersects [from, to].
	ActiveInWindow(ctx context.Context, from, to string) ([]*CampRecord, error)

	// AssignLeader claims a camp for a leader.
	AssignLeader(ctx context.Context, campID, leaderID int64) error

	// SetLeaderDailyRate updates the leader daily payment rate.
	SetLeaderDailyRate(ctx context.Context, campID int64, rate float64) error

	// SetDailyFoodPerCamper updates the per-camper daily food allotment.
	SetDailyFoodPerCamper(ctx context.Context, campID int64, units int) error

	// Occupancy returns the number of campers enrolled in a camp.
	Occupancy(ctx context.Context, campID int64) (int, error)

	// Delete removes a camp. Campers, activities, attendance, notifications
	// and stock history cascade with it.
	Delete(ctx context.Context, campID int64) error
}

// CampRecord represents a camp as stored in persistence.
// LeaderID zero means the camp is unclaimed.
type CampRecord struct {
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
	CreatedAt              string
}

// CampSummaryRecord is a camp row joined with its roster size.
type CampSummaryRecord struct {
	CampRecord
	NumCampers int
}

// CampFilters contains filter options for querying camps.
type CampFilters struct {
	CoordinatorID int64
	LeaderID      int64
	Unassigned    bool   // leader_id IS NULL
	FromDate      string // start_date >= FromDate
	ToDate        string // start_date <= ToDate
}

// CamperRepository defines the secondary port for camper persistence.
type CamperRepository interface {
	// InsertOrIgnore inserts a camper unless the (camp, name, date_of_birth)
	// triple already exists. Reports whether a row was actually inserted;
	// an existing row is not an error.
	InsertOrIgnore(ctx context.Context, campID int64, name, dateOfBirth string) (bool, error)

	// GetByID retrieves a camper by its ID.
	GetByID(ctx context.Context, id int64) (*CamperRecord, error)

	// ListByCamp retrieves a camp's roster ordered by name.
	ListByCamp(ctx context.Context, campID int64) ([]*CamperRecord, error)

	// ExistsGlobally reports whether a camper with this name and date of
	// birth is enrolled in any camp.
	ExistsGlobally(ctx context.Context, name, dateOfBirth string) (bool, error)

	// CreateRegistration records a sub-range registration for a camper.
	CreateRegistration(ctx context.Context, reg *RegistrationRecord) (int64, error)

	// RegistrationsByCamper retrieves a camper's registrations.
	RegistrationsByCamper(ctx context.Context, camperID int64) ([]*RegistrationRecord, error)
}

// CamperRecord represents a camper as stored in persistence.
type CamperRecord struct {
	ID          int64
	CampID      int64
	Name        string
	DateOfBirth string
	CreatedAt   string
}

// RegistrationRecord represents a camper registration sub-range.
type RegistrationRecord struct {
	ID        int64
	CamperID  int64
	CampID    int64
	StartDate string
	EndDate   string
}

// NotificationRepository defines the secondary port for notification persistence.
type NotificationRepository interface {
	// Create persists a new notification and returns its ID.
	Create(ctx context.Context, n *NotificationRecord) (int64, error)

	// HasUnread reports whether an unread notification of the given type
	// already exists for the camp.
	HasUnread(ctx context.Context, campID int64, notificationType string) (bool, error)

	// ListByCoordinator retrieves a coordinator's notifications, oldest first.
	ListByCoordinator(ctx context.Context, coordinatorID int64, unreadOnly bool) ([]*NotificationRecord, error)

	// MarkRead marks a notification as read.
	MarkRead(ctx context.Context, id int64) error
}

// NotificationRecord represents a notification as stored in persistence.
// Type may be empty (untyped alert).
type NotificationRecord struct {
	ID            int64
	CampID        int64
	CoordinatorID int64
	Type          string
	Message       string
	IsRead        bool
	CreatedAt     string
}

// ActivityRepository defines the secondary port for activity persistence.
type ActivityRepository interface {
	// Create persists a new activity and returns its ID.
	Create(ctx context.Context, a *ActivityRecord) (int64, error)

	// GetByID retrieves an activity by its ID.
	GetByID(ctx context.Context, id int64) (*ActivityRecord, error)

	// ListByCamp retrieves a camp's activities in timeline order.
	ListByCamp(ctx context.Context, campID int64) ([]*ActivityRecord, error)

	// ListByLeader retrieves activities across all camps led by a leader.
	ListByLeader(ctx context.Context, leaderID int64) ([]*ActivityRecord, error)

	// AddParticipant records a camper's participation. Returns
	// ErrDuplicateParticipant if the pair is already recorded.
	AddParticipant(ctx context.Context, activityID, camperID int64) error

	// Participants retrieves the campers recorded for an activity.
	Participants(ctx context.Context, activityID int64) ([]*CamperRecord, error)

	// ActivitiesForCamper retrieves the activities a camper attended.
	ActivitiesForCamper(ctx context.Context, camperID int64) ([]*ActivityRecord, error)
}

// ActivityRecord represents an activity as stored in persistence.
type ActivityRecord struct {
	ID            int64
	CampID        int64
	CampName      string
	ActivityDate  string
	ActivityName  string
	IncidentCount int
	Notes         string
	CreatedAt     string
}

// AttendanceRepository defines the secondary port for attendance persistence.
type AttendanceRepository interface {
	// Record sets the status for a (camp, camper, date). The tuple is
	// unique by convention, not constraint: an existing row is updated in
	// place rather than duplicated.
	Record(ctx context.Context, campID, camperID int64, date, status string) error

	// ListByCampDate retrieves a camp's attendance sheet for a date.
	ListByCampDate(ctx context.Context, campID int64, date string) ([]*AttendanceRecord, error)

	// AbsenceCount returns the number of absences for a camp on a date.
	AbsenceCount(ctx context.Context, campID int64, date string) (int, error)
}

// AttendanceRecord represents an attendance row as stored in persistence.
type AttendanceRecord struct {
	ID         int64
	CampID     int64
	CamperID   int64
	CamperName string
	Date       string
	Status     string
}

// StockRepository defines the secondary port for the food stock ledger.
type StockRepository interface {
	// Adjust applies a signed stock change to a camp inside a single
	// transaction: the camp's approved_daily_food_stock moves by delta and
	// a ledger row with the resulting level is appended. Either both writes
	// land or neither does. Returns the new level.
	Adjust(ctx context.Context, campID int64, date string, delta int, reason string) (int, error)

	// History retrieves the ledger for a camp, oldest first.
	History(ctx context.Context, campID int64) ([]*StockEntryRecord, error)

	// CurrentLevel returns the camp's current approved daily food stock.
	CurrentLevel(ctx context.Context, campID int64) (int, error)

	// TotalConsumed returns the total stock consumed (sum of negative
	// changes, as a positive number).
	TotalConsumed(ctx context.Context, campID int64) (int, error)
}

// StockEntryRecord represents one food stock ledger row.
type StockEntryRecord struct {
	ID             int64
	CampID         int64
	Date           string
	StockAvailable int
	ChangeAmount   int
	ChangeReason   string
	CreatedAt      string
}

// StatsRepository defines the secondary port for aggregate statistics.
type StatsRepository interface {
	// LeaderOverview computes aggregate figures across all camps a leader
	// has led that have started.
	LeaderOverview(ctx context.Context, leaderID int64) (*LeaderOverviewRecord, error)
}

// LeaderOverviewRecord holds a leader's aggregate figures.
type LeaderOverviewRecord struct {
	CampsLed          int
	MoneyEarned       float64
	CampersLed        int
	IncidentCount     int
	FoodConsumed      int
	ParticipationRate float64 // weighted across activities, 0..1
}
