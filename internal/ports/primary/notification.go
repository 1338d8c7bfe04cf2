package primary

import "context"

// Notification types raised by the generator.
const (
	NotificationNotEnoughFood  = "not_enough_food"
	NotificationLowPaymentRate = "low_daily_payment_rate"
)

// NotificationService defines the primary port for coordinator alerts.
type NotificationService interface {
	// Generate scans every camp and raises notifications for problems
	// found. An unread notification of the same type for the same camp
	// suppresses a new one. Returns the number raised.
	Generate(ctx context.Context) (int, error)

	// ListNotifications lists a coordinator's notifications, oldest first.
	ListNotifications(ctx context.Context, coordinatorID int64, unreadOnly bool) ([]*Notification, error)

	// MarkRead marks a notification as read.
	MarkRead(ctx context.Context, notificationID int64) error
}

// Notification is a coordinator alert as exposed to callers.
type Notification struct {
	ID        int64
	CampID    int64
	Type      string
	Message   string
	IsRead    bool
	CreatedAt string
}
