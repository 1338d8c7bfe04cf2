package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/ports/secondary"
)

// minRatePerCamper is the lowest acceptable leader daily rate per
// enrolled camper. Rates below this raise a low_daily_payment_rate
// notification.
const minRatePerCamper = 20.0

// NotificationServiceImpl implements the NotificationService interface.
type NotificationServiceImpl struct {
	notificationRepo secondary.NotificationRepository
	campRepo         secondary.CampRepository
	logger           *zap.Logger

	now func() time.Time
}

// NewNotificationService creates a new NotificationService with injected dependencies.
func NewNotificationService(notificationRepo secondary.NotificationRepository, campRepo secondary.CampRepository, logger *zap.Logger) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		campRepo:         campRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// Generate scans every camp and raises at most one notification per
// camp per pass: food shortfall first, then a low payment rate. A still
// unread notification of the same type suppresses a duplicate.
func (s *NotificationServiceImpl) Generate(ctx context.Context) (int, error) {
	camps, err := s.campRepo.ListWithCamperCounts(ctx)
	if err != nil {
		return 0, err
	}

	today := s.now().Format(dateFormat)
	raised := 0

	for _, camp := range camps {
		if camp.NumCampers == 0 || camp.EndDate < today {
			continue
		}

		daysLeft := remainingDays(today, camp.StartDate, camp.EndDate)
		foodNeeded := camp.DailyFoodPerCamper * camp.NumCampers * daysLeft

		var nType, message string
		switch {
		case camp.ApprovedDailyFoodStock < foodNeeded:
			nType = primary.NotificationNotEnoughFood
			message = fmt.Sprintf("Camp %s needs %d food units for its remaining %d days but only %d are approved",
				camp.Name, foodNeeded, daysLeft, camp.ApprovedDailyFoodStock)
		case camp.LeaderDailyPaymentRate < minRatePerCamper*float64(camp.NumCampers):
			nType = primary.NotificationLowPaymentRate
			message = fmt.Sprintf("Camp %s pays %.2f per day for %d campers, below the %.2f minimum",
				camp.Name, camp.LeaderDailyPaymentRate, camp.NumCampers, minRatePerCamper*float64(camp.NumCampers))
		default:
			continue
		}

		exists, err := s.notificationRepo.HasUnread(ctx, camp.ID, nType)
		if err != nil {
			return raised, err
		}
		if exists {
			continue
		}

		_, err = s.notificationRepo.Create(ctx, &secondary.NotificationRecord{
			CampID:        camp.ID,
			CoordinatorID: camp.CoordinatorID,
			Type:          nType,
			Message:       message,
		})
		if err != nil {
			return raised, fmt.Errorf("failed to raise notification: %w", err)
		}

		s.logger.Info("notification raised",
			zap.Int64("camp_id", camp.ID),
			zap.String("type", nType))
		raised++
	}

	return raised, nil
}

// ListNotifications lists a coordinator's notifications, oldest first.
func (s *NotificationServiceImpl) ListNotifications(ctx context.Context, coordinatorID int64, unreadOnly bool) ([]*primary.Notification, error) {
	records, err := s.notificationRepo.ListByCoordinator(ctx, coordinatorID, unreadOnly)
	if err != nil {
		return nil, err
	}

	notifications := make([]*primary.Notification, 0, len(records))
	for _, record := range records {
		notifications = append(notifications, &primary.Notification{
			ID:        record.ID,
			CampID:    record.CampID,
			Type:      record.Type,
			Message:   record.Message,
			IsRead:    record.IsRead,
			CreatedAt: record.CreatedAt,
		})
	}
	return notifications, nil
}

// MarkRead marks a notification as read.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, notificationID int64) error {
	return s.notificationRepo.MarkRead(ctx, notificationID)
}

// remainingDays counts camp days from the later of today and the start
// date through the end date, inclusive.
func remainingDays(today, startDate, endDate string) int {
	from := today
	if startDate > from {
		from = startDate
	}

	start, err := time.Parse(dateFormat, from)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateFormat, endDate)
	if err != nil {
		return 0
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}

var _ primary.NotificationService = (*NotificationServiceImpl)(nil)
