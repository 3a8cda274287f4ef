package notification

import (
	"context"
	"fmt"
	"time"

	"slotify/config"
	"slotify/models"
	"slotify/services/tasks"
	"slotify/utils"

	"go.uber.org/zap"
)

func (s *DefaultNotificationService) NotifyCreated(ctx context.Context, b models.Booking) {
	s.enqueue(ctx, models.Notification{
		AccountID: b.ProviderID,
		Event:     models.EventCreated,
		Title:     "New booking request",
		Body:      fmt.Sprintf("A customer requested %s. Confirm or decline in the app.", when(b.Start)),
		Data:      payload(b),
	})
}

func (s *DefaultNotificationService) NotifyConfirmed(ctx context.Context, b models.Booking) {
	s.enqueue(ctx, models.Notification{
		AccountID: b.CustomerID,
		Event:     models.EventConfirmed,
		Title:     "Booking confirmed 🎉",
		Body:      fmt.Sprintf("Your booking for %s is confirmed. See you there!", when(b.Start)),
		Data:      payload(b),
	})
}

func (s *DefaultNotificationService) NotifyDeclined(ctx context.Context, b models.Booking) {
	s.enqueue(ctx, models.Notification{
		AccountID: b.CustomerID,
		Event:     models.EventDeclined,
		Title:     "Booking declined",
		Body:      fmt.Sprintf("Your request for %s was declined. Try another time.", when(b.Start)),
		Data:      payload(b),
	})
}

// NotifyCancelled tells the party that did not cancel.
func (s *DefaultNotificationService) NotifyCancelled(ctx context.Context, b models.Booking, cancelledBy string) {
	target := b.ProviderID
	body := fmt.Sprintf("The customer cancelled the booking for %s.", when(b.Start))
	if cancelledBy == b.ProviderID {
		target = b.CustomerID
		body = fmt.Sprintf("The provider cancelled your booking for %s.", when(b.Start))
	}
	s.enqueue(ctx, models.Notification{
		AccountID: target,
		Event:     models.EventCancelled,
		Title:     "Booking cancelled",
		Body:      body,
		Data:      payload(b),
	})
}

func (s *DefaultNotificationService) NotifyRescheduled(ctx context.Context, b models.Booking) {
	s.enqueue(ctx, models.Notification{
		AccountID: b.ProviderID,
		Event:     models.EventRescheduled,
		Title:     "Booking rescheduled",
		Body:      fmt.Sprintf("A booking was moved to %s and awaits your confirmation.", when(b.Start)),
		Data:      payload(b),
	})
}

// ScheduleReminder enqueues a delayed task that fires before the booking
// starts. Bookings starting within the lead window get no reminder.
func (s *DefaultNotificationService) ScheduleReminder(ctx context.Context, b models.Booking) {
	logger := utils.GetLogger()

	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	fireAt := b.Start.Add(-lead)
	if !fireAt.After(time.Now().UTC()) {
		logger.Debug("Skipping reminder for imminent booking", zap.String("bookingId", b.ID))
		return
	}

	task, opts, err := tasks.NewReminderTask(b.ID, fireAt)
	if err != nil {
		logger.Error("Failed to build reminder task", zap.Error(err), zap.String("bookingId", b.ID))
		return
	}
	if _, err := s.AsynqClient.EnqueueContext(ctx, task, opts...); err != nil {
		logger.Error("Failed to enqueue reminder task", zap.Error(err), zap.String("bookingId", b.ID))
	}
}

func (s *DefaultNotificationService) enqueue(ctx context.Context, n models.Notification) {
	logger := utils.GetLogger()

	task, err := tasks.NewNotifyTask(n)
	if err != nil {
		logger.Error("Failed to build notification task", zap.Error(err), zap.String("event", string(n.Event)))
		return
	}
	if _, err := s.AsynqClient.EnqueueContext(ctx, task); err != nil {
		logger.Error("Failed to enqueue notification",
			zap.Error(err), zap.String("event", string(n.Event)), zap.String("accountId", n.AccountID))
	}
}

func when(t time.Time) string {
	return t.UTC().Format("Mon, 02 Jan 15:04")
}

func payload(b models.Booking) map[string]string {
	return map[string]string{
		"bookingId": b.ID,
		"serviceId": b.ServiceID,
		"start":     b.Start.UTC().Format(time.RFC3339),
	}
}
