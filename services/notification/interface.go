package notification

import (
	"context"

	"slotify/models"

	"github.com/hibiken/asynq"
)

// NotificationService publishes booking lifecycle pushes. Every method is
// fire-and-forget: failures are logged and swallowed so a broken push
// pipeline can never fail the booking operation that triggered it.
type NotificationService interface {
	NotifyCreated(ctx context.Context, b models.Booking)
	NotifyConfirmed(ctx context.Context, b models.Booking)
	NotifyDeclined(ctx context.Context, b models.Booking)
	NotifyCancelled(ctx context.Context, b models.Booking, cancelledBy string)
	NotifyRescheduled(ctx context.Context, b models.Booking)
	ScheduleReminder(ctx context.Context, b models.Booking)
}

// DefaultNotificationService hands notifications to the task queue; the
// worker resolves device tokens and performs the FCM sends.
type DefaultNotificationService struct {
	AsynqClient *asynq.Client
}
