package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "reminder:booking"

// ReminderPayload identifies the booking a scheduled reminder refers to.
// The worker refetches the booking when the task fires, so the payload
// carries only the id; a booking cancelled in the meantime produces no push.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
}

func NewReminderTask(bookingID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ReminderPayload{BookingID: bookingID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
