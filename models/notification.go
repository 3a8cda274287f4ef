package models

// BookingEvent names the lifecycle change a notification reports.
type BookingEvent string

const (
	EventCreated     BookingEvent = "created"
	EventConfirmed   BookingEvent = "confirmed"
	EventDeclined    BookingEvent = "declined"
	EventCancelled   BookingEvent = "cancelled"
	EventRescheduled BookingEvent = "rescheduled"
)

// Notification is a push message addressed to one account.
type Notification struct {
	AccountID string            `json:"accountId"`
	Event     BookingEvent      `json:"event"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
}
