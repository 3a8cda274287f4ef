package booking

import (
	"errors"
	"fmt"
	"time"

	"slotify/models"
)

// Stable codes for recoverable booking failures. Handlers translate them to
// HTTP statuses; storage and queue errors pass through untyped so callers can
// tell a business rejection from an infrastructure failure.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInvalidState     = "INVALID_STATE"
	CodeSlotUnavailable  = "SLOT_UNAVAILABLE"
	CodeServiceNotActive = "SERVICE_NOT_ACTIVE"
	CodeInvalidArgument  = "INVALID_ARGUMENT"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) ErrorCode() string {
	return e.Code
}

func NewNotFound(what, id string) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("%s %s not found", what, id)}
}

func NewUnauthorized(message string) *Error {
	return &Error{Code: CodeUnauthorized, Message: message}
}

// NewInvalidState names both the attempted action and the status that
// blocked it.
func NewInvalidState(action Action, current models.BookingStatus) *Error {
	return &Error{Code: CodeInvalidState, Message: fmt.Sprintf("cannot %s: booking is %s", action, current)}
}

// NewNotStarted rejects completing a booking whose start is still ahead.
func NewNotStarted(start time.Time) *Error {
	return &Error{Code: CodeInvalidState, Message: fmt.Sprintf("cannot complete: booking starts at %s", start.UTC().Format(time.RFC3339))}
}

func NewSlotUnavailable(start time.Time) *Error {
	return &Error{Code: CodeSlotUnavailable, Message: fmt.Sprintf("slot %s is not available", start.UTC().Format(time.RFC3339))}
}

func NewServiceNotActive(serviceID string) *Error {
	return &Error{Code: CodeServiceNotActive, Message: fmt.Sprintf("service %s is not accepting bookings", serviceID)}
}

func NewInvalidArgument(message string) *Error {
	return &Error{Code: CodeInvalidArgument, Message: message}
}

// IsCode reports whether err is a booking Error carrying the given code.
func IsCode(err error, code string) bool {
	var be *Error
	return errors.As(err, &be) && be.Code == code
}
