package booking

import (
	"fmt"

	"slotify/models"
)

// Action names a booking lifecycle operation requested by a caller.
type Action string

const (
	ActionConfirm     Action = "confirm"
	ActionDecline     Action = "decline"
	ActionCancel      Action = "cancel"
	ActionComplete    Action = "complete"
	ActionReschedule  Action = "reschedule"
	ActionUpdateNotes Action = "update notes"
)

type actorRule int

const (
	customerOnly actorRule = iota
	providerOnly
	customerOrProvider
)

// transitionRule is one row of the lifecycle table: who may request the
// action and from which statuses it is legal.
type transitionRule struct {
	actor actorRule
	from  []models.BookingStatus
}

// transitionRules is the single source of truth for the booking state
// machine. Pending and Confirmed are the live statuses; Declined, Cancelled
// and Completed are terminal and appear in no "from" set.
var transitionRules = map[Action]transitionRule{
	ActionConfirm:     {providerOnly, []models.BookingStatus{models.StatusPending}},
	ActionDecline:     {providerOnly, []models.BookingStatus{models.StatusPending}},
	ActionCancel:      {customerOrProvider, []models.BookingStatus{models.StatusPending, models.StatusConfirmed}},
	ActionComplete:    {providerOnly, []models.BookingStatus{models.StatusConfirmed}},
	ActionReschedule:  {customerOnly, []models.BookingStatus{models.StatusPending, models.StatusConfirmed}},
	ActionUpdateNotes: {customerOnly, []models.BookingStatus{models.StatusPending, models.StatusConfirmed}},
}

// authorize gates every lifecycle action: actor check first, then current
// status. Returns an Unauthorized or InvalidState Error, or nil.
func authorize(b *models.Booking, actorID string, action Action) error {
	rule, ok := transitionRules[action]
	if !ok {
		return NewInvalidArgument(fmt.Sprintf("unknown booking action %q", action))
	}

	switch rule.actor {
	case customerOnly:
		if actorID != b.CustomerID {
			return NewUnauthorized(fmt.Sprintf("only the booking's customer may %s", action))
		}
	case providerOnly:
		if actorID != b.ProviderID {
			return NewUnauthorized(fmt.Sprintf("only the service's provider may %s", action))
		}
	case customerOrProvider:
		if actorID != b.CustomerID && actorID != b.ProviderID {
			return NewUnauthorized(fmt.Sprintf("only the booking's customer or the service's provider may %s", action))
		}
	}

	if !statusIn(b.Status, rule.from) {
		return NewInvalidState(action, b.Status)
	}
	return nil
}

func statusIn(s models.BookingStatus, set []models.BookingStatus) bool {
	for _, allowed := range set {
		if s == allowed {
			return true
		}
	}
	return false
}
