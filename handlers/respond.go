package handlers

import (
	"errors"
	"net/http"

	"slotify/services/availability"
	"slotify/services/booking"
	"slotify/utils"

	"github.com/gin-gonic/gin"
)

// coded is satisfied by the domain error types of the booking, catalog and
// schedule services. They share one code vocabulary.
type coded interface {
	ErrorCode() string
}

// domainStatus maps a domain error code to its HTTP status. The second
// return is false for infrastructure errors, which surface as 500 so
// clients can tell a business rejection from a broken backend.
func domainStatus(err error) (int, bool) {
	if errors.Is(err, availability.ErrServiceNotFound) {
		return http.StatusNotFound, true
	}

	var ce coded
	if !errors.As(err, &ce) {
		return 0, false
	}
	switch ce.ErrorCode() {
	case booking.CodeNotFound:
		return http.StatusNotFound, true
	case booking.CodeUnauthorized:
		return http.StatusForbidden, true
	case booking.CodeInvalidState, booking.CodeSlotUnavailable:
		return http.StatusConflict, true
	case booking.CodeServiceNotActive:
		return http.StatusUnprocessableEntity, true
	case booking.CodeInvalidArgument:
		return http.StatusBadRequest, true
	}
	return 0, false
}

// respondError sends a failed operation to the client: mapped status for
// domain rejections, 500 for everything else.
func respondError(c *gin.Context, message string, err error) {
	status, ok := domainStatus(err)
	if !ok {
		status = http.StatusInternalServerError
	}
	utils.JSONError(c, status, message, err.Error())
}

// actorID returns the authenticated account id set by the auth middleware.
func actorID(c *gin.Context) (string, bool) {
	value, exists := c.Get("accountID")
	if !exists {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "missing account identity")
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "invalid account identity in context")
		return "", false
	}
	return id, true
}
