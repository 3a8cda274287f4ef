package models

import "time"

// Service is a bookable offering published by a provider. Every booking
// for a service has exactly the service's fixed duration.
type Service struct {
	ID              string    `bson:"id" json:"id"`                           // unique service identifier (UUID)
	ProviderID      string    `bson:"providerId" json:"providerId"`           // account that owns the service
	Name            string    `bson:"name" json:"name"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"` // fixed appointment length, read at validation time
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateServiceRequest is the payload for publishing a new service.
type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
}

// UpdateServiceRequest renames a service or changes its duration.
type UpdateServiceRequest struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

// SetServiceActiveRequest toggles whether the service accepts new bookings.
type SetServiceActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
