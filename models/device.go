package models

import "time"

// Device is a push notification registration for an account. One account
// may hold several devices; stale tokens are replaced on re-registration.
type Device struct {
	DeviceID  string    `bson:"deviceId" json:"deviceId"`
	AccountID string    `bson:"accountId" json:"accountId"`
	Token     string    `bson:"token" json:"-"` // FCM registration token
	Platform  string    `bson:"platform" json:"platform"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RegisterDeviceRequest registers or refreshes a device push token.
type RegisterDeviceRequest struct {
	DeviceID string `json:"deviceId" binding:"required"`
	Token    string `json:"token" binding:"required"`
	Platform string `json:"platform"`
}
