package deviceRepo

import (
	"context"

	"slotify/models"
)

// DeviceRepository stores push notification registrations per account.
type DeviceRepository interface {
	Upsert(ctx context.Context, device *models.Device) error
	ListByAccount(ctx context.Context, accountID string) ([]models.Device, error)
	Delete(ctx context.Context, accountID, deviceID string) error
}
