package catalogRepo

import (
	"context"

	"slotify/models"
)

// ServiceCatalogRepository is the service directory: existence, active flag,
// duration, and owning provider for each published service.
type ServiceCatalogRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	// GetByID returns (nil, nil) when no service carries the id.
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetByProvider(ctx context.Context, providerID string) ([]models.Service, error)
	Update(ctx context.Context, svc *models.Service) error
	SetActive(ctx context.Context, id string, active bool) error
}
