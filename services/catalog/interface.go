package catalog

import (
	"context"

	catalogRepo "slotify/database/repository/catalog"
	"slotify/models"
)

// CatalogService manages the services providers publish: the directory the
// availability engine and booking lifecycle read durations, active flags
// and ownership from.
type CatalogService interface {
	CreateService(ctx context.Context, actorID string, req models.CreateServiceRequest) (*models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Service, error)
	UpdateService(ctx context.Context, actorID, id string, req models.UpdateServiceRequest) (*models.Service, error)
	SetActive(ctx context.Context, actorID, id string, active bool) (*models.Service, error)
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo catalogRepo.ServiceCatalogRepository
}
