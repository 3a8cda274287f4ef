package catalog

import (
	"context"
	"fmt"
	"strings"

	"slotify/models"
	"slotify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Appointments are minute-granular, so a day bounds how long one can be.
const maxDurationMinutes = 24 * 60

// CreateService publishes a new service owned by the acting account. It
// starts active with no schedule; no slots open up until weekly hours or an
// override are set.
func (s *DefaultCatalogService) CreateService(ctx context.Context, actorID string, req models.CreateServiceRequest) (*models.Service, error) {
	if actorID == "" {
		return nil, NewInvalidArgument("actor id is required")
	}
	if err := validateServiceFields(req.Name, req.DurationMinutes); err != nil {
		return nil, err
	}

	svc := &models.Service{
		ID:              uuid.New().String(),
		ProviderID:      actorID,
		Name:            strings.TrimSpace(req.Name),
		DurationMinutes: req.DurationMinutes,
		Active:          true,
	}
	if err := s.Repo.Create(ctx, svc); err != nil {
		utils.GetLogger().Error("Failed to create service", zap.Error(err), zap.String("providerId", actorID))
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	utils.GetLogger().Info("Service published",
		zap.String("serviceId", svc.ID), zap.String("providerId", actorID))
	return svc, nil
}

// GetService fetches one service by id.
func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	if id == "" {
		return nil, NewInvalidArgument("service id is required")
	}

	svc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch service", zap.Error(err), zap.String("serviceId", id))
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	if svc == nil {
		return nil, NewNotFound(id)
	}
	return svc, nil
}

// ListByProvider returns every service a provider has published.
func (s *DefaultCatalogService) ListByProvider(ctx context.Context, providerID string) ([]models.Service, error) {
	if providerID == "" {
		return nil, NewInvalidArgument("provider id is required")
	}

	services, err := s.Repo.GetByProvider(ctx, providerID)
	if err != nil {
		utils.GetLogger().Error("Failed to list services", zap.Error(err), zap.String("providerId", providerID))
		return nil, fmt.Errorf("failed to list services for provider %s: %w", providerID, err)
	}
	return services, nil
}

// UpdateService renames a service or changes its duration. Owner only.
// Existing bookings keep their original start; a duration change affects
// how their end, and every future availability check, is computed.
func (s *DefaultCatalogService) UpdateService(ctx context.Context, actorID, id string, req models.UpdateServiceRequest) (*models.Service, error) {
	svc, err := s.ownedService(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	if err := validateServiceFields(req.Name, req.DurationMinutes); err != nil {
		return nil, err
	}

	svc.Name = strings.TrimSpace(req.Name)
	svc.DurationMinutes = req.DurationMinutes
	if err := s.Repo.Update(ctx, svc); err != nil {
		utils.GetLogger().Error("Failed to update service", zap.Error(err), zap.String("serviceId", id))
		return nil, fmt.Errorf("failed to update service %s: %w", id, err)
	}
	return svc, nil
}

// SetActive toggles whether the service accepts new bookings. Owner only.
// Deactivation blocks new creates but leaves existing bookings and their
// lifecycle untouched.
func (s *DefaultCatalogService) SetActive(ctx context.Context, actorID, id string, active bool) (*models.Service, error) {
	svc, err := s.ownedService(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.SetActive(ctx, id, active); err != nil {
		utils.GetLogger().Error("Failed to set service active flag", zap.Error(err), zap.String("serviceId", id))
		return nil, fmt.Errorf("failed to update service %s: %w", id, err)
	}
	svc.Active = active

	utils.GetLogger().Info("Service active flag changed",
		zap.String("serviceId", id), zap.Bool("active", active))
	return svc, nil
}

// ownedService fetches a service and verifies the actor owns it.
func (s *DefaultCatalogService) ownedService(ctx context.Context, actorID, id string) (*models.Service, error) {
	if actorID == "" {
		return nil, NewInvalidArgument("actor id is required")
	}
	if id == "" {
		return nil, NewInvalidArgument("service id is required")
	}

	svc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch service", zap.Error(err), zap.String("serviceId", id))
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	if svc == nil {
		return nil, NewNotFound(id)
	}
	if svc.ProviderID != actorID {
		return nil, NewUnauthorized("only the owning provider may modify a service")
	}
	return svc, nil
}

func validateServiceFields(name string, durationMinutes int) error {
	if strings.TrimSpace(name) == "" {
		return NewInvalidArgument("name is required")
	}
	if durationMinutes <= 0 {
		return NewInvalidArgument("durationMinutes must be positive")
	}
	if durationMinutes > maxDurationMinutes {
		return NewInvalidArgument("durationMinutes must not exceed one day")
	}
	return nil
}
