package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/integrations/salonapi"
)

// Service сервис списка мастеров (главный экран и экран записи)
type Service struct {
	client SalonAPIClient
	logger Logger
}

// NewService создает новый экземпляр сервиса мастеров
func NewService(client SalonAPIClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// List получает список мастеров
func (s *Service) List(ctx context.Context, creds domain.Credentials) ([]domain.Provider, error) {
	providers, err := s.client.ListProviders(ctx, creds)
	if err != nil {
		if errors.Is(err, salonapi.ErrUnauthorized) {
			s.logger.Warn("Providers: unauthorized")
			return nil, ErrUnauthorized
		}
		s.logger.Error("Providers: failed to list providers: %v", err)
		return nil, fmt.Errorf("%w: failed to list providers: %v", ErrInternal, err)
	}

	s.logger.Info("Providers: fetched %d providers", len(providers))
	return providers, nil
}
