package confirmations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/appointment"
)

// Service сервис экрана подтверждения записи
type Service struct {
	repo   ConfirmationRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса подтверждений
func NewService(repo ConfirmationRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Get возвращает запись, созданную в сессии. Запись другого владельца не отдаётся
func (s *Service) Get(ctx context.Context, sessionID string, creds domain.Credentials) (*domain.AppointmentRecord, error) {
	record, err := s.repo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrConfirmationNotFound) {
			s.logger.Warn("Confirmations: no confirmation for session=%s", sessionID)
			return nil, ErrConfirmationNotFound
		}
		s.logger.Error("Confirmations: repository error for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	if record.OwnerKey != creds.OwnerKey() {
		s.logger.Warn("Confirmations: session=%s requested with foreign credentials", sessionID)
		return nil, ErrConfirmationNotFound
	}
	return record, nil
}
