package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// Store получает набор слотов для пары (мастер, день).
// Кэша нет: каждый вызов идёт в API
type Store struct {
	client   SalonAPIClient
	location *time.Location
	logger   Logger
}

// NewStore создает хранилище слотов. location задаёт часовой пояс календаря пользователя,
// nil = time.Local
func NewStore(client SalonAPIClient, location *time.Location, logger Logger) *Store {
	if location == nil {
		location = time.Local
	}
	return &Store{
		client:   client,
		location: location,
		logger:   logger,
	}
}

// Refresh запрашивает слоты мастера на календарный день date.
// При ошибке возвращает пустой (не nil) набор и ErrFetchFailed, решение показать ошибку
// остаётся за вызывающей стороной
func (s *Store) Refresh(ctx context.Context, creds domain.Credentials, providerID string, date time.Time) ([]domain.AvailabilitySlot, error) {
	if providerID == "" || date.IsZero() {
		return []domain.AvailabilitySlot{}, fmt.Errorf("%w: provider and date are required", ErrInvalidInput)
	}

	// Время суток и часовой пояс отбрасываются, в запрос идут только поля календаря
	year, month, day := date.In(s.location).Date()

	slots, err := s.client.DayAvailability(ctx, creds, providerID, year, int(month), day)
	if err != nil {
		s.logger.Warn("Availability: failed to fetch provider=%s date=%04d-%02d-%02d: %v",
			providerID, year, month, day, err)
		return []domain.AvailabilitySlot{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	s.logger.Info("Availability: fetched %d slots for provider=%s date=%04d-%02d-%02d",
		len(slots), providerID, year, month, day)

	if slots == nil {
		slots = []domain.AvailabilitySlot{}
	}
	return slots, nil
}
