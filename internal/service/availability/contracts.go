package availability

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// SalonAPIClient интерфейс клиента API салона
type SalonAPIClient interface {
	DayAvailability(ctx context.Context, creds domain.Credentials, providerID string, year, month, day int) ([]domain.AvailabilitySlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
