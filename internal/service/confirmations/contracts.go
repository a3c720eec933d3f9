package confirmations

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// ConfirmationRepository интерфейс хранилища подтверждённых записей
type ConfirmationRepository interface {
	GetBySessionID(ctx context.Context, sessionID string) (*domain.AppointmentRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
