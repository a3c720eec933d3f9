package get_confirmation

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

type ConfirmationService interface {
	Get(ctx context.Context, sessionID string, creds domain.Credentials) (*domain.AppointmentRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
