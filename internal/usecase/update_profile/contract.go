package update_profile

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/integrations/salonapi"
)

// SalonAPIClient интерфейс для обновления профиля
type SalonAPIClient interface {
	UpdateProfile(ctx context.Context, creds domain.Credentials, req salonapi.ProfileRequest) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
