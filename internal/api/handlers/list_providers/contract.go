package list_providers

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

type ProviderService interface {
	List(ctx context.Context, creds domain.Credentials) ([]domain.Provider, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
