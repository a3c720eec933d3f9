package update_profile

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	updateProfile "github.com/m04kA/SMC-SalonBookingService/internal/usecase/update_profile"
)

type UpdateProfileUseCase interface {
	Execute(ctx context.Context, req *updateProfile.Request) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
