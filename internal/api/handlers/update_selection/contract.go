package update_selection

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/service/sessions"
	updateSelection "github.com/m04kA/SMC-SalonBookingService/internal/usecase/update_selection"
)

type UpdateSelectionUseCase interface {
	SelectProvider(ctx context.Context, req *updateSelection.SelectProviderRequest) (*sessions.View, error)
	SelectDate(ctx context.Context, req *updateSelection.SelectDateRequest) (*sessions.View, error)
	SelectHour(ctx context.Context, req *updateSelection.SelectHourRequest) (*sessions.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
