package open_session

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/service/sessions"
	openSession "github.com/m04kA/SMC-SalonBookingService/internal/usecase/open_session"
)

type OpenSessionUseCase interface {
	Execute(ctx context.Context, req *openSession.Request) (*sessions.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
