package update_selection

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/sessions"
)

// SessionRegistry интерфейс реестра сессий
type SessionRegistry interface {
	Get(id string, creds domain.Credentials) (*sessions.Session, error)
}

// Refresher интерфейс обновления слотов сессии
type Refresher interface {
	Refresh(ctx context.Context, session *sessions.Session, ticket sessions.RefreshTicket)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
