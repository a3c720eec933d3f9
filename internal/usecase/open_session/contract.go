package open_session

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/sessions"
)

// SessionRegistry интерфейс реестра сессий
type SessionRegistry interface {
	Create(creds domain.Credentials, providerID string) *sessions.Session
}

// ProviderService интерфейс сервиса мастеров
type ProviderService interface {
	List(ctx context.Context, creds domain.Credentials) ([]domain.Provider, error)
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
