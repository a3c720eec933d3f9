package sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// AvailabilityStore интерфейс хранилища слотов
type AvailabilityStore interface {
	Refresh(ctx context.Context, creds domain.Credentials, providerID string, date time.Time) ([]domain.AvailabilitySlot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics интерфейс для учёта открытых сессий
type Metrics interface {
	SetActiveSessions(n int)
}

// RefreshMetrics интерфейс для учёта отброшенных устаревших обновлений
type RefreshMetrics interface {
	IncStaleRefresh()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
