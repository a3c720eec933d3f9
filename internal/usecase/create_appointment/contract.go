package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/sessions"
)

// SessionRegistry интерфейс реестра сессий
type SessionRegistry interface {
	Get(id string, creds domain.Credentials) (*sessions.Session, error)
}

// SalonAPIClient интерфейс клиента API салона
type SalonAPIClient interface {
	CreateAppointment(ctx context.Context, creds domain.Credentials, providerID string, date time.Time) (*salonapi.Appointment, error)
}

// ConfirmationRepository интерфейс хранилища подтверждённых записей
type ConfirmationRepository interface {
	Create(ctx context.Context, sessionID string, record *domain.AppointmentRecord) (*domain.AppointmentRecord, error)
}

// Metrics интерфейс для учёта результатов отправки
type Metrics interface {
	ObserveSubmission(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
