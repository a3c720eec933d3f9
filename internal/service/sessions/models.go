package sessions

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// RefreshTicket запрос на обновление слотов, выданный изменением мастера или даты.
// Результат принимается, только если Generation всё ещё текущий
type RefreshTicket struct {
	Generation uint64
	ProviderID string
	Date       time.Time
}

// View снимок сессии для экрана записи
type View struct {
	SessionID          string
	State              domain.SessionState
	Selection          domain.Selection
	Providers          []domain.Provider
	AvailabilityStatus domain.AvailabilityStatus
	Morning            []domain.SlotView
	Afternoon          []domain.SlotView
	Confirmation       *domain.AppointmentRecord
}
