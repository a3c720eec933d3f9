package handlers

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/sessions"
)

// SessionViewResponse состояние экрана записи
type SessionViewResponse struct {
	SessionID          string                `json:"sessionId"`
	State              string                `json:"state"`
	ProviderID         string                `json:"providerId"`
	Date               string                `json:"date"`
	Hour               *int                  `json:"hour"`
	Providers          []domain.Provider     `json:"providers"`
	AvailabilityStatus string                `json:"availabilityStatus"`
	Morning            []domain.SlotView     `json:"morning"`
	Afternoon          []domain.SlotView     `json:"afternoon"`
	Confirmation       *ConfirmationResponse `json:"confirmation,omitempty"`
}

// ConfirmationResponse данные экрана подтверждения
type ConfirmationResponse struct {
	AppointmentID string `json:"appointmentId"`
	ProviderID    string `json:"providerId"`
	Date          string `json:"date"`
	DateMillis    int64  `json:"dateMillis"`
}

// FromSessionView конвертирует снимок сессии в HTTP ответ
func FromSessionView(view *sessions.View) *SessionViewResponse {
	resp := &SessionViewResponse{
		SessionID:          view.SessionID,
		State:              string(view.State),
		ProviderID:         view.Selection.ProviderID,
		Date:               view.Selection.Date.Format(domain.DateFormat),
		Hour:               view.Selection.Hour,
		Providers:          view.Providers,
		AvailabilityStatus: string(view.AvailabilityStatus),
		Morning:            view.Morning,
		Afternoon:          view.Afternoon,
	}
	if view.Confirmation != nil {
		resp.Confirmation = FromRecord(view.Confirmation)
	}
	return resp
}

// FromRecord конвертирует созданную запись в HTTP ответ
func FromRecord(record *domain.AppointmentRecord) *ConfirmationResponse {
	return &ConfirmationResponse{
		AppointmentID: record.ID,
		ProviderID:    record.ProviderID,
		Date:          record.Date.Format(time.RFC3339),
		DateMillis:    record.DateMillis(),
	}
}
