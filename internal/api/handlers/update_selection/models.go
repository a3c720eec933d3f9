package update_selection

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	updateSelection "github.com/m04kA/SMC-SalonBookingService/internal/usecase/update_selection"
)

var errHourRequired = errors.New("hour is required")

// SelectProviderRequest HTTP request model
type SelectProviderRequest struct {
	ProviderID string `json:"providerId"`
}

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"` // "2024-05-10"
}

// SelectHourRequest HTTP request model. Hour указатель, чтобы отличить 0 от отсутствия поля
type SelectHourRequest struct {
	Hour *int `json:"hour"`
}

func (r *SelectProviderRequest) ToUseCaseRequest(sessionID string, creds domain.Credentials) *updateSelection.SelectProviderRequest {
	return &updateSelection.SelectProviderRequest{
		SessionID:   sessionID,
		Credentials: creds,
		ProviderID:  r.ProviderID,
	}
}

// ToUseCaseRequest парсит дату как календарный день в часовом поясе пользователя
func (r *SelectDateRequest) ToUseCaseRequest(sessionID string, creds domain.Credentials, loc *time.Location) (*updateSelection.SelectDateRequest, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, loc)
	if err != nil {
		return nil, err
	}
	return &updateSelection.SelectDateRequest{
		SessionID:   sessionID,
		Credentials: creds,
		Date:        date,
	}, nil
}

func (r *SelectHourRequest) ToUseCaseRequest(sessionID string, creds domain.Credentials) (*updateSelection.SelectHourRequest, error) {
	if r.Hour == nil {
		return nil, errHourRequired
	}
	return &updateSelection.SelectHourRequest{
		SessionID:   sessionID,
		Credentials: creds,
		Hour:        *r.Hour,
	}, nil
}
