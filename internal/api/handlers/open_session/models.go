package open_session

import (
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	openSession "github.com/m04kA/SMC-SalonBookingService/internal/usecase/open_session"
)

// OpenSessionRequest HTTP request model
type OpenSessionRequest struct {
	ProviderID string `json:"providerId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *OpenSessionRequest) ToUseCaseRequest(creds domain.Credentials) *openSession.Request {
	return &openSession.Request{
		Credentials: creds,
		ProviderID:  r.ProviderID,
	}
}
