package update_profile

import (
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	updateProfile "github.com/m04kA/SMC-SalonBookingService/internal/usecase/update_profile"
)

// UpdateProfileRequest HTTP request model
type UpdateProfileRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	OldPassword          string `json:"oldPassword,omitempty"`
	Password             string `json:"password,omitempty"`
	PasswordConfirmation string `json:"passwordConfirmation,omitempty"`
}

// ValidationErrorResponse ошибки формы по полям
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func (r *UpdateProfileRequest) ToUseCaseRequest(creds domain.Credentials) *updateProfile.Request {
	return &updateProfile.Request{
		Credentials: creds,
		Profile: domain.ProfileUpdate{
			Name:                 r.Name,
			Email:                r.Email,
			OldPassword:          r.OldPassword,
			Password:             r.Password,
			PasswordConfirmation: r.PasswordConfirmation,
		},
	}
}
