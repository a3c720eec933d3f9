package update_profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/integrations/salonapi"
)

// UseCase use case редактирования профиля пользователя
type UseCase struct {
	client SalonAPIClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client SalonAPIClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute проверяет форму и отправляет её в API
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.User, error) {
	if verr := validateProfile(req.Profile); verr != nil {
		uc.logger.Warn("UpdateProfile: validation failed: %v", verr)
		return nil, verr
	}

	payload := buildPayload(req.Profile)

	user, err := uc.client.UpdateProfile(ctx, req.Credentials, payload)
	if err != nil {
		uc.logger.Error("UpdateProfile: api call failed: %v", err)
		switch {
		case errors.Is(err, salonapi.ErrUnauthorized):
			return nil, ErrUnauthorized
		case errors.Is(err, salonapi.ErrValidation):
			return nil, fmt.Errorf("%w: %v", ErrRejected, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("UpdateProfile: user=%s updated, password changed=%t", user.ID, req.Profile.ChangesPassword())
	return user, nil
}

// buildPayload без старого пароля отправляются только имя и email
func buildPayload(p domain.ProfileUpdate) salonapi.ProfileRequest {
	payload := salonapi.ProfileRequest{
		Name:  strings.TrimSpace(p.Name),
		Email: strings.TrimSpace(p.Email),
	}
	if p.ChangesPassword() {
		payload.OldPassword = p.OldPassword
		payload.Password = p.Password
		payload.PasswordConfirmation = p.PasswordConfirmation
	}
	return payload
}
