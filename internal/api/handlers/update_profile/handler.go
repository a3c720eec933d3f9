package update_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	updateProfile "github.com/m04kA/SMC-SalonBookingService/internal/usecase/update_profile"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingToken       = "отсутствует токен авторизации"
	msgValidationFailed   = "форма профиля заполнена некорректно"
	msgUnauthorized       = "токен отклонён API салона"
	msgRejected           = "API салона отклонил изменения профиля"
)

type Handler struct {
	useCase UpdateProfileUseCase
	logger  Logger
}

func NewHandler(useCase UpdateProfileUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	creds, ok := middleware.GetCredentials(r.Context())
	if !ok {
		h.logger.Warn("PUT /profile - Missing credentials")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(creds))
	if err != nil {
		var verr *updateProfile.ValidationError
		switch {
		case errors.As(err, &verr):
			h.logger.Warn("PUT /profile - Validation failed: %v", err)
			handlers.RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  msgValidationFailed,
				Fields: verr.Fields,
			})

		case errors.Is(err, updateProfile.ErrUnauthorized):
			h.logger.Warn("PUT /profile - Unauthorized")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, updateProfile.ErrRejected):
			h.logger.Warn("PUT /profile - Rejected by api: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgRejected)

		default:
			h.logger.Error("PUT /profile - Failed to update profile: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /profile - Profile updated: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
