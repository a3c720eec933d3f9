package list_providers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/providers"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgUnauthorized = "токен отклонён API салона"
)

type Handler struct {
	service ProviderService
	logger  Logger
}

func NewHandler(service ProviderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	creds, ok := middleware.GetCredentials(r.Context())
	if !ok {
		h.logger.Warn("GET /providers - Missing credentials")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	list, err := h.service.List(r.Context(), creds)
	if err != nil {
		switch {
		case errors.Is(err, providers.ErrUnauthorized):
			h.logger.Warn("GET /providers - Unauthorized")
			handlers.RespondUnauthorized(w, msgUnauthorized)
		default:
			h.logger.Error("GET /providers - Failed to list providers: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers - Providers listed: count=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
