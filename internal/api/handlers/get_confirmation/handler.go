package get_confirmation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/confirmations"
)

const (
	msgNotFound     = "запись не найдена"
	msgMissingToken = "отсутствует токен авторизации"
)

type Handler struct {
	service ConfirmationService
	logger  Logger
}

func NewHandler(service ConfirmationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/confirmation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	creds, ok := middleware.GetCredentials(r.Context())
	if !ok {
		h.logger.Warn("GET /sessions/{id}/confirmation - Missing credentials")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	record, err := h.service.Get(r.Context(), sessionID, creds)
	if err != nil {
		switch {
		case errors.Is(err, confirmations.ErrConfirmationNotFound):
			h.logger.Warn("GET /sessions/{id}/confirmation - Not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("GET /sessions/{id}/confirmation - Failed to get confirmation: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromRecord(record))
}
