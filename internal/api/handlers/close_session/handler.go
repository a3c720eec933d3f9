package close_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/sessions"
)

const (
	msgSessionNotFound = "сессия не найдена"
	msgMissingToken    = "отсутствует токен авторизации"
)

type Handler struct {
	registry SessionRegistry
	logger   Logger
}

func NewHandler(registry SessionRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}
// Уход с экрана: сессия и её незавершённые загрузки больше не нужны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	creds, ok := middleware.GetCredentials(r.Context())
	if !ok {
		h.logger.Warn("DELETE /sessions/{id} - Missing credentials")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	if err := h.registry.Delete(sessionID, creds); err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("DELETE /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		default:
			h.logger.Error("DELETE /sessions/{id} - Failed to close session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{id} - Session closed: session_id=%s", sessionID)
	handlers.RespondNoContent(w)
}
