package get_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	updateSelection "github.com/m04kA/SMC-SalonBookingService/internal/usecase/update_selection"
)

const (
	msgSessionNotFound = "сессия не найдена"
	msgMissingToken    = "отсутствует токен авторизации"
)

type Handler struct {
	viewer SessionViewer
	logger Logger
}

func NewHandler(viewer SessionViewer, logger Logger) *Handler {
	return &Handler{
		viewer: viewer,
		logger: logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	creds, ok := middleware.GetCredentials(r.Context())
	if !ok {
		h.logger.Warn("GET /sessions/{id} - Missing credentials")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	view, err := h.viewer.View(r.Context(), sessionID, creds)
	if err != nil {
		switch {
		case errors.Is(err, updateSelection.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		default:
			h.logger.Error("GET /sessions/{id} - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionView(view))
}
