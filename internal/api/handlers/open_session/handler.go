package open_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	openSession "github.com/m04kA/SMC-SalonBookingService/internal/usecase/open_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingToken       = "отсутствует токен авторизации"
	msgInvalidProvider    = "не указан мастер"
)

type Handler struct {
	useCase OpenSessionUseCase
	logger  Logger
}

func NewHandler(useCase OpenSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	creds, ok := middleware.GetCredentials(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions - Missing credentials")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	var req OpenSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(creds))
	if err != nil {
		switch {
		case errors.Is(err, openSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProvider)
		default:
			h.logger.Error("POST /sessions - Failed to open session: provider_id=%s, error=%v", req.ProviderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session opened: session_id=%s, provider_id=%s", view.SessionID, req.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSessionView(view))
}
