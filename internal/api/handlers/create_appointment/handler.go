package create_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-SalonBookingService/internal/usecase/create_appointment"
)

const (
	msgSessionNotFound  = "сессия не найдена"
	msgSessionClosed    = "запись в этой сессии уже создана"
	msgSubmitInProgress = "запись уже создаётся"
	msgHourNotSelected  = "не выбран час записи"
	msgMissingToken     = "отсутствует токен авторизации"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	creds, ok := middleware.GetCredentials(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/{id}/appointment - Missing credentials")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createAppointment.Request{
		SessionID:   sessionID,
		Credentials: creds,
	})
	if err != nil {
		var failure *createAppointment.Failure
		switch {
		case errors.As(err, &failure):
			h.logger.Warn("POST /sessions/{id}/appointment - Submission failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondJSON(w, http.StatusBadGateway, handlers.MessageResponse{Message: failure.Message})

		case errors.Is(err, createAppointment.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/appointment - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, createAppointment.ErrSubmitInProgress):
			h.logger.Warn("POST /sessions/{id}/appointment - Submission in progress: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSubmitInProgress)

		case errors.Is(err, createAppointment.ErrSessionClosed):
			h.logger.Warn("POST /sessions/{id}/appointment - Session closed: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSessionClosed)

		case errors.Is(err, createAppointment.ErrHourNotSelected):
			h.logger.Warn("POST /sessions/{id}/appointment - Hour not selected: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgHourNotSelected)

		default:
			h.logger.Error("POST /sessions/{id}/appointment - Failed to create appointment: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/appointment - Appointment created: session_id=%s, appointment_id=%s",
		sessionID, result.Record.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromRecord(result.Record))
}
