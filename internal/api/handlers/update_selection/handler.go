package update_selection

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	updateSelection "github.com/m04kA/SMC-SalonBookingService/internal/usecase/update_selection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidHour        = "час должен быть в диапазоне 0..23"
	msgInvalidInput       = "некорректные данные выбора (час должен быть в диапазоне 0..23)"
	msgSessionNotFound    = "сессия не найдена"
	msgSessionClosed      = "запись уже создана, выбор изменить нельзя"
	msgSubmitInProgress   = "запись создаётся, дождитесь ответа"
	msgMissingToken       = "отсутствует токен авторизации"
)

// Handler изменение мастера, даты и часа на экране записи
type Handler struct {
	useCase  UpdateSelectionUseCase
	location *time.Location
	logger   Logger
}

// NewHandler location = часовой пояс, в котором разбирается дата из запроса
func NewHandler(useCase UpdateSelectionUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// HandleProvider PUT /api/v1/sessions/{sessionId}/provider
func (h *Handler) HandleProvider(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	creds, ok := middleware.GetCredentials(r.Context())
	if !ok {
		h.logger.Warn("PUT /sessions/{id}/provider - Missing credentials")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	var req SelectProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/provider - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.useCase.SelectProvider(r.Context(), req.ToUseCaseRequest(sessionID, creds))
	if err != nil {
		h.respondError(w, "PUT /sessions/{id}/provider", sessionID, err)
		return
	}

	h.logger.Info("PUT /sessions/{id}/provider - Provider selected: session_id=%s, provider_id=%s, availability=%s",
		sessionID, req.ProviderID, view.AvailabilityStatus)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionView(view))
}

// HandleDate PUT /api/v1/sessions/{sessionId}/date
func (h *Handler) HandleDate(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	creds, ok := middleware.GetCredentials(r.Context())
	if !ok {
		h.logger.Warn("PUT /sessions/{id}/date - Missing credentials")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID, creds, h.location)
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	view, err := h.useCase.SelectDate(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, "PUT /sessions/{id}/date", sessionID, err)
		return
	}

	h.logger.Info("PUT /sessions/{id}/date - Date selected: session_id=%s, date=%s, availability=%s",
		sessionID, req.Date, view.AvailabilityStatus)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionView(view))
}

// HandleHour PUT /api/v1/sessions/{sessionId}/hour
func (h *Handler) HandleHour(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	creds, ok := middleware.GetCredentials(r.Context())
	if !ok {
		h.logger.Warn("PUT /sessions/{id}/hour - Missing credentials")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	var req SelectHourRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/hour - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID, creds)
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/hour - %v", err)
		handlers.RespondBadRequest(w, msgInvalidHour)
		return
	}

	view, err := h.useCase.SelectHour(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, "PUT /sessions/{id}/hour", sessionID, err)
		return
	}

	h.logger.Info("PUT /sessions/{id}/hour - Hour selected: session_id=%s, hour=%d", sessionID, useCaseReq.Hour)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionView(view))
}

func (h *Handler) respondError(w http.ResponseWriter, route, sessionID string, err error) {
	switch {
	case errors.Is(err, updateSelection.ErrSessionNotFound):
		h.logger.Warn("%s - Session not found: session_id=%s", route, sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, updateSelection.ErrSessionClosed):
		h.logger.Warn("%s - Session closed: session_id=%s", route, sessionID)
		handlers.RespondConflict(w, msgSessionClosed)

	case errors.Is(err, updateSelection.ErrSubmitInProgress):
		h.logger.Warn("%s - Submission in progress: session_id=%s", route, sessionID)
		handlers.RespondConflict(w, msgSubmitInProgress)

	case errors.Is(err, updateSelection.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: session_id=%s, error=%v", route, sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed to update selection: session_id=%s, error=%v", route, sessionID, err)
		handlers.RespondInternalError(w)
	}
}
