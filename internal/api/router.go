package api

import (
	"net/http"

	"github.com/gorilla/mux"

	closeSessionHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/close_session"
	createAppointmentHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/create_appointment"
	getConfirmationHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_confirmation"
	getSessionHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_session"
	listProvidersHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/list_providers"
	openSessionHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/open_session"
	updateProfileHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/update_profile"
	updateSelectionHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/update_selection"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
)

// Handlers набор обработчиков API
type Handlers struct {
	ListProviders     *listProvidersHandler.Handler
	OpenSession       *openSessionHandler.Handler
	GetSession        *getSessionHandler.Handler
	UpdateSelection   *updateSelectionHandler.Handler
	CreateAppointment *createAppointmentHandler.Handler
	GetConfirmation   *getConfirmationHandler.Handler
	CloseSession      *closeSessionHandler.Handler
	UpdateProfile     *updateProfileHandler.Handler
}

// RouterOptions параметры роутера. Metrics = nil отключает HTTP метрики и /metrics
type RouterOptions struct {
	Metrics        middleware.HTTPMetrics
	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter регистрирует маршруты /api/v1. Все маршруты требуют токен
func NewRouter(h Handlers, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}
	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Главный экран ---
	api.HandleFunc("/providers", h.ListProviders.Handle).Methods(http.MethodGet)

	// --- Экран записи ---
	api.HandleFunc("/sessions", h.OpenSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", h.GetSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", h.CloseSession.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/provider", h.UpdateSelection.HandleProvider).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/date", h.UpdateSelection.HandleDate).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/hour", h.UpdateSelection.HandleHour).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/appointment", h.CreateAppointment.Handle).Methods(http.MethodPost)

	// --- Экран подтверждения ---
	api.HandleFunc("/sessions/{sessionId}/confirmation", h.GetConfirmation.Handle).Methods(http.MethodGet)

	// --- Профиль ---
	api.HandleFunc("/profile", h.UpdateProfile.Handle).Methods(http.MethodPut)

	return r
}
