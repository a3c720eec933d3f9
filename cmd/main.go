package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-SalonBookingService/internal/api"
	closeSessionHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/close_session"
	createAppointmentHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/create_appointment"
	getConfirmationHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_confirmation"
	getSessionHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_session"
	listProvidersHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/list_providers"
	openSessionHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/open_session"
	updateProfileHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/update_profile"
	updateSelectionHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/update_selection"
	"github.com/m04kA/SMC-SalonBookingService/internal/config"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/appointment"
	salonAPIClient "github.com/m04kA/SMC-SalonBookingService/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/availability"
	confirmationsService "github.com/m04kA/SMC-SalonBookingService/internal/service/confirmations"
	providersService "github.com/m04kA/SMC-SalonBookingService/internal/service/providers"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/sessions"
	createAppointmentUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/create_appointment"
	openSessionUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/open_session"
	updateProfileUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/update_profile"
	updateSelectionUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/update_selection"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/metrics"
)

// confirmationStore хранилище подтверждений: PostgreSQL или память
type confirmationStore interface {
	Create(ctx context.Context, sessionID string, record *domain.AppointmentRecord) (*domain.AppointmentRecord, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.AppointmentRecord, error)
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonBookingService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище подтверждений
	var store confirmationStore
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		store = appointmentRepo.NewRepository(db)
	} else {
		log.Info("Database disabled, confirmations are kept in memory")
		store = appointmentRepo.NewMemoryRepository()
	}

	// Клиент API салона
	client := salonAPIClient.NewClient(
		cfg.SalonAPI.URL,
		time.Duration(cfg.SalonAPI.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	log.Info("Salon API client initialized (url=%s timeout=%ds)", cfg.SalonAPI.URL, cfg.SalonAPI.Timeout)

	// Сервисы
	location := time.Local
	availabilityStore := availability.NewStore(client, location, log)
	registry := sessions.NewRegistry(time.Duration(cfg.Sessions.TTL)*time.Second, metricsCollector, log)
	refresher := sessions.NewRefresher(availabilityStore, metricsCollector, log)
	providerSvc := providersService.NewService(client, log)
	confirmationSvc := confirmationsService.NewService(store, log)

	// Use cases
	openSessionUseCase := openSessionUC.NewUseCase(registry, providerSvc, refresher, log)
	updateSelectionUseCase := updateSelectionUC.NewUseCase(registry, refresher, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(registry, client, store, location, metricsCollector, log)
	updateProfileUseCase := updateProfileUC.NewUseCase(client, log)

	// Handlers и роутер
	handlers := api.Handlers{
		ListProviders:     listProvidersHandler.NewHandler(providerSvc, log),
		OpenSession:       openSessionHandler.NewHandler(openSessionUseCase, log),
		GetSession:        getSessionHandler.NewHandler(updateSelectionUseCase, log),
		UpdateSelection:   updateSelectionHandler.NewHandler(updateSelectionUseCase, location, log),
		CreateAppointment: createAppointmentHandler.NewHandler(createAppointmentUseCase, log),
		GetConfirmation:   getConfirmationHandler.NewHandler(confirmationSvc, log),
		CloseSession:      closeSessionHandler.NewHandler(registry, log),
		UpdateProfile:     updateProfileHandler.NewHandler(updateProfileUseCase, log),
	}

	opts := api.RouterOptions{}
	if cfg.Metrics.Enabled {
		opts.Metrics = metricsCollector
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandler = promhttp.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r := api.NewRouter(handlers, opts)

	// Удаление неактивных сессий
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go sweepSessions(sweepCtx, registry, time.Duration(cfg.Sessions.SweepInterval)*time.Second)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

func sweepSessions(ctx context.Context, registry *sessions.Registry, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			registry.Sweep()
		}
	}
}
