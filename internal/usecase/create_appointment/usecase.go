package create_appointment

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/sessions"
)

const (
	outcomeConfirmed = "confirmed"
	outcomeFailed    = "failed"
)

// UseCase use case создания записи по текущему выбору сессии
type UseCase struct {
	registry SessionRegistry
	client   SalonAPIClient
	repo     ConfirmationRepository
	location *time.Location
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case. location = часовой пояс пользователя, nil = time.Local
func NewUseCase(
	registry SessionRegistry,
	client SalonAPIClient,
	repo ConfirmationRepository,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		registry: registry,
		client:   client,
		repo:     repo,
		location: location,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute отправляет один запрос на создание записи. Повторов нет.
// При ошибке возвращает *Failure, выбор в сессии не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: session=%s", req.SessionID)

	session, err := uc.registry.Get(req.SessionID, req.Credentials)
	if err != nil {
		uc.logger.Warn("CreateAppointment: session=%s not found", req.SessionID)
		return nil, ErrSessionNotFound
	}

	// 1. Переводим сессию в submitting (защита от двойного нажатия)
	selection, err := session.BeginSubmit()
	if err != nil {
		uc.logger.Warn("CreateAppointment: session=%s cannot submit: %v", req.SessionID, err)
		switch {
		case errors.Is(err, sessions.ErrSubmitInProgress):
			return nil, ErrSubmitInProgress
		case errors.Is(err, sessions.ErrSessionClosed):
			return nil, ErrSessionClosed
		default:
			return nil, err
		}
	}

	// 2. Без выбранного часа запрос не отправляем
	if !selection.HasHour() {
		session.AbortSubmit()
		uc.logger.Warn("CreateAppointment: session=%s hour is not selected", req.SessionID)
		return nil, ErrHourNotSelected
	}

	// 3. Собираем время записи и отправляем
	date := BuildTimestamp(selection.Date, *selection.Hour, uc.location)

	appointment, err := uc.client.CreateAppointment(ctx, session.Credentials(), selection.ProviderID, date)
	if err != nil {
		session.FailSubmit()
		uc.observe(outcomeFailed)
		uc.logger.Error("CreateAppointment: session=%s provider=%s date=%s failed: %v",
			req.SessionID, selection.ProviderID, date.Format(time.RFC3339), err)
		return nil, newFailure(err)
	}

	record := &domain.AppointmentRecord{
		ID:         appointment.ID,
		ProviderID: selection.ProviderID,
		Date:       date,
		CreatedAt:  appointment.CreatedAt,
		OwnerKey:   session.Credentials().OwnerKey(),
	}

	// 4. Сохраняем подтверждение. Запись в API уже создана, поэтому ошибка хранилища не отменяет успех
	if saved, err := uc.repo.Create(ctx, session.ID(), record); err != nil {
		uc.logger.Error("CreateAppointment: session=%s failed to store confirmation: %v", req.SessionID, err)
	} else {
		record = saved
	}

	session.CompleteSubmit(record)
	uc.observe(outcomeConfirmed)

	uc.logger.Info("CreateAppointment: session=%s appointment=%s provider=%s date=%s confirmed",
		req.SessionID, record.ID, record.ProviderID, record.Date.Format(time.RFC3339))

	return &Response{Record: record}, nil
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveSubmission(outcome)
	}
}
