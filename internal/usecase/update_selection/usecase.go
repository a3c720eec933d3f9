package update_selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/sessions"
)

// UseCase use case изменения выбора на экране записи
type UseCase struct {
	registry  SessionRegistry
	refresher Refresher
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(registry SessionRegistry, refresher Refresher, logger Logger) *UseCase {
	return &UseCase{
		registry:  registry,
		refresher: refresher,
		logger:    logger,
	}
}

// SelectProvider меняет мастера и перезагружает слоты
func (uc *UseCase) SelectProvider(ctx context.Context, req *SelectProviderRequest) (*sessions.View, error) {
	uc.logger.Info("SelectProvider: session=%s provider=%s", req.SessionID, req.ProviderID)

	session, err := uc.getSession(req.SessionID, req.Credentials)
	if err != nil {
		return nil, err
	}

	ticket, err := session.SelectProvider(req.ProviderID)
	if err != nil {
		uc.logger.Warn("SelectProvider: session=%s rejected: %v", req.SessionID, err)
		return nil, mapSessionError(err)
	}

	uc.refresher.Refresh(ctx, session, ticket)

	view := session.View()
	return &view, nil
}

// SelectDate меняет дату и перезагружает слоты
func (uc *UseCase) SelectDate(ctx context.Context, req *SelectDateRequest) (*sessions.View, error) {
	uc.logger.Info("SelectDate: session=%s date=%s", req.SessionID, req.Date.Format(domain.DateFormat))

	session, err := uc.getSession(req.SessionID, req.Credentials)
	if err != nil {
		return nil, err
	}

	ticket, err := session.SelectDate(req.Date)
	if err != nil {
		uc.logger.Warn("SelectDate: session=%s rejected: %v", req.SessionID, err)
		return nil, mapSessionError(err)
	}

	uc.refresher.Refresh(ctx, session, ticket)

	view := session.View()
	return &view, nil
}

// SelectHour меняет час. Слоты не перезагружаются
func (uc *UseCase) SelectHour(_ context.Context, req *SelectHourRequest) (*sessions.View, error) {
	uc.logger.Info("SelectHour: session=%s hour=%d", req.SessionID, req.Hour)

	session, err := uc.getSession(req.SessionID, req.Credentials)
	if err != nil {
		return nil, err
	}

	if err := session.SelectHour(req.Hour); err != nil {
		uc.logger.Warn("SelectHour: session=%s rejected: %v", req.SessionID, err)
		return nil, mapSessionError(err)
	}

	view := session.View()
	return &view, nil
}

// View возвращает текущее состояние экрана
func (uc *UseCase) View(_ context.Context, sessionID string, creds domain.Credentials) (*sessions.View, error) {
	session, err := uc.getSession(sessionID, creds)
	if err != nil {
		return nil, err
	}

	view := session.View()
	return &view, nil
}

func (uc *UseCase) getSession(id string, creds domain.Credentials) (*sessions.Session, error) {
	session, err := uc.registry.Get(id, creds)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			uc.logger.Warn("UpdateSelection: session=%s not found", id)
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return session, nil
}

func mapSessionError(err error) error {
	switch {
	case errors.Is(err, sessions.ErrSessionClosed):
		return ErrSessionClosed
	case errors.Is(err, sessions.ErrSubmitInProgress):
		return ErrSubmitInProgress
	case errors.Is(err, sessions.ErrInvalidHour), errors.Is(err, sessions.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return err
	}
}
