package open_session

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-SalonBookingService/internal/service/sessions"
)

// UseCase use case открытия экрана записи
type UseCase struct {
	registry  SessionRegistry
	providers ProviderService
	refresher Refresher
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	registry SessionRegistry,
	providers ProviderService,
	refresher Refresher,
	logger Logger,
) *UseCase {
	return &UseCase{
		registry:  registry,
		providers: providers,
		refresher: refresher,
		logger:    logger,
	}
}

// Execute открывает сессию и загружает список мастеров и слоты на сегодня.
// Два запроса независимы и выполняются параллельно, порядок завершения не важен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*sessions.View, error) {
	if req.ProviderID == "" {
		uc.logger.Warn("OpenSession: provider id is empty")
		return nil, fmt.Errorf("%w: providerId is required", ErrInvalidInput)
	}

	session := uc.registry.Create(req.Credentials, req.ProviderID)
	uc.logger.Info("OpenSession: session=%s provider=%s", session.ID(), req.ProviderID)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		providers, err := uc.providers.List(ctx, req.Credentials)
		if err != nil {
			// Без списка мастеров экран остаётся рабочим
			uc.logger.Warn("OpenSession: session=%s failed to load providers: %v", session.ID(), err)
			return
		}
		session.SetProviders(providers)
	}()

	go func() {
		defer wg.Done()
		uc.refresher.Refresh(ctx, session, session.CurrentTicket())
	}()

	wg.Wait()

	view := session.View()
	return &view, nil
}
