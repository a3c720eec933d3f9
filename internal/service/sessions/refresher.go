package sessions

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-SalonBookingService/internal/service/availability"
)

// Refresher связывает изменения выбора с обновлением слотов: каждый билет,
// выданный SelectProvider/SelectDate, должен пройти через Refresh
type Refresher struct {
	store   AvailabilityStore
	metrics RefreshMetrics
	logger  Logger
}

// NewRefresher создает обработчик обновления слотов
func NewRefresher(store AvailabilityStore, metrics RefreshMetrics, logger Logger) *Refresher {
	return &Refresher{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// Refresh загружает слоты для билета и применяет их к сессии.
// Ошибка загрузки не возвращается: она отражается в AvailabilityStatus сессии
func (r *Refresher) Refresh(ctx context.Context, session *Session, ticket RefreshTicket) {
	result, err := r.store.Refresh(ctx, session.Credentials(), ticket.ProviderID, ticket.Date)
	if err != nil && !errors.Is(err, availability.ErrFetchFailed) && !errors.Is(err, availability.ErrInvalidInput) {
		r.logger.Error("Sessions: unexpected refresh error session=%s: %v", session.ID(), err)
	}

	if !session.ApplyAvailability(ticket, result, err) {
		r.logger.Info("Sessions: dropped stale availability session=%s generation=%d",
			session.ID(), ticket.Generation)
		if r.metrics != nil {
			r.metrics.IncStaleRefresh()
		}
		return
	}

	if err != nil {
		r.logger.Warn("Sessions: availability unavailable session=%s provider=%s: %v",
			session.ID(), ticket.ProviderID, err)
	}
}
