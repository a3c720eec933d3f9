package sessions

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/availability"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
)

type fakeStore struct {
	slots []domain.AvailabilitySlot
	err   error
	// hook вызывается до возврата результата (имитация конкурирующего изменения)
	hook func()
}

func (s *fakeStore) Refresh(_ context.Context, _ domain.Credentials, _ string, _ time.Time) ([]domain.AvailabilitySlot, error) {
	if s.hook != nil {
		s.hook()
	}
	return s.slots, s.err
}

type fakeRefreshMetrics struct {
	stale int
}

func (m *fakeRefreshMetrics) IncStaleRefresh() {
	m.stale++
}

func TestRefresher_AppliesCurrentTicket(t *testing.T) {
	store := &fakeStore{slots: []domain.AvailabilitySlot{{Hour: 9, Available: true}, {Hour: 13}}}
	r := NewRefresher(store, nil, logger.NewNop())
	s := openSession()

	r.Refresh(context.Background(), s, s.CurrentTicket())

	view := s.View()
	assert.Equal(t, domain.AvailabilityLoaded, view.AvailabilityStatus)
	assert.Len(t, view.Morning, 1)
	assert.Len(t, view.Afternoon, 1)
}

func TestRefresher_DropsResultSupersededInFlight(t *testing.T) {
	s := openSession()
	store := &fakeStore{slots: []domain.AvailabilitySlot{{Hour: 9}}}
	store.hook = func() {
		// Пользователь сменил дату, пока запрос был в полёте
		_, _ = s.SelectDate(mountTime.AddDate(0, 0, 3))
	}
	m := &fakeRefreshMetrics{}
	r := NewRefresher(store, m, logger.NewNop())

	r.Refresh(context.Background(), s, s.CurrentTicket())

	view := s.View()
	assert.Equal(t, domain.AvailabilityPending, view.AvailabilityStatus)
	assert.Empty(t, view.Morning)
	assert.Equal(t, 1, m.stale)
}

func TestRefresher_FetchFailureMarksStatus(t *testing.T) {
	store := &fakeStore{
		slots: []domain.AvailabilitySlot{},
		err:   fmt.Errorf("%w: timeout", availability.ErrFetchFailed),
	}
	r := NewRefresher(store, nil, logger.NewNop())
	s := openSession()

	r.Refresh(context.Background(), s, s.CurrentTicket())

	assert.Equal(t, domain.AvailabilityFailed, s.View().AvailabilityStatus)
}

func TestRefresher_UnexpectedErrorStillApplied(t *testing.T) {
	store := &fakeStore{err: errors.New("boom")}
	r := NewRefresher(store, nil, logger.NewNop())
	s := openSession()

	r.Refresh(context.Background(), s, s.CurrentTicket())

	assert.Equal(t, domain.AvailabilityFailed, s.View().AvailabilityStatus)
}
