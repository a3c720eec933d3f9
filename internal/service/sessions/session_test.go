package sessions

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

var mountTime = time.Date(2024, 5, 10, 8, 30, 0, 0, time.Local)

func openSession() *Session {
	return newSession("s1", domain.Credentials{Token: "t"}, "p1", mountTime)
}

func TestNewSession_InitialSelection(t *testing.T) {
	s := openSession()
	view := s.View()

	assert.Equal(t, "p1", view.Selection.ProviderID)
	assert.Equal(t, mountTime, view.Selection.Date)
	assert.False(t, view.Selection.HasHour())
	assert.Equal(t, domain.StateSelecting, view.State)
	assert.Equal(t, domain.AvailabilityPending, view.AvailabilityStatus)
}

func TestSelectProvider_InvalidatesSlots(t *testing.T) {
	s := openSession()
	require.True(t, s.ApplyAvailability(s.CurrentTicket(), []domain.AvailabilitySlot{{Hour: 9, Available: true}}, nil))
	require.Len(t, s.View().Morning, 1)

	ticket, err := s.SelectProvider("p2")
	require.NoError(t, err)

	view := s.View()
	assert.Equal(t, "p2", ticket.ProviderID)
	assert.Equal(t, "p2", view.Selection.ProviderID)
	assert.Empty(t, view.Morning)
	assert.Equal(t, domain.AvailabilityPending, view.AvailabilityStatus)
}

func TestSelectDate_InvalidatesSlots(t *testing.T) {
	s := openSession()
	require.True(t, s.ApplyAvailability(s.CurrentTicket(), []domain.AvailabilitySlot{{Hour: 15}}, nil))

	next := mountTime.AddDate(0, 0, 1)
	ticket, err := s.SelectDate(next)
	require.NoError(t, err)

	assert.Equal(t, next, ticket.Date)
	assert.Empty(t, s.View().Afternoon)
}

func TestSelectHour_KeepsSlots(t *testing.T) {
	s := openSession()
	require.True(t, s.ApplyAvailability(s.CurrentTicket(), []domain.AvailabilitySlot{{Hour: 9}, {Hour: 10}}, nil))
	before := s.CurrentTicket()

	require.NoError(t, s.SelectHour(10))

	view := s.View()
	require.True(t, view.Selection.HasHour())
	assert.Equal(t, 10, *view.Selection.Hour)
	assert.Len(t, view.Morning, 2)
	assert.Equal(t, before, s.CurrentTicket())
}

func TestSelectHour_UnavailableSlotIsNotPrevented(t *testing.T) {
	s := openSession()
	require.True(t, s.ApplyAvailability(s.CurrentTicket(), []domain.AvailabilitySlot{{Hour: 9, Available: false}}, nil))

	assert.NoError(t, s.SelectHour(9))
	assert.NoError(t, s.SelectHour(16), "hour absent from the slot set is accepted too")
}

func TestSelectHour_OutOfRange(t *testing.T) {
	s := openSession()

	assert.ErrorIs(t, s.SelectHour(-1), ErrInvalidHour)
	assert.ErrorIs(t, s.SelectHour(24), ErrInvalidHour)
}

func TestSelect_InvalidInput(t *testing.T) {
	s := openSession()

	_, err := s.SelectProvider("")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.SelectDate(time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestApplyAvailability_ReplacesWholesale(t *testing.T) {
	s := openSession()
	require.True(t, s.ApplyAvailability(s.CurrentTicket(), []domain.AvailabilitySlot{{Hour: 8}, {Hour: 13}}, nil))

	ticket, err := s.SelectDate(mountTime.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.True(t, s.ApplyAvailability(ticket, []domain.AvailabilitySlot{{Hour: 10}}, nil))

	view := s.View()
	assert.Equal(t, []domain.SlotView{{Hour: 10, Label: "10:00"}}, view.Morning)
	assert.Empty(t, view.Afternoon)
}

func TestApplyAvailability_DropsStaleTicket(t *testing.T) {
	s := openSession()

	first, err := s.SelectDate(mountTime.AddDate(0, 0, 1))
	require.NoError(t, err)
	second, err := s.SelectDate(mountTime.AddDate(0, 0, 2))
	require.NoError(t, err)

	// Более новый запрос завершился первым
	require.True(t, s.ApplyAvailability(second, []domain.AvailabilitySlot{{Hour: 14}}, nil))
	assert.False(t, s.ApplyAvailability(first, []domain.AvailabilitySlot{{Hour: 9}}, nil))

	view := s.View()
	assert.Empty(t, view.Morning)
	assert.Equal(t, []domain.SlotView{{Hour: 14, Label: "14:00"}}, view.Afternoon)
}

func TestApplyAvailability_FailureSurfaced(t *testing.T) {
	s := openSession()

	require.True(t, s.ApplyAvailability(s.CurrentTicket(), nil, errors.New("timeout")))

	view := s.View()
	assert.Equal(t, domain.AvailabilityFailed, view.AvailabilityStatus)
	assert.Empty(t, view.Morning)
	assert.Empty(t, view.Afternoon)
}

func TestSubmitLifecycle_Confirmed(t *testing.T) {
	s := openSession()
	require.NoError(t, s.SelectHour(9))

	selection, err := s.BeginSubmit()
	require.NoError(t, err)
	assert.Equal(t, 9, *selection.Hour)
	assert.Equal(t, domain.StateSubmitting, s.View().State)

	_, err = s.BeginSubmit()
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	record := &domain.AppointmentRecord{ID: "a1", ProviderID: "p1"}
	s.CompleteSubmit(record)

	view := s.View()
	assert.Equal(t, domain.StateConfirmed, view.State)
	assert.Same(t, record, view.Confirmation)

	_, err = s.BeginSubmit()
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.ErrorIs(t, s.SelectHour(10), ErrSessionClosed)
	_, err = s.SelectProvider("p2")
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSubmitLifecycle_FailedIsReenterable(t *testing.T) {
	s := openSession()
	require.NoError(t, s.SelectHour(14))
	before := s.View().Selection

	_, err := s.BeginSubmit()
	require.NoError(t, err)
	s.FailSubmit()

	view := s.View()
	assert.Equal(t, domain.StateFailed, view.State)
	assert.Equal(t, before, view.Selection)

	// Повторная отправка без изменений
	_, err = s.BeginSubmit()
	require.NoError(t, err)
	s.FailSubmit()

	// Любое действие пользователя возвращает в selecting
	require.NoError(t, s.SelectHour(15))
	assert.Equal(t, domain.StateSelecting, s.View().State)
}

func TestMutationsRejectedWhileSubmitting(t *testing.T) {
	s := openSession()
	_, err := s.BeginSubmit()
	require.NoError(t, err)

	assert.ErrorIs(t, s.SelectHour(9), ErrSubmitInProgress)
	_, err = s.SelectDate(mountTime)
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	s.AbortSubmit()
	assert.Equal(t, domain.StateSelecting, s.View().State)
}

func TestBeginSubmit_SnapshotIsIndependent(t *testing.T) {
	s := openSession()
	require.NoError(t, s.SelectHour(9))

	selection, err := s.BeginSubmit()
	require.NoError(t, err)
	*selection.Hour = 20

	assert.Equal(t, 9, *s.View().Selection.Hour)
}

func TestConcurrentBeginSubmit_OnlyOneWins(t *testing.T) {
	s := openSession()
	require.NoError(t, s.SelectHour(9))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.BeginSubmit(); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
}
