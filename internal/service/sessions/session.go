package sessions

import (
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/slots"
)

// Session состояние одного открытого экрана записи.
// Выбор и набор слотов принадлежат только этой сессии
type Session struct {
	mu sync.Mutex

	id    string
	creds domain.Credentials

	selection          domain.Selection
	providers          []domain.Provider
	slots              []domain.AvailabilitySlot
	availabilityStatus domain.AvailabilityStatus
	generation         uint64

	state        domain.SessionState
	confirmation *domain.AppointmentRecord
	lastActivity time.Time
}

func newSession(id string, creds domain.Credentials, providerID string, now time.Time) *Session {
	return &Session{
		id:    id,
		creds: creds,
		selection: domain.Selection{
			ProviderID: providerID,
			Date:       now,
		},
		providers:          []domain.Provider{},
		slots:              []domain.AvailabilitySlot{},
		availabilityStatus: domain.AvailabilityPending,
		generation:         1,
		state:              domain.StateSelecting,
		lastActivity:       now,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Credentials контекст авторизации, с которым открыт экран
func (s *Session) Credentials() domain.Credentials {
	return s.creds
}

// OwnedBy возвращает true, если creds совпадают с контекстом, открывшим сессию
func (s *Session) OwnedBy(creds domain.Credentials) bool {
	return subtle.ConstantTimeCompare([]byte(s.creds.Token), []byte(creds.Token)) == 1
}

// SetProviders сохраняет список мастеров для горизонтального списка экрана
func (s *Session) SetProviders(providers []domain.Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.providers = append([]domain.Provider{}, providers...)
}

// CurrentTicket билет на обновление слотов для текущих мастера и даты
func (s *Session) CurrentTicket() RefreshTicket {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ticketLocked()
}

// SelectProvider меняет мастера. Сбрасывает набор слотов и выдаёт билет на обновление
func (s *Session) SelectProvider(providerID string) (RefreshTicket, error) {
	if providerID == "" {
		return RefreshTicket{}, fmt.Errorf("%w: provider id is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkMutableLocked(); err != nil {
		return RefreshTicket{}, err
	}

	s.selection.ProviderID = providerID
	s.resumeLocked()
	s.invalidateLocked()
	return s.ticketLocked(), nil
}

// SelectDate меняет дату. Сбрасывает набор слотов и выдаёт билет на обновление
func (s *Session) SelectDate(date time.Time) (RefreshTicket, error) {
	if date.IsZero() {
		return RefreshTicket{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkMutableLocked(); err != nil {
		return RefreshTicket{}, err
	}

	s.selection.Date = date
	s.resumeLocked()
	s.invalidateLocked()
	return s.ticketLocked(), nil
}

// SelectHour меняет час. Доступность слота не проверяется: флаг available
// только подсказка для экрана. Набор слотов не сбрасывается
func (s *Session) SelectHour(hour int) error {
	if !domain.IsValidHour(hour) {
		return fmt.Errorf("%w: %d", ErrInvalidHour, hour)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkMutableLocked(); err != nil {
		return err
	}

	s.selection.Hour = &hour
	s.resumeLocked()
	return nil
}

// ApplyAvailability устанавливает результат обновления слотов.
// Возвращает false, если билет устарел (мастер или дата менялись после его выдачи),
// в этом случае результат отбрасывается
func (s *Session) ApplyAvailability(ticket RefreshTicket, result []domain.AvailabilitySlot, fetchErr error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket.Generation != s.generation {
		return false
	}

	// Набор заменяется целиком, без слияния со старым
	if fetchErr != nil {
		s.slots = []domain.AvailabilitySlot{}
		s.availabilityStatus = domain.AvailabilityFailed
		return true
	}

	s.slots = append([]domain.AvailabilitySlot{}, result...)
	s.availabilityStatus = domain.AvailabilityLoaded
	return true
}

// BeginSubmit переводит сессию в submitting и возвращает снимок выбора.
// Повторный вызов до завершения отправки возвращает ErrSubmitInProgress
func (s *Session) BeginSubmit() (domain.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.state == domain.StateSubmitting:
		return domain.Selection{}, ErrSubmitInProgress
	case s.state.IsTerminal():
		return domain.Selection{}, ErrSessionClosed
	case !s.state.CanSubmit():
		return domain.Selection{}, fmt.Errorf("%w: cannot submit from state %s", ErrInvalidInput, s.state)
	}

	s.state = domain.StateSubmitting
	return s.selection.Clone(), nil
}

// AbortSubmit возвращает сессию в selecting, если отправка не начиналась
func (s *Session) AbortSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == domain.StateSubmitting {
		s.state = domain.StateSelecting
	}
}

// CompleteSubmit фиксирует созданную запись. Сессия становится завершённой
func (s *Session) CompleteSubmit(record *domain.AppointmentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = domain.StateConfirmed
	s.confirmation = record
}

// FailSubmit переводит сессию в failed. Выбор не меняется, сессию можно продолжать
func (s *Session) FailSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == domain.StateSubmitting {
		s.state = domain.StateFailed
	}
}

// View возвращает снимок сессии с разбиением слотов на утро и день
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	morning, afternoon := slots.Partition(s.slots)

	return View{
		SessionID:          s.id,
		State:              s.state,
		Selection:          s.selection.Clone(),
		Providers:          append([]domain.Provider{}, s.providers...),
		AvailabilityStatus: s.availabilityStatus,
		Morning:            morning,
		Afternoon:          afternoon,
		Confirmation:       s.confirmation,
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActivity = now
}

func (s *Session) isSubmitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state == domain.StateSubmitting
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return now.Sub(s.lastActivity)
}

func (s *Session) checkMutableLocked() error {
	switch s.state {
	case domain.StateConfirmed:
		return ErrSessionClosed
	case domain.StateSubmitting:
		return ErrSubmitInProgress
	}
	return nil
}

// resumeLocked после неудачной отправки любое действие пользователя возвращает сессию в selecting
func (s *Session) resumeLocked() {
	if s.state == domain.StateFailed {
		s.state = domain.StateSelecting
	}
}

func (s *Session) invalidateLocked() {
	s.generation++
	s.slots = []domain.AvailabilitySlot{}
	s.availabilityStatus = domain.AvailabilityPending
}

func (s *Session) ticketLocked() RefreshTicket {
	return RefreshTicket{
		Generation: s.generation,
		ProviderID: s.selection.ProviderID,
		Date:       s.selection.Date,
	}
}
