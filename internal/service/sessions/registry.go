package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// Registry хранит открытые сессии экранов записи в памяти процесса
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl          time.Duration
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewRegistry создает реестр сессий. Сессии без активности дольше ttl удаляются при Sweep
func NewRegistry(ttl time.Duration, metrics Metrics, logger Logger) *Registry {
	return &Registry{
		sessions:     make(map[string]*Session),
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (r *Registry) WithTimeProvider(tp TimeProvider) *Registry {
	r.timeProvider = tp
	return r
}

// Create открывает новую сессию: мастер из навигации, дата = сейчас, час не выбран
func (r *Registry) Create(creds domain.Credentials, providerID string) *Session {
	session := newSession(uuid.NewString(), creds, providerID, r.timeProvider.Now())

	r.mu.Lock()
	r.sessions[session.ID()] = session
	count := len(r.sessions)
	r.mu.Unlock()

	r.reportActive(count)
	r.logger.Info("Sessions: opened session=%s provider=%s", session.ID(), providerID)
	return session
}

// Get возвращает сессию владельца creds и отмечает активность.
// Чужая сессия неотличима от несуществующей
func (r *Registry) Get(id string, creds domain.Credentials) (*Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if !session.OwnedBy(creds) {
		r.logger.Warn("Sessions: session=%s requested with foreign credentials", id)
		return nil, ErrSessionNotFound
	}

	session.touch(r.timeProvider.Now())
	return session, nil
}

// Delete закрывает сессию владельца creds (уход с экрана)
func (r *Registry) Delete(id string, creds domain.Credentials) error {
	r.mu.Lock()
	session, ok := r.sessions[id]
	if !ok || !session.OwnedBy(creds) {
		r.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	count := len(r.sessions)
	r.mu.Unlock()

	r.reportActive(count)
	r.logger.Info("Sessions: closed session=%s", id)
	return nil
}

// Sweep удаляет истекшие сессии и возвращает их количество.
// Сессии с незавершённой отправкой не удаляются
func (r *Registry) Sweep() int {
	now := r.timeProvider.Now()

	r.mu.Lock()
	removed := 0
	for id, session := range r.sessions {
		if session.isSubmitting() {
			continue
		}
		if session.idleSince(now) > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	count := len(r.sessions)
	r.mu.Unlock()

	if removed > 0 {
		r.reportActive(count)
		r.logger.Info("Sessions: expired %d idle sessions, %d active", removed, count)
	}
	return removed
}

// Len количество открытых сессий
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

func (r *Registry) reportActive(n int) {
	if r.metrics != nil {
		r.metrics.SetActiveSessions(n)
	}
}
