package appointment

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// MemoryRepository хранилище подтверждённых записей в памяти (когда БД отключена)
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]domain.AppointmentRecord
	now     func() time.Time
}

// NewMemoryRepository создает хранилище в памяти
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[string]domain.AppointmentRecord),
		now:     time.Now,
	}
}

func (r *MemoryRepository) Create(_ context.Context, sessionID string, record *domain.AppointmentRecord) (*domain.AppointmentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[sessionID]; ok {
		return nil, ErrAlreadyExists
	}

	saved := *record
	saved.CreatedAt = r.now()
	r.records[sessionID] = saved
	return &saved, nil
}

func (r *MemoryRepository) GetBySessionID(_ context.Context, sessionID string) (*domain.AppointmentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[sessionID]
	if !ok {
		return nil, ErrConfirmationNotFound
	}
	return &record, nil
}
