package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/psqlbuilder"
)

const (
	tableConfirmations = "appointment_confirmations"

	// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
	uniqueViolation = "23505"
)

// Repository репозиторий подтверждённых записей в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подтверждённых записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет подтверждённую запись сессии
func (r *Repository) Create(ctx context.Context, sessionID string, record *domain.AppointmentRecord) (*domain.AppointmentRecord, error) {
	query, args, err := psqlbuilder.Insert(tableConfirmations).
		Columns(
			"session_id",
			"appointment_id",
			"provider_id",
			"appointment_date",
			"owner_key",
		).
		Values(
			sessionID,
			record.ID,
			record.ProviderID,
			record.Date,
			record.OwnerKey,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	saved := *record
	saved.CreatedAt = createdAt.Time
	return &saved, nil
}

// GetBySessionID получает подтверждённую запись по ID сессии
func (r *Repository) GetBySessionID(ctx context.Context, sessionID string) (*domain.AppointmentRecord, error) {
	query, args, err := psqlbuilder.Select(
		"appointment_id",
		"provider_id",
		"appointment_date",
		"owner_key",
		"created_at",
	).
		From(tableConfirmations).
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - build select query: %v", ErrBuildQuery, err)
	}

	var record domain.AppointmentRecord
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.ProviderID,
		&record.Date,
		&record.OwnerKey,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfirmationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - scan confirmation: %v", ErrScanRow, err)
	}

	record.CreatedAt = createdAt.Time
	return &record, nil
}
