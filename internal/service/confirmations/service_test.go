package confirmations

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
)

type failingRepo struct {
	err error
}

func (r *failingRepo) GetBySessionID(_ context.Context, _ string) (*domain.AppointmentRecord, error) {
	return nil, r.err
}

func TestGet(t *testing.T) {
	repo := appointmentRepo.NewMemoryRepository()
	date := time.Date(2024, 5, 10, 9, 0, 0, 0, time.Local)
	owner := domain.Credentials{Token: "owner"}
	_, err := repo.Create(context.Background(), "s1", &domain.AppointmentRecord{ID: "a1", Date: date, OwnerKey: owner.OwnerKey()})
	require.NoError(t, err)

	svc := NewService(repo, logger.NewNop())

	record, err := svc.Get(context.Background(), "s1", owner)
	require.NoError(t, err)
	assert.Equal(t, date, record.Date)

	_, err = svc.Get(context.Background(), "s2", owner)
	assert.ErrorIs(t, err, ErrConfirmationNotFound)

	_, err = svc.Get(context.Background(), "s1", domain.Credentials{Token: "stranger"})
	assert.ErrorIs(t, err, ErrConfirmationNotFound)
}

func TestGet_RepositoryError(t *testing.T) {
	svc := NewService(&failingRepo{err: fmt.Errorf("%w: timeout", appointmentRepo.ErrScanRow)}, logger.NewNop())

	_, err := svc.Get(context.Background(), "s1", domain.Credentials{})
	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, errors.Is(err, ErrConfirmationNotFound))
}
