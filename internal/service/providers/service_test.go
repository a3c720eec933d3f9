package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
)

type fakeClient struct {
	providers []domain.Provider
	err       error
}

func (c *fakeClient) ListProviders(_ context.Context, _ domain.Credentials) ([]domain.Provider, error) {
	return c.providers, c.err
}

func TestList(t *testing.T) {
	client := &fakeClient{providers: []domain.Provider{{ID: "p1", Name: "Ana"}}}
	svc := NewService(client, logger.NewNop())

	providers, err := svc.List(context.Background(), domain.Credentials{})
	require.NoError(t, err)
	assert.Equal(t, client.providers, providers)
}

func TestList_Errors(t *testing.T) {
	svc := NewService(&fakeClient{err: salonapi.ErrUnauthorized}, logger.NewNop())
	_, err := svc.List(context.Background(), domain.Credentials{})
	assert.ErrorIs(t, err, ErrUnauthorized)

	svc = NewService(&fakeClient{err: errors.New("dial tcp")}, logger.NewNop())
	_, err = svc.List(context.Background(), domain.Credentials{})
	assert.ErrorIs(t, err, ErrInternal)
}
