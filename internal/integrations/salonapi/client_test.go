package salonapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
)

type recordedCall struct {
	operation string
	status    string
}

type fakeMetrics struct {
	calls []recordedCall
}

func (m *fakeMetrics) ObserveAPI(operation, status string, _ time.Duration) {
	m.calls = append(m.calls, recordedCall{operation: operation, status: status})
}

func newTestClient(t *testing.T, router *mux.Router) (*Client, *fakeMetrics) {
	t.Helper()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	m := &fakeMetrics{}
	return NewClient(srv.URL+"/", time.Second, logger.NewNop(), m), m
}

var creds = domain.Credentials{Token: "token-1"}

func TestListProviders(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/providers", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_ = json.NewEncoder(w).Encode([]map[string]string{
			{"id": "p1", "name": "Ana", "avatar_url": "http://img/p1.png"},
		})
	}).Methods(http.MethodGet)

	c, m := newTestClient(t, r)

	providers, err := c.ListProviders(context.Background(), creds)
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, domain.Provider{ID: "p1", Name: "Ana", AvatarURL: "http://img/p1.png"}, providers[0])
	assert.Equal(t, []recordedCall{{operation: opListProviders, status: "200"}}, m.calls)
}

func TestDayAvailability_SendsCalendarFields(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/providers/{id}/day-availability", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "p1", mux.Vars(r)["id"])
		q := r.URL.Query()
		assert.Equal(t, "2024", q.Get("year"))
		assert.Equal(t, "5", q.Get("month"))
		assert.Equal(t, "10", q.Get("day"))
		_, _ = w.Write([]byte(`[{"hour":9,"available":true},{"hour":14,"available":false}]`))
	}).Methods(http.MethodGet)

	c, _ := newTestClient(t, r)

	slots, err := c.DayAvailability(context.Background(), creds, "p1", 2024, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.AvailabilitySlot{{Hour: 9, Available: true}, {Hour: 14, Available: false}}, slots)
}

func TestCreateAppointment(t *testing.T) {
	date := time.Date(2024, 5, 10, 14, 0, 0, 0, time.Local)

	r := mux.NewRouter()
	r.HandleFunc("/appointments", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ProviderID string    `json:"provider_id"`
			Date       time.Time `json:"date"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "p1", body.ProviderID)
		assert.True(t, body.Date.Equal(date))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":          "a1",
			"provider_id": body.ProviderID,
			"date":        body.Date,
		})
	}).Methods(http.MethodPost)

	c, _ := newTestClient(t, r)

	appointment, err := c.CreateAppointment(context.Background(), creds, "p1", date)
	require.NoError(t, err)
	assert.Equal(t, "a1", appointment.ID)
	assert.True(t, appointment.Date.Equal(date))
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "validation", status: http.StatusBadRequest, body: `{"status":"error","message":"This appointment is already booked"}`, wantErr: ErrValidation},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, body: `{}`, wantErr: ErrValidation},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/appointments", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			c, _ := newTestClient(t, r)

			_, err := c.CreateAppointment(context.Background(), creds, "p1", time.Now())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidationMessageIsPropagated(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","message":"Old password does not match"}`))
	})

	c, _ := newTestClient(t, r)

	_, err := c.UpdateProfile(context.Background(), creds, ProfileRequest{Name: "Ana", Email: "ana@example.com"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Old password does not match")
}

func TestDecodeError(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/providers", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	c, _ := newTestClient(t, r)

	_, err := c.ListProviders(context.Background(), creds)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	m := &fakeMetrics{}
	c := NewClient(url, time.Second, logger.NewNop(), m)

	_, err := c.ListProviders(context.Background(), creds)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, []recordedCall{{operation: opListProviders, status: "error"}}, m.calls)
}

func TestNoTokenNoAuthorizationHeader(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/providers", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	})

	c, _ := newTestClient(t, r)

	providers, err := c.ListProviders(context.Background(), domain.Credentials{})
	require.NoError(t, err)
	assert.Empty(t, providers)
}
