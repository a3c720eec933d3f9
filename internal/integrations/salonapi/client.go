package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

const (
	opListProviders     = "list_providers"
	opDayAvailability   = "day_availability"
	opCreateAppointment = "create_appointment"
	opUpdateProfile     = "update_profile"
)

// Client клиент для работы с API салона
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
}

// NewClient создает новый экземпляр клиента API салона.
// timeout = 0 означает отсутствие таймаута
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// ListProviders получает список мастеров
func (c *Client) ListProviders(ctx context.Context, creds domain.Credentials) ([]domain.Provider, error) {
	providers := make([]domain.Provider, 0)
	if err := c.do(ctx, opListProviders, http.MethodGet, "/providers", nil, creds, nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// DayAvailability получает часовые слоты мастера на день
func (c *Client) DayAvailability(ctx context.Context, creds domain.Credentials, providerID string, year, month, day int) ([]domain.AvailabilitySlot, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(month))
	query.Set("day", strconv.Itoa(day))

	path := fmt.Sprintf("/providers/%s/day-availability", url.PathEscape(providerID))

	slots := make([]domain.AvailabilitySlot, 0)
	if err := c.do(ctx, opDayAvailability, http.MethodGet, path, query, creds, nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// CreateAppointment создает запись к мастеру на указанное время
func (c *Client) CreateAppointment(ctx context.Context, creds domain.Credentials, providerID string, date time.Time) (*Appointment, error) {
	body := createAppointmentRequest{
		ProviderID: providerID,
		Date:       date,
	}

	var appointment Appointment
	if err := c.do(ctx, opCreateAppointment, http.MethodPost, "/appointments", nil, creds, body, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

// UpdateProfile обновляет профиль пользователя
func (c *Client) UpdateProfile(ctx context.Context, creds domain.Credentials, req ProfileRequest) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, opUpdateProfile, http.MethodPut, "/profile", nil, creds, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) do(
	ctx context.Context,
	operation string,
	method string,
	path string,
	query url.Values,
	creds domain.Credentials,
	body interface{},
	out interface{},
) error {
	started := time.Now()
	status := "error"
	defer func() {
		if c.metrics != nil {
			c.metrics.ObserveAPI(operation, status, time.Since(started))
		}
	}()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if creds.HasToken() {
		req.Header.Set("Authorization", "Bearer "+creds.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("salonapi %s %s: request failed: %v", method, path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	status = strconv.Itoa(resp.StatusCode)

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrValidation, readMessage(resp.Body))
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		c.log.Warn("salonapi %s %s: unexpected status %d", method, path, resp.StatusCode)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readMessage(resp.Body))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// readMessage достаёт сообщение об ошибке из тела ответа
func readMessage(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, 4096))

	var errResp ErrorResponse
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return strings.TrimSpace(string(data))
}
