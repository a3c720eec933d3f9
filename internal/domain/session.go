package domain

// SessionState состояние сессии экрана записи
type SessionState string

const (
	StateSelecting  SessionState = "selecting"
	StateSubmitting SessionState = "submitting"
	StateConfirmed  SessionState = "confirmed"
	StateFailed     SessionState = "failed"
)

// IsTerminal возвращает true, если сессия завершена и больше не принимает изменений
func (s SessionState) IsTerminal() bool {
	return s == StateConfirmed
}

// CanSubmit возвращает true, если из этого состояния можно начать отправку
func (s SessionState) CanSubmit() bool {
	return s == StateSelecting || s == StateFailed
}

// AvailabilityStatus состояние набора слотов в сессии
type AvailabilityStatus string

const (
	AvailabilityPending AvailabilityStatus = "pending" // набор сброшен и ещё не загружен
	AvailabilityLoaded  AvailabilityStatus = "loaded"
	AvailabilityFailed  AvailabilityStatus = "failed"
)
