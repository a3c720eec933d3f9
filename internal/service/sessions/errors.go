package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrSessionClosed возвращается при изменении сессии после подтверждения записи
	ErrSessionClosed = errors.New("sessions: session is closed")

	// ErrSubmitInProgress возвращается, пока запрос на создание записи не завершился
	ErrSubmitInProgress = errors.New("sessions: submission in progress")

	// ErrInvalidHour возвращается для часа вне диапазона [0, 23]
	ErrInvalidHour = errors.New("sessions: invalid hour")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("sessions: invalid input data")
)
