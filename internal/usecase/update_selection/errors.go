package update_selection

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("update_selection: session not found")

	// ErrSessionClosed возвращается после подтверждения записи
	ErrSessionClosed = errors.New("update_selection: session is closed")

	// ErrSubmitInProgress возвращается, пока создаётся запись
	ErrSubmitInProgress = errors.New("update_selection: submission in progress")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_selection: invalid input data")
)
