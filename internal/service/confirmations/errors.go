package confirmations

import "errors"

var (
	// ErrConfirmationNotFound возвращается, когда сессия не завершилась созданием записи
	ErrConfirmationNotFound = errors.New("confirmations: confirmation not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("confirmations: internal error")
)
