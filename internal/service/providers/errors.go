package providers

import "errors"

var (
	// ErrUnauthorized возвращается, когда API отклонил токен пользователя
	ErrUnauthorized = errors.New("providers: unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("providers: internal error")
)
