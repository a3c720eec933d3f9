package update_profile

import "errors"

var (
	// ErrInvalidInput возвращается, когда форма не прошла проверку
	ErrInvalidInput = errors.New("update_profile: invalid input data")

	// ErrUnauthorized возвращается, когда API отклонил токен
	ErrUnauthorized = errors.New("update_profile: unauthorized")

	// ErrRejected возвращается, когда API отклонил данные (например, неверный старый пароль)
	ErrRejected = errors.New("update_profile: rejected by api")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_profile: internal error")
)
