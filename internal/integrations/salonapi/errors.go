package salonapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса, транспорт)
	ErrInternal = errors.New("salonapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("salonapi client: invalid response")

	// ErrNotFound возвращается, когда ресурс не найден
	ErrNotFound = errors.New("salonapi client: not found")

	// ErrValidation возвращается, когда API отклонил данные запроса
	ErrValidation = errors.New("salonapi client: validation failed")

	// ErrUnauthorized возвращается, когда токен пользователя отсутствует или просрочен
	ErrUnauthorized = errors.New("salonapi client: unauthorized")
)
