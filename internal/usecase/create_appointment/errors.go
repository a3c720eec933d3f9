package create_appointment

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("create_appointment: session not found")

	// ErrSessionClosed возвращается, если запись в этой сессии уже создана
	ErrSessionClosed = errors.New("create_appointment: session is closed")

	// ErrSubmitInProgress возвращается при повторном нажатии во время отправки
	ErrSubmitInProgress = errors.New("create_appointment: submission in progress")

	// ErrHourNotSelected возвращается, если час не выбран. Запрос в API не отправляется
	ErrHourNotSelected = errors.New("create_appointment: hour is not selected")

	// ErrSubmissionFailed возвращается при любой ошибке создания записи в API
	ErrSubmissionFailed = errors.New("create_appointment: submission failed")
)
