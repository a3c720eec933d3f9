package appointment

import "errors"

var (
	// ErrConfirmationNotFound возвращается, когда для сессии нет подтверждённой записи
	ErrConfirmationNotFound = errors.New("appointment.repository: confirmation not found")

	// ErrAlreadyExists возвращается при повторном сохранении записи для той же сессии
	ErrAlreadyExists = errors.New("appointment.repository: confirmation already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
