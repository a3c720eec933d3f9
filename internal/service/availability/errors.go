package availability

import "errors"

var (
	// ErrFetchFailed возвращается, когда слоты не удалось получить от API
	ErrFetchFailed = errors.New("availability: fetch failed")

	// ErrInvalidInput возвращается при пустом мастере или нулевой дате
	ErrInvalidInput = errors.New("availability: invalid input data")
)
