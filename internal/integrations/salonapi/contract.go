package salonapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учёта запросов к API
type Metrics interface {
	ObserveAPI(operation, status string, duration time.Duration)
}
