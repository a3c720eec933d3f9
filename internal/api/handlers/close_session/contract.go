package close_session

import "github.com/m04kA/SMC-SalonBookingService/internal/domain"

type SessionRegistry interface {
	Delete(id string, creds domain.Credentials) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
