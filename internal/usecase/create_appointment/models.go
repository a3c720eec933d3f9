package create_appointment

import (
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// Request модель запроса на подтверждение записи
type Request struct {
	SessionID   string
	Credentials domain.Credentials // владелец сессии
}

// Response модель ответа: данные для экрана подтверждения
type Response struct {
	Record *domain.AppointmentRecord
}

// Failure неудачная отправка. Причины не различаются, пользователю показывается одно сообщение
type Failure struct {
	Message string
	cause   error
}

func newFailure(cause error) *Failure {
	return &Failure{
		Message: domain.MsgSubmitFailed,
		cause:   cause,
	}
}

func (f *Failure) Error() string {
	return ErrSubmissionFailed.Error() + ": " + f.cause.Error()
}

func (f *Failure) Unwrap() error {
	return f.cause
}

// Is позволяет проверять ошибку через errors.Is(err, ErrSubmissionFailed)
func (f *Failure) Is(target error) bool {
	return target == ErrSubmissionFailed
}
