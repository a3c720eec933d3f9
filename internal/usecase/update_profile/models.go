package update_profile

import (
	"sort"
	"strings"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// Request модель запроса на обновление профиля
type Request struct {
	Credentials domain.Credentials
	Profile     domain.ProfileUpdate
}

// ValidationError ошибки формы по полям. field -> сообщение
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

// Is позволяет проверять ошибку через errors.Is(err, ErrInvalidInput)
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
