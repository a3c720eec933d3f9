package update_selection

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// SelectProviderRequest выбор другого мастера в горизонтальном списке
type SelectProviderRequest struct {
	SessionID   string
	Credentials domain.Credentials
	ProviderID  string
}

// SelectDateRequest подтверждение даты в календаре
type SelectDateRequest struct {
	SessionID   string
	Credentials domain.Credentials
	Date        time.Time
}

// SelectHourRequest выбор часа в сетке слотов
type SelectHourRequest struct {
	SessionID   string
	Credentials domain.Credentials
	Hour        int
}
