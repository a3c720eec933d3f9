package open_session

import "github.com/m04kA/SMC-SalonBookingService/internal/domain"

// Request модель запроса на открытие экрана записи
type Request struct {
	Credentials domain.Credentials // контекст пользователя, передаётся явно
	ProviderID  string             // мастер, выбранный на главном экране
}
