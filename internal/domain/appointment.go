package domain

import "time"

// Selection текущий выбор пользователя до подтверждения записи
type Selection struct {
	ProviderID string
	Date       time.Time // значимы только год/месяц/день до момента отправки
	Hour       *int      // nil = час не выбран
}

// HasHour возвращает true, если час выбран
func (s Selection) HasHour() bool {
	return s.Hour != nil
}

// Clone возвращает независимую копию выбора
func (s Selection) Clone() Selection {
	clone := s
	if s.Hour != nil {
		h := *s.Hour
		clone.Hour = &h
	}
	return clone
}

// AppointmentRecord результат успешно созданной записи
type AppointmentRecord struct {
	ID         string
	ProviderID string
	Date       time.Time // дата и час записи (локальное время, минуты и секунды = 0)
	CreatedAt  time.Time
	OwnerKey   string // Credentials.OwnerKey создателя записи
}

// DateMillis возвращает время записи в миллисекундах Unix (формат экрана подтверждения)
func (r *AppointmentRecord) DateMillis() int64 {
	return r.Date.UnixMilli()
}

// ProfileUpdate данные формы редактирования профиля
type ProfileUpdate struct {
	Name                 string
	Email                string
	OldPassword          string
	Password             string
	PasswordConfirmation string
}

// ChangesPassword возвращает true, если пользователь меняет пароль
func (p ProfileUpdate) ChangesPassword() bool {
	return p.OldPassword != ""
}
