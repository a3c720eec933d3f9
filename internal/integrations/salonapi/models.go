package salonapi

import "time"

// createAppointmentRequest тело POST /appointments
type createAppointmentRequest struct {
	ProviderID string    `json:"provider_id"`
	Date       time.Time `json:"date"`
}

// Appointment созданная запись, как её возвращает API
type Appointment struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"provider_id"`
	UserID     string    `json:"user_id"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProfileRequest тело PUT /profile. Поля пароля отправляются только при смене пароля
type ProfileRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	OldPassword          string `json:"old_password,omitempty"`
	Password             string `json:"password,omitempty"`
	PasswordConfirmation string `json:"password_confirmation,omitempty"`
}

// ErrorResponse модель ошибки от API
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
