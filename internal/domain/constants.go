package domain

// Границы суток и разделение на утро/день
const (
	MinHour  = 0
	MaxHour  = 23
	NoonHour = 12
)

// Time format constants
const (
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	HourLabelFormat = "%02d:00"    // HH:00
)

// MsgSubmitFailed единственное сообщение пользователю при ошибке создания записи
const MsgSubmitFailed = "could not create the appointment, try again"
