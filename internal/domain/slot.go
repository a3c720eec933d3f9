package domain

import "fmt"

// AvailabilitySlot часовой слот мастера на конкретный день, как его отдаёт API салона
type AvailabilitySlot struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// IsMorning возвращает true для слотов до полудня
func (s AvailabilitySlot) IsMorning() bool {
	return s.Hour < NoonHour
}

// IsValidHour проверяет, что час попадает в диапазон суток
func (s AvailabilitySlot) IsValidHour() bool {
	return IsValidHour(s.Hour)
}

// SlotView производная модель слота для отображения, никогда не сохраняется
type SlotView struct {
	Hour      int    `json:"hour"`
	Available bool   `json:"available"`
	Label     string `json:"label"` // "HH:00"
}

// IsValidHour проверяет, что час в диапазоне [0, 23]
func IsValidHour(hour int) bool {
	return hour >= MinHour && hour <= MaxHour
}

// HourLabel форматирует час в 24-часовом формате с нулевыми минутами
func HourLabel(hour int) string {
	return fmt.Sprintf(HourLabelFormat, hour)
}
