package slots

import (
	"sort"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// Label форматирует час слота для отображения: 9 → "09:00", 14 → "14:00"
func Label(hour int) string {
	return domain.HourLabel(hour)
}

// Partition делит набор слотов на утренние (hour < 12) и дневные (hour >= 12).
//
// Набор от API не обязан быть упорядоченным и уникальным, поэтому:
//   - слоты с часом вне [0, 23] отбрасываются;
//   - при повторе часа остаётся первое вхождение;
//   - каждая группа отсортирована по возрастанию часа.
func Partition(slots []domain.AvailabilitySlot) (morning []domain.SlotView, afternoon []domain.SlotView) {
	morning = make([]domain.SlotView, 0)
	afternoon = make([]domain.SlotView, 0)

	seen := make(map[int]struct{}, len(slots))
	for _, slot := range slots {
		if !slot.IsValidHour() {
			continue
		}
		if _, dup := seen[slot.Hour]; dup {
			continue
		}
		seen[slot.Hour] = struct{}{}

		view := toView(slot)
		if slot.IsMorning() {
			morning = append(morning, view)
		} else {
			afternoon = append(afternoon, view)
		}
	}

	sortByHour(morning)
	sortByHour(afternoon)

	return morning, afternoon
}

func toView(slot domain.AvailabilitySlot) domain.SlotView {
	return domain.SlotView{
		Hour:      slot.Hour,
		Available: slot.Available,
		Label:     Label(slot.Hour),
	}
}

func sortByHour(views []domain.SlotView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Hour < views[j].Hour
	})
}
