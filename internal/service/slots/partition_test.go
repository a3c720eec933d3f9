package slots

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

func TestLabel(t *testing.T) {
	assert.Equal(t, "00:00", Label(0))
	assert.Equal(t, "09:00", Label(9))
	assert.Equal(t, "14:00", Label(14))
	assert.Equal(t, "23:00", Label(23))
}

func TestPartition_SplitsAtNoon(t *testing.T) {
	input := []domain.AvailabilitySlot{
		{Hour: 8, Available: true},
		{Hour: 11, Available: false},
		{Hour: 12, Available: true},
		{Hour: 17, Available: false},
	}

	morning, afternoon := Partition(input)

	assert.Equal(t, []domain.SlotView{
		{Hour: 8, Available: true, Label: "08:00"},
		{Hour: 11, Available: false, Label: "11:00"},
	}, morning)
	assert.Equal(t, []domain.SlotView{
		{Hour: 12, Available: true, Label: "12:00"},
		{Hour: 17, Available: false, Label: "17:00"},
	}, afternoon)
}

func TestPartition_SortsUnorderedInput(t *testing.T) {
	input := []domain.AvailabilitySlot{
		{Hour: 15}, {Hour: 9}, {Hour: 13}, {Hour: 8},
	}

	morning, afternoon := Partition(input)

	assert.Equal(t, []int{8, 9}, hours(morning))
	assert.Equal(t, []int{13, 15}, hours(afternoon))
}

func TestPartition_DefensiveFiltering(t *testing.T) {
	input := []domain.AvailabilitySlot{
		{Hour: -1, Available: true},
		{Hour: 9, Available: true},
		{Hour: 9, Available: false},
		{Hour: 24, Available: true},
	}

	morning, afternoon := Partition(input)

	require.Len(t, morning, 1)
	assert.True(t, morning[0].Available, "first occurrence wins")
	assert.Empty(t, afternoon)
}

func TestPartition_EmptyInput(t *testing.T) {
	morning, afternoon := Partition(nil)

	assert.NotNil(t, morning)
	assert.NotNil(t, afternoon)
	assert.Empty(t, morning)
	assert.Empty(t, afternoon)
}

// Для любого набора уникальных часов: группы не пересекаются,
// их объединение равно входу, утро < 12 <= день
func TestPartition_PropertyDisjointUnion(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		perm := rng.Perm(24)
		n := rng.Intn(25)

		input := make([]domain.AvailabilitySlot, 0, n)
		want := make(map[int]bool, n)
		for _, h := range perm[:n] {
			available := rng.Intn(2) == 1
			input = append(input, domain.AvailabilitySlot{Hour: h, Available: available})
			want[h] = available
		}

		morning, afternoon := Partition(input)

		got := make(map[int]bool, n)
		for _, v := range morning {
			assert.Less(t, v.Hour, 12)
			got[v.Hour] = v.Available
		}
		for _, v := range afternoon {
			assert.GreaterOrEqual(t, v.Hour, 12)
			_, dup := got[v.Hour]
			assert.False(t, dup, "hour %d in both partitions", v.Hour)
			got[v.Hour] = v.Available
		}

		assert.Equal(t, want, got)
		assert.Len(t, morning, len(filter(input, true)))
		assert.Len(t, afternoon, len(filter(input, false)))
	}
}

func hours(views []domain.SlotView) []int {
	result := make([]int, len(views))
	for i, v := range views {
		result[i] = v.Hour
	}
	return result
}

func filter(slots []domain.AvailabilitySlot, morning bool) []domain.AvailabilitySlot {
	result := make([]domain.AvailabilitySlot, 0)
	for _, s := range slots {
		if s.IsMorning() == morning {
			result = append(result, s)
		}
	}
	return result
}
