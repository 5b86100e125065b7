//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"barber-agenda/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots(t *testing.T) {
	t.Run("full work day", func(t *testing.T) {
		slots := schedule.GenerateSlots("08:00", "20:00", 30)
		require.Len(t, slots, 24)
		assert.Equal(t, "08:00", slots[0])
		assert.Equal(t, "19:30", slots[23])
	})

	t.Run("deterministic", func(t *testing.T) {
		first := schedule.GenerateSlots("09:00", "18:00", 30)
		second := schedule.GenerateSlots("09:00", "18:00", 30)
		assert.Equal(t, first, second)
	})

	t.Run("window not a multiple of the interval", func(t *testing.T) {
		slots := schedule.GenerateSlots("09:00", "10:15", 30)
		assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slots)
	})

	t.Run("exact end excluded", func(t *testing.T) {
		slots := schedule.GenerateSlots("09:00", "10:00", 30)
		assert.Equal(t, []string{"09:00", "09:30"}, slots)
	})

	cases := []struct {
		name     string
		start    string
		end      string
		interval int
	}{
		{name: "inverted window", start: "20:00", end: "08:00", interval: 30},
		{name: "empty window", start: "09:00", end: "09:00", interval: 30},
		{name: "zero interval", start: "09:00", end: "18:00", interval: 0},
		{name: "negative interval", start: "09:00", end: "18:00", interval: -15},
		{name: "garbage start", start: "morning", end: "18:00", interval: 30},
		{name: "garbage end", start: "09:00", end: "", interval: 30},
		{name: "hours out of range", start: "25:00", end: "26:00", interval: 30},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Empty(t, schedule.GenerateSlots(c.start, c.end, c.interval))
		})
	}
}

func TestIsWorkDay(t *testing.T) {
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)

	t.Run("empty set fails open", func(t *testing.T) {
		for d := 0; d < 7; d++ {
			assert.True(t, schedule.IsWorkDay(monday.AddDate(0, 0, d), nil))
			assert.True(t, schedule.IsWorkDay(monday.AddDate(0, 0, d), []int{}))
		}
	})

	t.Run("member day", func(t *testing.T) {
		workDays := []int{1, 2, 3, 4, 5, 6} // closed Sundays
		assert.True(t, schedule.IsWorkDay(monday, workDays))
		assert.False(t, schedule.IsWorkDay(sunday, workDays))
	})
}

func TestWeekDays(t *testing.T) {
	t.Run("normalizes to the preceding Sunday", func(t *testing.T) {
		wednesday := time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)
		days := schedule.WeekDays(wednesday)

		require.Len(t, days, 14)
		assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), days[0])
		assert.Equal(t, time.Date(2024, 6, 22, 0, 0, 0, 0, time.UTC), days[13])
		for i, d := range days {
			assert.Equal(t, days[0].AddDate(0, 0, i), d)
		}
	})

	t.Run("sunday anchor stays put", func(t *testing.T) {
		sunday := time.Date(2024, 6, 9, 8, 0, 0, 0, time.UTC)
		days := schedule.WeekDays(sunday)
		assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), days[0])
	})
}
