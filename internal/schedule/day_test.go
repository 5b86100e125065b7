//go:build unit

package schedule_test

import (
	"testing"

	"barber-agenda/internal/domain"
	"barber-agenda/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apt(id, at string, status domain.AppointmentStatus, createdAt int64) domain.Appointment {
	return domain.Appointment{
		ID:            id,
		ClientID:      "c1",
		Date:          "2024-06-10",
		Time:          at,
		Status:        status,
		Price:         domain.MoneyFromAmount(35),
		PaymentStatus: domain.PaymentPending,
		CreatedAt:     createdAt,
	}
}

func TestBuildDay(t *testing.T) {
	slots := []string{"09:00", "09:30", "10:00"}

	t.Run("exact time match occupies the slot", func(t *testing.T) {
		day := schedule.BuildDay(slots, []domain.Appointment{
			apt("a1", "09:00", domain.StatusScheduled, 1),
		})

		require.Len(t, day, 3)
		require.True(t, day[0].Occupied())
		assert.Equal(t, "a1", day[0].Appointment.ID)
		assert.False(t, day[1].Occupied())
		assert.False(t, day[2].Occupied())
	})

	t.Run("cancelled appointments free their slot", func(t *testing.T) {
		day := schedule.BuildDay(slots, []domain.Appointment{
			apt("a1", "09:00", domain.StatusCancelled, 1),
		})
		assert.False(t, day[0].Occupied())
	})

	t.Run("off-grid times occupy nothing", func(t *testing.T) {
		day := schedule.BuildDay(slots, []domain.Appointment{
			apt("a1", "09:15", domain.StatusScheduled, 1),
		})
		for _, s := range day {
			assert.False(t, s.Occupied())
		}
	})

	t.Run("duplicate slot picks the earliest created regardless of input order", func(t *testing.T) {
		first := apt("b2", "09:00", domain.StatusScheduled, 100)
		second := apt("a1", "09:00", domain.StatusScheduled, 200)

		day := schedule.BuildDay(slots, []domain.Appointment{first, second})
		require.True(t, day[0].Occupied())
		assert.Equal(t, "b2", day[0].Appointment.ID)

		reversed := schedule.BuildDay(slots, []domain.Appointment{second, first})
		assert.Equal(t, "b2", reversed[0].Appointment.ID)
	})

	t.Run("createdAt tie breaks on id", func(t *testing.T) {
		day := schedule.BuildDay(slots, []domain.Appointment{
			apt("b2", "09:00", domain.StatusScheduled, 100),
			apt("a1", "09:00", domain.StatusScheduled, 100),
		})
		require.True(t, day[0].Occupied())
		assert.Equal(t, "a1", day[0].Appointment.ID)
	})
}

func TestDuplicateTimes(t *testing.T) {
	t.Run("flags only times with competing active appointments", func(t *testing.T) {
		dups := schedule.DuplicateTimes([]domain.Appointment{
			apt("a1", "09:00", domain.StatusScheduled, 1),
			apt("a2", "09:00", domain.StatusScheduled, 2),
			apt("a3", "10:00", domain.StatusScheduled, 3),
			apt("a4", "11:00", domain.StatusScheduled, 4),
			apt("a5", "11:00", domain.StatusCancelled, 5),
		})
		assert.Equal(t, []string{"09:00"}, dups)
	})

	t.Run("clean day reports nothing", func(t *testing.T) {
		assert.Empty(t, schedule.DuplicateTimes([]domain.Appointment{
			apt("a1", "09:00", domain.StatusScheduled, 1),
		}))
	})
}
