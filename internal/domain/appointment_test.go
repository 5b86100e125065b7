//go:build unit

package domain_test

import (
	"testing"

	"barber-agenda/internal/domain"
	"barber-agenda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAppointment() domain.Appointment {
	return domain.Appointment{
		ID:            "a1",
		ClientID:      "c1",
		ServiceIDs:    []string{"1"},
		Date:          "2024-06-10",
		Time:          "09:00",
		Status:        domain.StatusScheduled,
		Price:         domain.MoneyFromAmount(35),
		PaymentStatus: domain.PaymentPending,
		CreatedAt:     1718000000000,
	}
}

func TestAppointmentValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validAppointment().Validate())
	})

	cases := []struct {
		name   string
		mutate func(*domain.Appointment)
		errIs  error
	}{
		{
			name:   "missing client",
			mutate: func(a *domain.Appointment) { a.ClientID = "" },
			errIs:  domain.ErrMissingClient,
		},
		{
			name:   "unpadded date",
			mutate: func(a *domain.Appointment) { a.Date = "2024-6-10" },
			errIs:  domain.ErrInvalidDate,
		},
		{
			name:   "date with time",
			mutate: func(a *domain.Appointment) { a.Date = "2024-06-10T09:00" },
			errIs:  domain.ErrInvalidDate,
		},
		{
			name:   "unpadded time",
			mutate: func(a *domain.Appointment) { a.Time = "9:00" },
			errIs:  domain.ErrInvalidTime,
		},
		{
			name:   "out of range time",
			mutate: func(a *domain.Appointment) { a.Time = "24:00" },
			errIs:  domain.ErrInvalidTime,
		},
		{
			name:   "unknown status",
			mutate: func(a *domain.Appointment) { a.Status = "BOOKED" },
			errIs:  domain.ErrInvalidStatus,
		},
		{
			name:   "unknown payment method",
			mutate: func(a *domain.Appointment) { a.PaymentMethod = "CHEQUE" },
			errIs:  domain.ErrInvalidStatus,
		},
		{
			name:   "negative price",
			mutate: func(a *domain.Appointment) { a.Price = -1 },
			errIs:  domain.ErrNegativePrice,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := validAppointment()
			c.mutate(&a)
			err := a.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, c.errIs)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestAppointmentTransitions(t *testing.T) {
	t.Run("scheduled can cancel", func(t *testing.T) {
		a := validAppointment()
		require.NoError(t, a.Cancel())
		assert.Equal(t, domain.StatusCancelled, a.Status)
		assert.False(t, a.CountsForRevenue())
	})

	t.Run("scheduled can complete", func(t *testing.T) {
		a := validAppointment()
		require.NoError(t, a.Complete())
		assert.Equal(t, domain.StatusCompleted, a.Status)
		assert.True(t, a.CountsForRevenue())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		a := validAppointment()
		require.NoError(t, a.Cancel())
		assert.ErrorIs(t, a.Cancel(), domain.ErrInvalidTransition)
		assert.ErrorIs(t, a.Complete(), domain.ErrInvalidTransition)
	})

	t.Run("completed cannot cancel", func(t *testing.T) {
		a := validAppointment()
		require.NoError(t, a.Complete())
		assert.ErrorIs(t, a.Cancel(), domain.ErrInvalidTransition)
	})
}
