package domain

import (
	"errors"
	"time"

	"barber-agenda/internal/pkg/errs"
)

var (
	ErrMissingClient = errs.Mark(errors.New("appointment needs a client"), errs.ErrValidation)
	ErrInvalidDate   = errs.Mark(errors.New("date must be YYYY-MM-DD"), errs.ErrValidation)
	ErrInvalidTime   = errs.Mark(errors.New("time must be HH:mm"), errs.ErrValidation)
	ErrInvalidStatus = errs.Mark(errors.New("invalid appointment status"), errs.ErrValidation)
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Appointment pins a client to an exact (date, time) slot. Price is a
// snapshot taken when the appointment is created or edited; later catalog
// price changes never touch it.
type Appointment struct {
	ID            string            `json:"id"`
	ClientID      string            `json:"clientId"`
	ServiceIDs    []string          `json:"serviceIds"`
	Date          string            `json:"date"`
	Time          string            `json:"time"`
	Status        AppointmentStatus `json:"status"`
	Price         Money             `json:"price"`
	PaymentStatus PaymentStatus     `json:"paymentStatus"`
	PaymentMethod PaymentMethod     `json:"paymentMethod,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	CreatedAt     int64             `json:"createdAt"`
}

func (a Appointment) Validate() error {
	if a.ClientID == "" {
		return ErrMissingClient
	}
	if !ValidDate(a.Date) {
		return ErrInvalidDate
	}
	if !ValidTime(a.Time) {
		return ErrInvalidTime
	}
	if !a.Status.IsValid() {
		return ErrInvalidStatus
	}
	if !a.PaymentStatus.IsValid() {
		return ErrInvalidStatus
	}
	if a.PaymentMethod != "" && !a.PaymentMethod.IsValid() {
		return ErrInvalidStatus
	}
	if a.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

func (a Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CountsForRevenue reports whether the appointment participates in revenue
// aggregates. Cancelled records are excluded everywhere; completed ones are
// tracked but not treated specially.
func (a Appointment) CountsForRevenue() bool {
	return a.Status != StatusCancelled
}

// Cancel moves a scheduled appointment to CANCELLED.
func (a *Appointment) Cancel() error {
	if err := CanCancel(a.Status); err != nil {
		return err
	}
	a.Status = StatusCancelled
	return nil
}

// Complete moves a scheduled appointment to COMPLETED.
func (a *Appointment) Complete() error {
	if err := CanComplete(a.Status); err != nil {
		return err
	}
	a.Status = StatusCompleted
	return nil
}

// ValidDate accepts exactly zero-padded YYYY-MM-DD.
func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

// ValidTime accepts exactly zero-padded 24-hour HH:mm.
func ValidTime(s string) bool {
	t, err := time.Parse(TimeLayout, s)
	return err == nil && t.Format(TimeLayout) == s
}
