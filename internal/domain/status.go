package domain

import (
	"errors"

	"barber-agenda/internal/pkg/errs"
)

var ErrInvalidTransition = errs.Mark(errors.New("invalid status transition"), errs.ErrValidation)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

func (s AppointmentStatus) String() string {
	return string(s)
}

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

func (s PaymentStatus) IsValid() bool {
	return s == PaymentPending || s == PaymentPaid
}

type PaymentMethod string

const (
	MethodCash  PaymentMethod = "CASH"
	MethodPix   PaymentMethod = "PIX"
	MethodCard  PaymentMethod = "CARD"
	MethodOther PaymentMethod = "OTHER"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodPix, MethodCard, MethodOther:
		return true
	default:
		return false
	}
}

// CanCancel reports whether an appointment in the current status may move to
// CANCELLED. Only scheduled appointments can be cancelled; the record is
// retained afterwards.
func CanCancel(current AppointmentStatus) error {
	if current != StatusScheduled {
		return ErrInvalidTransition
	}
	return nil
}

// CanComplete reports whether an appointment may move to COMPLETED.
func CanComplete(current AppointmentStatus) error {
	if current != StatusScheduled {
		return ErrInvalidTransition
	}
	return nil
}

func InitialStatus() AppointmentStatus {
	return StatusScheduled
}
