package domain

import (
	"errors"
	"strings"

	"barber-agenda/internal/pkg/errs"
)

var (
	ErrEmptyServiceName = errs.Mark(errors.New("service name is required"), errs.ErrValidation)
	ErrNegativePrice    = errs.Mark(errors.New("price cannot be negative"), errs.ErrValidation)
	ErrInvalidDuration  = errs.Mark(errors.New("duration must be positive"), errs.ErrValidation)
)

// Service is a catalog entry. Duration sizes the slot grid for display only;
// it does not constrain appointment placement.
type Service struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           Money  `json:"price"`
}

func (s Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyServiceName
	}
	if s.Price.IsNegative() {
		return ErrNegativePrice
	}
	if s.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	return nil
}
