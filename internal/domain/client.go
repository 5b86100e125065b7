package domain

import (
	"errors"
	"strings"

	"barber-agenda/internal/pkg/errs"
)

var ErrEmptyClientName = errs.Mark(errors.New("client name is required"), errs.ErrValidation)

// Client identity is the opaque generated ID. Duplicate names and phones are
// allowed; the shop owner is the only writer.
type Client struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

func (c Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyClientName
	}
	return nil
}
