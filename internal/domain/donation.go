package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Donation is money given by a user that is spread over open projects
type Donation struct {
	Investment
	UserID  uuid.UUID
	Comment string
}

// Validate ensures the donation adheres to domain rules
func (d *Donation) Validate() error {
	if d.UserID == uuid.Nil {
		return errors.New("donation must reference a user")
	}
	return d.Investment.Validate()
}
