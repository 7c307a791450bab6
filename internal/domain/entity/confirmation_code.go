package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConfirmationCode is a one-time code bound to a user for email verification
// or password recovery. A code may drive a state change at most once; only the
// most recently created unused code per user counts as active.
type ConfirmationCode struct {
	ID        uuid.UUID // The unique identifier for the code record.
	Code      string    // The code string sent to the user.
	UserID    uuid.UUID // Owning user.
	ExpiredAt time.Time // Moment after which the code is no longer accepted.
	Used      bool      // Set once the code has been consumed.
	CreatedAt time.Time // Timestamp of code creation.

	User *User // Owning user record, preloaded by code lookups.
}

// Expired reports whether the code is past its expiry at the given moment.
func (c *ConfirmationCode) Expired(now time.Time) bool {
	return now.After(c.ExpiredAt)
}
