// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role names carried in token payloads.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an identity record. Email is the login identifier; it is nullable
// in storage and unique among live rows. A soft-deleted user keeps its row
// for audit history but must never authenticate again.
type User struct {
	ID            uuid.UUID  // The unique identifier for the user.
	Email         string     // The user's email address, empty when the account has none.
	PasswordHash  string     // Peppered bcrypt hash of the user's password.
	EmailVerified bool       // Whether the email address has been confirmed.
	IsAdmin       bool       // Server-side entitlement gating admin-scope token issuance.
	DeletedAt     *time.Time // Soft-delete timestamp; non-nil means the account is gone.
	CreatedAt     time.Time  // Timestamp of account creation.
	UpdatedAt     time.Time  // Timestamp of the last modification.
}

// IsDeleted reports whether the account has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// Role returns the role name stamped into token payloads.
func (u *User) Role() string {
	if u.IsAdmin {
		return RoleAdmin
	}

	return RoleUser
}
