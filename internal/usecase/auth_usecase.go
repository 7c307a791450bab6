package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in. SessionID is
// optional; when supplied the existing session is revived instead of a new
// row being created. Scope selects the token schema; the admin scope is
// granted only to accounts holding the admin entitlement.
type LoginInput struct {
	Email     string
	Password  string
	SessionID *uuid.UUID
	IP        string
	Scope     string
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	UserID         uuid.UUID
	OldPassword    string
	NewPassword    string
	RepeatPassword string
}

// --- Output DTOs ---

// TokenPairOutput returns the freshly minted credential pair.
type TokenPairOutput struct {
	AuthToken    string
	RefreshToken string
	SessionID    uuid.UUID
}

// AuthUsecase defines the credential lifecycle operations exposed to the
// delivery layer: login, rotation, logout and password change.
type AuthUsecase interface {
	// Login validates credentials, obtains a session and mints a token pair.
	Login(ctx context.Context, input LoginInput) (*TokenPairOutput, error)

	// Refresh rotates a token pair. The presented refresh token must carry
	// the correlation id stored on its session; the previous pair becomes
	// invalid the instant the new pair is persisted.
	Refresh(ctx context.Context, refreshToken string) (*TokenPairOutput, error)

	// Logout marks the session inactive.
	Logout(ctx context.Context, sessionID uuid.UUID) error

	// ChangePassword verifies the old password, stores the new hash and
	// closes all of the user's sessions.
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
}
