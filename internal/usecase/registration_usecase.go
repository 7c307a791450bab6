package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
}

// ResetPasswordInput defines the data required to reset a forgotten password
// using a recovery code.
type ResetPasswordInput struct {
	Code           string
	NewPassword    string
	RepeatPassword string
}

// RegistrationUsecase defines account registration and recovery operations:
// sign-up, email confirmation and password recovery via one-time codes.
type RegistrationUsecase interface {
	// Register creates an unverified account and emails a confirmation code.
	Register(ctx context.Context, input RegisterInput) error

	// ConfirmEmail consumes a confirmation code and marks the account
	// verified. An expired code is rejected and stays unused.
	ConfirmEmail(ctx context.Context, code string) error

	// ResendCode re-sends the active confirmation code, minting a fresh one
	// when the previous code has expired.
	ResendCode(ctx context.Context, email string) error

	// RecoverPassword emails a password recovery code.
	RecoverPassword(ctx context.Context, email string) error

	// ResetPassword consumes a recovery code, stores the new password hash
	// and closes all of the user's sessions.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	// SweepExpiredCodes garbage-collects codes past their expiry, returning
	// the number of rows removed.
	SweepExpiredCodes(ctx context.Context) (int64, error)
}
