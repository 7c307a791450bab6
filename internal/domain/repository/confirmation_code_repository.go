package repository

import (
	"context"
	"time"

	"linkvault/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCodeNotFound is returned when a confirmation code does not exist.
var ErrCodeNotFound = errors.New("confirmation code not found")

// ConfirmationCodeRepository defines persistence operations for one-time
// confirmation codes (email verification, password recovery).
type ConfirmationCodeRepository interface {
	// Create persists a new unused code.
	Create(ctx context.Context, code *entity.ConfirmationCode) error

	// FindByCode retrieves a code record by its code string, preloading the
	// owning user.
	FindByCode(ctx context.Context, code string) (*entity.ConfirmationCode, error)

	// FindActiveByUser retrieves the most recently created unused code for a
	// user; older unused codes are considered superseded.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.ConfirmationCode, error)

	// MarkUsed consumes a code. A used code never drives a state change again.
	MarkUsed(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes codes whose expiry lies before the given moment,
	// returning the number of rows swept.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
