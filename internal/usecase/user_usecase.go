package usecase

import (
	"context"

	"linkvault/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines account management operations. Deletion comes in two
// explicit flavors: SafeDelete soft-deletes and keeps the row for audit,
// RemoveDeleted purges a previously soft-deleted account for good.
type UserUsecase interface {
	// GetByID retrieves one user.
	GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// SafeDelete closes the user's sessions, stamps deleted_at and
	// obfuscates the email so the unique slot frees up.
	SafeDelete(ctx context.Context, userID uuid.UUID) error

	// RemoveDeleted hard-deletes a soft-deleted account and its sessions.
	// It refuses to touch accounts that are still live.
	RemoveDeleted(ctx context.Context, userID uuid.UUID) error
}
