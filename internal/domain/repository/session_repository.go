package repository

import (
	"context"

	"linkvault/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session row does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionTerminal is returned when an update targets a closed session.
	ErrSessionTerminal = errors.New("session is closed")
)

// SessionRepository defines persistence operations for login sessions.
// A closed session is terminal: no update below may flip is_closed back,
// and Revive must refuse to touch closed rows.
type SessionRepository interface {
	// Create persists a new open, active session row.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// FindActive retrieves the open, active session for a (user, ip) pair, if any.
	FindActive(ctx context.Context, userID uuid.UUID, ip string) (*entity.Session, error)

	// ListByUser retrieves all sessions belonging to a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error)

	// Revive clears the expired marker on an open session. It returns
	// ErrSessionTerminal when the row is closed and surfaces storage errors
	// unchanged; callers decide whether a failure is recoverable.
	Revive(ctx context.Context, id uuid.UUID) error

	// Deactivate sets is_active=false on one session.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// DeactivateAll sets is_active=false on all of a user's sessions,
	// optionally scoped to one IP (empty means all). Returns affected rows.
	DeactivateAll(ctx context.Context, userID uuid.UUID, ip string) (int64, error)

	// MarkClosed sets the terminal is_closed flag on one session.
	MarkClosed(ctx context.Context, id uuid.UUID) error

	// UpdateSnapshots persists the last-issued access and refresh payload
	// snapshots; this is the only path by which stored snapshots change.
	UpdateSnapshots(ctx context.Context, id uuid.UUID, access, refresh entity.TokenPayload) error

	// DeleteByUser removes all session rows of a user (hard account deletion).
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
