// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"linkvault/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase is the single source of truth for "is this session usable".
// It manages creation, revival, closing and liveness of login sessions.
type SessionUsecase interface {
	// Create inserts a new open, active session for a (user, ip) pair.
	Create(ctx context.Context, userID uuid.UUID, ip string) (*entity.Session, error)

	// GetOrCreate fetches the session when an id is supplied and creates a
	// fresh one otherwise. A supplied id that matches no row is an error, as
	// is a supplied id of a closed session.
	GetOrCreate(ctx context.Context, sessionID *uuid.UUID, userID uuid.UUID, ip string) (*entity.Session, error)

	// GetByID fetches one session.
	GetByID(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error)

	// Revive clears the expired marker so the session is usable again.
	Revive(ctx context.Context, sessionID uuid.UUID) error

	// IsUsable reports whether the session may mint or validate tokens.
	IsUsable(session *entity.Session) bool

	// Close marks the session inactive (logout).
	Close(ctx context.Context, sessionID uuid.UUID) error

	// CloseAll marks all of a user's sessions inactive, optionally scoped to
	// one IP; returns the number of sessions affected. Used on password
	// change and account deletion.
	CloseAll(ctx context.Context, userID uuid.UUID, ip string) (int64, error)

	// Terminate sets the terminal closed flag on one of the user's sessions
	// after verifying ownership. A closed session never transitions again.
	Terminate(ctx context.Context, userID, sessionID uuid.UUID) error

	// List retrieves all of a user's sessions, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error)

	// StoreTokenSnapshot persists the freshly minted access and refresh
	// payloads onto the session row. This is the only path by which stored
	// snapshots change; the previous pair is invalid the moment it runs.
	StoreTokenSnapshot(ctx context.Context, session *entity.Session, access, refresh entity.TokenPayload) error
}
