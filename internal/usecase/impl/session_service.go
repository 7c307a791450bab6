// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "linkvault/internal/delivery/context"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/repository"
	"linkvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface. It owns the session
// state machine: OPEN_ACTIVE -> OPEN_INACTIVE on logout or mass revocation,
// any state -> CLOSED on explicit termination, and CLOSED is terminal.
type sessionService struct {
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo repository.SessionRepository
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo: params.SessionRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create inserts a new open, active session row.
func (srv *sessionService) Create(ctx context.Context, userID uuid.UUID, ip string) (*entity.Session, error) {
	session := &entity.Session{
		UserID:   userID,
		IP:       ip,
		IsActive: true,
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to create session", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Debug("Session created", slog.Any("sessionID", session.ID), slog.Any("userID", userID))

	return session, nil
}

// GetOrCreate fetches the supplied session or falls back to the newest
// active session for the same user and ip, creating a fresh row only when
// neither exists. Reviving a closed session is refused; the client must log
// in without a session id.
func (srv *sessionService) GetOrCreate(ctx context.Context, sessionID *uuid.UUID, userID uuid.UUID, ip string) (*entity.Session, error) {
	if sessionID == nil {
		session, err := srv.sessionRepo.FindActive(ctx, userID, ip)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(err, "failed to find active session")
		}

		return srv.Create(ctx, userID, ip)
	}

	session, err := srv.GetByID(ctx, *sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsClosed {
		return nil, domainerrors.ErrSessionClosed
	}
	if session.UserID != userID {
		srv.log(ctx).Warn("Session ownership mismatch on login", slog.Any("sessionID", *sessionID), slog.Any("userID", userID))

		return nil, domainerrors.ErrSessionNotFound
	}

	return session, nil
}

// GetByID fetches one session.
func (srv *sessionService) GetByID(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return session, nil
}

// Revive clears the expired marker on the session. Storage failures are
// surfaced, not swallowed: the caller needs a correctly revived session.
func (srv *sessionService) Revive(ctx context.Context, sessionID uuid.UUID) error {
	if err := srv.sessionRepo.Revive(ctx, sessionID); err != nil {
		srv.log(ctx).Warn("Failed to revive session", slog.Any("sessionID", sessionID), slog.Any("error", err))

		return domainerrors.ErrSessionRevive.WithDetails(err.Error())
	}

	return nil
}

// IsUsable reports whether the session may mint or validate tokens.
func (srv *sessionService) IsUsable(session *entity.Session) bool {
	return session != nil && session.IsActive && !session.IsClosed
}

// Close marks the session inactive (logout).
func (srv *sessionService) Close(ctx context.Context, sessionID uuid.UUID) error {
	if err := srv.sessionRepo.Deactivate(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrSessionMissing
		}

		return errors.Wrap(err, "failed to close session")
	}

	srv.log(ctx).Info("Session closed", slog.Any("sessionID", sessionID))

	return nil
}

// CloseAll marks all of a user's sessions inactive, optionally scoped to one IP.
func (srv *sessionService) CloseAll(ctx context.Context, userID uuid.UUID, ip string) (int64, error) {
	count, err := srv.sessionRepo.DeactivateAll(ctx, userID, ip)
	if err != nil {
		return 0, errors.Wrap(err, "failed to close sessions")
	}

	srv.log(ctx).Info("Sessions closed", slog.Any("userID", userID), slog.Int64("count", count))

	return count, nil
}

// Terminate sets the terminal closed flag after verifying ownership.
func (srv *sessionService) Terminate(ctx context.Context, userID, sessionID uuid.UUID) error {
	session, err := srv.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionNotFound) {
			return domainerrors.ErrSessionMissing
		}

		return err
	}
	if session.UserID != userID {
		return domainerrors.ErrSessionMissing
	}

	if err := srv.sessionRepo.MarkClosed(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrSessionMissing
		}

		return errors.Wrap(err, "failed to terminate session")
	}

	srv.log(ctx).Info("Session terminated", slog.Any("sessionID", sessionID))

	return nil
}

// List retrieves all of a user's sessions, newest first.
func (srv *sessionService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error) {
	sessions, err := srv.sessionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return sessions, nil
}

// StoreTokenSnapshot persists the freshly minted payload pair onto the
// session row and mirrors it on the in-memory entity.
func (srv *sessionService) StoreTokenSnapshot(ctx context.Context, session *entity.Session, access, refresh entity.TokenPayload) error {
	if err := srv.sessionRepo.UpdateSnapshots(ctx, session.ID, access, refresh); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrSessionNotFound
		}
		if errors.Is(err, repository.ErrSessionTerminal) {
			return domainerrors.ErrSessionClosed
		}

		return errors.Wrap(err, "failed to store token snapshots")
	}

	session.AuthTokenData = access
	session.RefreshTokenData = refresh

	return nil
}
