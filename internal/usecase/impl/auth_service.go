package impl

import (
	"context"
	"log/slog"

	"linkvault/config"
	deliverycontext "linkvault/internal/delivery/context"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/repository"
	"linkvault/internal/domain/service"
	"linkvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	sessions     usecase.SessionUsecase
	hasher       service.PasswordHasher
	codec        service.TokenCodec
	builders     service.PayloadBuilders
	userProperty string
	adminScope   string
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Sessions  usecase.SessionUsecase
	Hasher    service.PasswordHasher
	Codec     service.TokenCodec
	Builders  service.PayloadBuilders
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		sessions:     params.Sessions,
		hasher:       params.Hasher,
		codec:        params.Codec,
		builders:     params.Builders,
		userProperty: params.Config.JWT.UserProperty,
		adminScope:   params.Config.JWT.ScopeAdmin,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login validates the credential chain, obtains a session and mints a fresh
// token pair. The validation order is fixed: unknown account, deleted
// account, unverified account, then password.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrWrongCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if user.IsDeleted() {
		srv.log(ctx).Warn("Login attempt on deleted account", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrAccountDeleted
	}
	if !user.EmailVerified {
		return nil, domainerrors.ErrAccountNotVerified
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrWrongCredentials
	}

	// The scope is a request, not a grant: the admin builder is reachable
	// only for accounts holding the admin entitlement.
	if input.Scope == srv.adminScope && !user.IsAdmin {
		srv.log(ctx).Warn("Admin scope requested without entitlement", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInsufficientPrivileges
	}

	session, err := srv.sessions.GetOrCreate(ctx, input.SessionID, user.ID, input.IP)
	if err != nil {
		return nil, err
	}

	pair, err := srv.mintPair(ctx, session, input.Scope, nil)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID), slog.Any("sessionID", session.ID))

	return pair, nil
}

// Refresh rotates a token pair. The checks run in fixed order: verify
// signature, look up the session, require it active, then match the stored
// refresh correlation id. Storing the new snapshot is what revokes the
// previous pair.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPairOutput, error) {
	payload, err := srv.codec.DecodeAndVerify(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrInvalidRefreshToken
	}

	sessionID, err := uuid.Parse(payload.UserInfoField(srv.userProperty, entity.FieldSessionID))
	if err != nil {
		return nil, domainerrors.ErrInvalidRefreshToken
	}

	session, err := srv.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionDoesNotExist
		}

		return nil, err
	}
	if !session.IsActive {
		return nil, domainerrors.ErrSessionNotActive
	}

	stored := session.RefreshTokenData.CorrelationID(entity.PayloadKeyRefreshUUID)
	presented := payload.CorrelationID(entity.PayloadKeyRefreshUUID)
	if stored == "" || stored != presented {
		srv.log(ctx).Warn("Refresh token superseded", slog.Any("sessionID", session.ID))

		return nil, domainerrors.ErrInvalidRefreshToken
	}

	// Reuse the presented payload for the new pair; correlation ids are
	// stripped here and re-stamped by the codec.
	previous := payload.Clone()
	delete(previous, entity.PayloadKeyAccessUUID)
	delete(previous, entity.PayloadKeyRefreshUUID)

	pair, err := srv.mintPair(ctx, session, payload.Scope(), previous)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Token pair rotated", slog.Any("sessionID", session.ID))

	return pair, nil
}

// Logout marks the session inactive. The session row stays open so a
// supplied-session-id login can revive it later.
func (srv *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return srv.sessions.Close(ctx, sessionID)
}

// ChangePassword verifies the old password, stores the new hash and closes
// every session of the user. The mismatch check runs before any mutation.
func (srv *authService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	if input.NewPassword != input.RepeatPassword {
		return domainerrors.ErrPasswordMismatch
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		sessionRepo := repoFactory.SessionRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}
		if user.IsDeleted() {
			return domainerrors.ErrAccountDeleted
		}
		if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
			return domainerrors.ErrIncorrectPassword
		}

		hashed, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}

		user.PasswordHash = hashed
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		// Mass revocation: every session of the user goes inactive.
		count, err := sessionRepo.DeactivateAll(ctx, input.UserID, "")
		if err != nil {
			return errors.Wrap(err, "failed to close sessions after password change")
		}

		srv.log(ctx).Info("Password changed", slog.Any("userID", input.UserID), slog.Int64("closedSessions", count))

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to change password", slog.Any("userID", input.UserID), slog.Any("error", err))

		return err
	}

	return nil
}

// mintPair builds the payload for the session's scope, encodes both tokens
// and persists the enriched snapshots.
func (srv *authService) mintPair(ctx context.Context, session *entity.Session, scope string, previous entity.TokenPayload) (*usecase.TokenPairOutput, error) {
	builder, ok := srv.builders.ForScope(scope)
	if !ok {
		return nil, domainerrors.ErrInvalidScope
	}

	payload, err := builder.Build(ctx, session, previous)
	if err != nil {
		return nil, err
	}

	authToken, accessPayload, err := srv.codec.EncodeAccess(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode access token")
	}
	refreshToken, refreshPayload, err := srv.codec.EncodeRefresh(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode refresh token")
	}

	if err := srv.sessions.StoreTokenSnapshot(ctx, session, accessPayload, refreshPayload); err != nil {
		return nil, err
	}

	return &usecase.TokenPairOutput{
		AuthToken:    authToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
	}, nil
}
