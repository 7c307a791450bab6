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

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetByID retrieves one user.
func (srv *userService) GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// SafeDelete closes the user's sessions and soft-deletes the account. The
// obfuscated email frees the unique slot for re-registration while the row
// stays for audit history.
func (srv *userService) SafeDelete(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		sessionRepo := repoFactory.SessionRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}
		if user.IsDeleted() {
			return domainerrors.ErrUserAlreadyDeleted
		}

		count, err := sessionRepo.DeactivateAll(ctx, userID, "")
		if err != nil {
			return errors.Wrap(err, "failed to close sessions before deletion")
		}

		if err := userRepo.SoftDelete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to soft delete user")
		}

		srv.log(ctx).Info("User soft deleted", slog.Any("userID", userID), slog.Int64("closedSessions", count))

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to soft delete user", slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	return nil
}

// RemoveDeleted hard-deletes a soft-deleted account and its sessions. Live
// accounts must go through SafeDelete first.
func (srv *userService) RemoveDeleted(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		sessionRepo := repoFactory.SessionRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}
		if !user.IsDeleted() {
			return domainerrors.ErrValidationFailed.WithDetails("account is not soft-deleted")
		}

		if err := sessionRepo.DeleteByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete sessions")
		}

		if err := userRepo.HardDelete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to hard delete user")
		}

		srv.log(ctx).Info("User hard deleted", slog.Any("userID", userID))

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to hard delete user", slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	return nil
}
