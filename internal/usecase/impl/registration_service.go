package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"linkvault/config"
	deliverycontext "linkvault/internal/delivery/context"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/repository"
	"linkvault/internal/domain/service"
	"linkvault/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Redemption windows. Recovery codes are short-lived: they grant a password
// overwrite, not just a verified flag.
const (
	confirmationCodeTTL = time.Hour
	recoveryCodeTTL     = 5 * time.Minute
)

// registrationService implements the RegistrationUsecase interface.
type registrationService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	codeRepo  repository.ConfirmationCodeRepository
	hasher    service.PasswordHasher
	mailer    service.Mailer
	mailCfg   *config.MailerConfig
	logger    *slog.Logger
}

// RegistrationServiceParams holds dependencies for registrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	CodeRepo  repository.ConfirmationCodeRepository
	Hasher    service.PasswordHasher
	Mailer    service.Mailer
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		codeRepo:  params.CodeRepo,
		hasher:    params.Hasher,
		mailer:    params.Mailer,
		mailCfg:   params.Config.Mailer,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an unverified account with a hashed password and emails a
// confirmation code. The notification is sent after the transaction commits
// and its failure never rolls the registration back.
func (srv *registrationService) Register(ctx context.Context, input usecase.RegisterInput) error {
	var code *entity.ConfirmationCode

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		codeRepo := repoFactory.CodeRepo()

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		hashed, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}

		user := &entity.User{
			Email:        input.Email,
			PasswordHash: hashed,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		code, err = srv.issueCode(ctx, codeRepo, user, confirmationCodeTTL)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return err
	}

	srv.sendCode(ctx, input.Email, code, srv.mailCfg.RegistrationTplID, srv.mailCfg.SubjectVerification)

	return nil
}

// ConfirmEmail consumes a confirmation code and marks the account verified.
// An expired code is rejected and must stay unused.
func (srv *registrationService) ConfirmEmail(ctx context.Context, code string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		codeRepo := repoFactory.CodeRepo()

		record, err := srv.loadRedeemableCode(ctx, codeRepo, code)
		if err != nil {
			return err
		}

		if err := codeRepo.MarkUsed(ctx, record.ID); err != nil {
			return errors.Wrap(err, "failed to consume code")
		}

		user := record.User
		if user == nil {
			return domainerrors.ErrUserNotFound
		}
		user.EmailVerified = true
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to mark email verified")
		}

		srv.log(ctx).Info("Email confirmed", slog.Any("userID", user.ID))

		return nil
	})
}

// ResendCode re-sends the active confirmation code, minting a fresh one when
// the previous code is gone or expired.
func (srv *registrationService) ResendCode(ctx context.Context, email string) error {
	user, err := srv.findLiveUser(ctx, email)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return domainerrors.ErrValidationFailed.WithDetails("email already confirmed")
	}

	code, err := srv.activeOrFreshCode(ctx, user)
	if err != nil {
		return err
	}

	srv.sendCode(ctx, email, code, srv.mailCfg.RegistrationTplID, srv.mailCfg.SubjectVerification)

	return nil
}

// RecoverPassword emails a password recovery code to the account.
func (srv *registrationService) RecoverPassword(ctx context.Context, email string) error {
	user, err := srv.findLiveUser(ctx, email)
	if err != nil {
		return err
	}

	code, err := srv.issueCode(ctx, srv.codeRepo, user, recoveryCodeTTL)
	if err != nil {
		return err
	}

	srv.sendCode(ctx, email, code, srv.mailCfg.PasswordResetTplID, srv.mailCfg.SubjectReset)

	return nil
}

// ResetPassword consumes a recovery code, stores the new hash and closes all
// of the user's sessions.
func (srv *registrationService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	if input.NewPassword != input.RepeatPassword {
		return domainerrors.ErrPasswordMismatch
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		codeRepo := repoFactory.CodeRepo()
		sessionRepo := repoFactory.SessionRepo()

		record, err := srv.loadRedeemableCode(ctx, codeRepo, input.Code)
		if err != nil {
			return err
		}

		if err := codeRepo.MarkUsed(ctx, record.ID); err != nil {
			return errors.Wrap(err, "failed to consume code")
		}

		user := record.User
		if user == nil {
			return domainerrors.ErrUserNotFound
		}

		hashed, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}
		user.PasswordHash = hashed
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		count, err := sessionRepo.DeactivateAll(ctx, user.ID, "")
		if err != nil {
			return errors.Wrap(err, "failed to close sessions after password reset")
		}

		srv.log(ctx).Info("Password reset", slog.Any("userID", user.ID), slog.Int64("closedSessions", count))

		return nil
	})
}

// SweepExpiredCodes garbage-collects codes past their expiry.
func (srv *registrationService) SweepExpiredCodes(ctx context.Context) (int64, error) {
	count, err := srv.codeRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to sweep expired codes")
	}

	return count, nil
}

// findLiveUser loads a user by email and rejects deleted accounts.
func (srv *registrationService) findLiveUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}
	if user.IsDeleted() {
		return nil, domainerrors.ErrAccountDeleted
	}

	return user, nil
}

// loadRedeemableCode fetches a code and verifies it is unused and unexpired.
func (srv *registrationService) loadRedeemableCode(ctx context.Context, codeRepo repository.ConfirmationCodeRepository, code string) (*entity.ConfirmationCode, error) {
	record, err := codeRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return nil, domainerrors.ErrCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find code")
	}
	if record.Used {
		return nil, domainerrors.ErrCodeUsed
	}
	if record.Expired(time.Now()) {
		return nil, domainerrors.ErrCodeExpired
	}

	return record, nil
}

// activeOrFreshCode returns the user's newest unused, unexpired code, or
// mints a fresh one.
func (srv *registrationService) activeOrFreshCode(ctx context.Context, user *entity.User) (*entity.ConfirmationCode, error) {
	code, err := srv.codeRepo.FindActiveByUser(ctx, user.ID)
	if err == nil && !code.Expired(time.Now()) {
		return code, nil
	}
	if err != nil && !errors.Is(err, repository.ErrCodeNotFound) {
		return nil, errors.Wrap(err, "failed to find active code")
	}

	return srv.issueCode(ctx, srv.codeRepo, user, confirmationCodeTTL)
}

// issueCode mints and persists a fresh one-time code for the user.
func (srv *registrationService) issueCode(ctx context.Context, codeRepo repository.ConfirmationCodeRepository, user *entity.User, ttl time.Duration) (*entity.ConfirmationCode, error) {
	value, err := generateCode()
	if err != nil {
		return nil, err
	}

	code := &entity.ConfirmationCode{
		Code:      value,
		UserID:    user.ID,
		ExpiredAt: time.Now().Add(ttl),
	}
	if err := codeRepo.Create(ctx, code); err != nil {
		return nil, errors.Wrap(err, "failed to create confirmation code")
	}

	return code, nil
}

// sendCode delivers the code by email. Failures are logged and swallowed:
// notification delivery never aborts the caller's primary operation.
func (srv *registrationService) sendCode(ctx context.Context, email string, code *entity.ConfirmationCode, templateID, subject string) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.mailCfg.SendTimeout)
	defer cancel()

	mail := service.Mail{
		To:         email,
		Subject:    subject,
		TemplateID: templateID,
		Data:       map[string]string{"code": code.Code},
	}
	if err := srv.mailer.Send(sendCtx, mail); err != nil {
		srv.log(ctx).Warn("Failed to send code email", slog.String("email", email), slog.Any("error", err))
	}
}

// generateCode produces a collision-resistant random code string.
func generateCode() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate code")
	}

	return hex.EncodeToString(buf), nil
}
