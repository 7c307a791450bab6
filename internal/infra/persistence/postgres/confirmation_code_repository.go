// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/repository"
	"linkvault/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// confirmationCodeRepository implements the domain.ConfirmationCodeRepository interface using GORM.
type confirmationCodeRepository struct {
	db *gorm.DB
}

// NewConfirmationCodeRepository is the constructor for confirmationCodeRepository.
func NewConfirmationCodeRepository(db *gorm.DB) repository.ConfirmationCodeRepository {
	return &confirmationCodeRepository{db: db}
}

// Create persists a new unused code.
func (repo *confirmationCodeRepository) Create(ctx context.Context, code *entity.ConfirmationCode) error {
	codeM := fromConfirmationCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("code references missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create confirmation code")
	}

	// Update the entity with generated values
	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// FindByCode retrieves a code record by its code string, preloading the owning user.
func (repo *confirmationCodeRepository) FindByCode(ctx context.Context, code string) (*entity.ConfirmationCode, error) {
	var codeM model.ConfirmationCodeModel
	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("code = ?", code).
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find confirmation code")
	}

	return toConfirmationCodeDomain(&codeM), nil
}

// FindActiveByUser retrieves the most recently created unused code for a
// user; older unused codes are considered superseded.
func (repo *confirmationCodeRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.ConfirmationCode, error) {
	var codeM model.ConfirmationCodeModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND used = false", userID).
		Order("created_at DESC").
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find active confirmation code")
	}

	return toConfirmationCodeDomain(&codeM), nil
}

// MarkUsed consumes a code. The used guard keeps a consumed code from ever
// driving a second state change.
func (repo *confirmationCodeRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConfirmationCodeModel{}).
		Where("id = ? AND used = false", id).
		Update("used", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark code used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCodeNotFound
	}

	return nil
}

// DeleteExpired removes codes whose expiry lies before the given moment,
// returning the number of rows swept.
func (repo *confirmationCodeRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expired_at < ?", before).
		Delete(&model.ConfirmationCodeModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired codes")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toConfirmationCodeDomain converts a GORM ConfirmationCodeModel to a domain entity.
func toConfirmationCodeDomain(data *model.ConfirmationCodeModel) *entity.ConfirmationCode {
	if data == nil {
		return nil
	}

	return &entity.ConfirmationCode{
		ID:        data.ID,
		Code:      data.Code,
		UserID:    data.UserID,
		ExpiredAt: data.ExpiredAt,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
		User:      toUserDomain(data.User),
	}
}

// fromConfirmationCodeDomain converts a domain entity to a GORM ConfirmationCodeModel.
func fromConfirmationCodeDomain(data *entity.ConfirmationCode) *model.ConfirmationCodeModel {
	if data == nil {
		return nil
	}

	return &model.ConfirmationCodeModel{
		ID:        data.ID,
		Code:      data.Code,
		UserID:    data.UserID,
		ExpiredAt: data.ExpiredAt,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
	}
}
