// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/repository"
	"linkvault/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain.SessionRepository interface using GORM.
// Closed sessions are terminal: every mutating statement below carries an
// is_closed guard so no update path can resurrect one.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new open, active session row.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)
	sessionM.IsActive = true
	sessionM.IsClosed = false
	sessionM.IsExpired = false

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("session references missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	// Update the entity with generated values
	session.ID = sessionM.ID
	session.IsActive = sessionM.IsActive
	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// FindByID retrieves a session by its unique ID.
func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by id")
	}

	return toSessionDomain(&sessionM), nil
}

// FindActive retrieves the newest open, active session for a (user, ip) pair.
func (repo *sessionRepository) FindActive(ctx context.Context, userID uuid.UUID, ip string) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND ip = ? AND is_active = true AND is_closed = false", userID, ip).
		Order("created_at DESC").
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active session")
	}

	return toSessionDomain(&sessionM), nil
}

// ListByUser retrieves all sessions belonging to a user, newest first.
func (repo *sessionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error) {
	var sessionModels []*model.SessionModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	sessions := make([]*entity.Session, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toSessionDomain(sessionM))
	}

	return sessions, nil
}

// Revive clears the expired marker on an open session. Closed rows are never
// touched; the caller gets ErrSessionTerminal instead.
func (repo *sessionRepository) Revive(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ? AND is_closed = false", id).
		Update("is_expired", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to revive session")
	}
	if result.RowsAffected == 0 {
		return repo.classifyMiss(ctx, id)
	}

	return nil
}

// Deactivate sets is_active=false on one session.
func (repo *sessionRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// DeactivateAll sets is_active=false on all of a user's sessions, optionally
// scoped to one originating IP. Returns the number of affected rows.
func (repo *sessionRepository) DeactivateAll(ctx context.Context, userID uuid.UUID, ip string) (int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("user_id = ? AND is_active = true", userID)
	if ip != "" {
		query = query.Where("ip = ?", ip)
	}

	result := query.Update("is_active", false)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate sessions")
	}

	return result.RowsAffected, nil
}

// MarkClosed sets the terminal is_closed flag on one session and deactivates
// it in the same statement.
func (repo *sessionRepository) MarkClosed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_closed": true,
			"is_active": false,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to close session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// UpdateSnapshots persists the last-issued access and refresh payload
// snapshots. This is the only path by which stored snapshots change.
func (repo *sessionRepository) UpdateSnapshots(ctx context.Context, id uuid.UUID, access, refresh entity.TokenPayload) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ? AND is_closed = false", id).
		Updates(map[string]any{
			"auth_token_data":    access,
			"refresh_token_data": refresh,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store token snapshots")
	}
	if result.RowsAffected == 0 {
		return repo.classifyMiss(ctx, id)
	}

	return nil
}

// DeleteByUser removes all session rows of a user (hard account deletion).
func (repo *sessionRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.SessionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete sessions")
	}

	return nil
}

// classifyMiss distinguishes "row does not exist" from "row is closed" after
// a guarded update matched nothing.
func (repo *sessionRepository) classifyMiss(ctx context.Context, id uuid.UUID) error {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).
		Select("id", "is_closed").
		Where("id = ?", id).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrSessionNotFound
		}

		return errors.Wrap(err, "failed to inspect session")
	}
	if sessionM.IsClosed {
		return repository.ErrSessionTerminal
	}

	return nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:               data.ID,
		UserID:           data.UserID,
		IP:               data.IP,
		IsActive:         data.IsActive,
		IsClosed:         data.IsClosed,
		IsExpired:        data.IsExpired,
		AuthTokenData:    data.AuthTokenData,
		RefreshTokenData: data.RefreshTokenData,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:               data.ID,
		UserID:           data.UserID,
		IP:               data.IP,
		IsActive:         data.IsActive,
		IsClosed:         data.IsClosed,
		IsExpired:        data.IsExpired,
		AuthTokenData:    data.AuthTokenData,
		RefreshTokenData: data.RefreshTokenData,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
