package impl

import (
	"context"
	"testing"
	"time"

	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/repository"
	mockRepo "linkvault/internal/mocks/repository"
	"linkvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserServiceFixture(t *testing.T) (usecase.UserUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockUserRepository) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    newDiscardLogger(),
	})

	return service, txManager, userRepo
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	service, _, userRepo := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := service.GetByID(ctx, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_SafeDelete_Success(t *testing.T) {
	service, txManager, _ := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: "user@example.com"}, nil)
			mockSessionRepo.EXPECT().DeactivateAll(ctx, userID, "").Return(int64(2), nil)
			mockUserRepo.EXPECT().SoftDelete(ctx, userID).Return(nil)

			return fn(mockFactory)
		})

	require.NoError(t, service.SafeDelete(ctx, userID))
}

func TestUserService_SafeDelete_AlreadyDeleted(t *testing.T) {
	service, txManager, _ := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	deletedAt := time.Now()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			// No DeactivateAll or SoftDelete expectations: a second delete
			// must leave the account untouched.
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, DeletedAt: &deletedAt}, nil)

			return fn(mockFactory)
		})

	err := service.SafeDelete(ctx, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyDeleted))
}

func TestUserService_RemoveDeleted_RequiresSoftDeletedAccount(t *testing.T) {
	service, txManager, _ := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

			return fn(mockFactory)
		})

	err := service.RemoveDeleted(ctx, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_RemoveDeleted_Success(t *testing.T) {
	service, txManager, _ := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	deletedAt := time.Now()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, DeletedAt: &deletedAt}, nil)
			mockSessionRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
			mockUserRepo.EXPECT().HardDelete(ctx, userID).Return(nil)

			return fn(mockFactory)
		})

	require.NoError(t, service.RemoveDeleted(ctx, userID))
}
