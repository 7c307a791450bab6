package impl

import (
	"context"
	"testing"
	"time"

	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/repository"
	"linkvault/internal/domain/service"
	mockRepo "linkvault/internal/mocks/repository"
	mockService "linkvault/internal/mocks/service"
	mockUsecase "linkvault/internal/mocks/usecase"
	"linkvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixture struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	sessions  *mockUsecase.MockSessionUsecase
	hasher    *mockService.MockPasswordHasher
	codec     *mockService.MockTokenCodec
	builder   *mockService.MockPayloadBuilder
	service   usecase.AuthUsecase
}

func newAuthServiceFixture(t *testing.T) *authServiceFixture {
	t.Helper()

	f := &authServiceFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		sessions:  mockUsecase.NewMockSessionUsecase(t),
		hasher:    mockService.NewMockPasswordHasher(t),
		codec:     mockService.NewMockTokenCodec(t),
		builder:   mockService.NewMockPayloadBuilder(t),
	}
	f.service = NewAuthService(AuthServiceParams{
		TxManager: f.txManager,
		UserRepo:  f.userRepo,
		Sessions:  f.sessions,
		Hasher:    f.hasher,
		Codec:     f.codec,
		Builders:  service.PayloadBuilders{"user": f.builder, "admin": f.builder},
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return f
}

func testTokenPayload(sessionID, userID uuid.UUID, scope string) entity.TokenPayload {
	return entity.TokenPayload{
		"user_info": map[string]any{
			entity.FieldSessionID: sessionID.String(),
			entity.FieldUserID:    userID.String(),
			entity.FieldEmail:     "user@example.com",
		},
		entity.PayloadKeyScope: scope,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	userID := uuid.New()
	sessionID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", PasswordHash: "hash", EmailVerified: true}
	session := &entity.Session{ID: sessionID, UserID: userID, IsActive: true}
	payload := testTokenPayload(sessionID, userID, "user")

	f.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	f.hasher.EXPECT().Check("secret", "hash").Return(true)
	f.sessions.EXPECT().GetOrCreate(ctx, (*uuid.UUID)(nil), userID, "10.0.0.1").Return(session, nil)
	f.builder.EXPECT().Build(ctx, session, entity.TokenPayload(nil)).Return(payload, nil)

	accessPayload := payload.Clone()
	accessPayload[entity.PayloadKeyAccessUUID] = uuid.NewString()
	refreshPayload := payload.Clone()
	refreshPayload[entity.PayloadKeyRefreshUUID] = uuid.NewString()
	f.codec.EXPECT().EncodeAccess(payload).Return("access-token", accessPayload, nil)
	f.codec.EXPECT().EncodeRefresh(payload).Return("refresh-token", refreshPayload, nil)
	f.sessions.EXPECT().StoreTokenSnapshot(ctx, session, accessPayload, refreshPayload).Return(nil)

	pair, err := f.service.Login(ctx, usecase.LoginInput{
		Email:    "user@example.com",
		Password: "secret",
		IP:       "10.0.0.1",
		Scope:    "user",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", pair.AuthToken)
	assert.Equal(t, "refresh-token", pair.RefreshToken)
	assert.Equal(t, sessionID, pair.SessionID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "x", Scope: "user"})

	assert.True(t, errors.Is(err, domainerrors.ErrWrongCredentials))
}

func TestAuthService_Login_DeletedAccountRejectedBeforePasswordCheck(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	deletedAt := time.Now()
	user := &entity.User{ID: uuid.New(), Email: "gone@example.com", PasswordHash: "hash", EmailVerified: true, DeletedAt: &deletedAt}

	// No hasher expectation: the deletion check must short-circuit even when
	// the password would have been correct.
	f.userRepo.EXPECT().FindByEmail(ctx, "gone@example.com").Return(user, nil)

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "gone@example.com", Password: "right-password", Scope: "user"})

	assert.True(t, errors.Is(err, domainerrors.ErrAccountDeleted))
}

func TestAuthService_Login_UnverifiedAccount(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "new@example.com", PasswordHash: "hash"}
	f.userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(user, nil)

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "new@example.com", Password: "x", Scope: "user"})

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotVerified))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: "hash", EmailVerified: true}
	f.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	f.hasher.EXPECT().Check("wrong", "hash").Return(false)

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "user@example.com", Password: "wrong", Scope: "user"})

	assert.True(t, errors.Is(err, domainerrors.ErrWrongCredentials))
}

func TestAuthService_Login_UnknownScope(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", PasswordHash: "hash", EmailVerified: true}
	session := &entity.Session{ID: uuid.New(), UserID: userID, IsActive: true}

	f.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	f.hasher.EXPECT().Check("secret", "hash").Return(true)
	f.sessions.EXPECT().GetOrCreate(ctx, (*uuid.UUID)(nil), userID, "").Return(session, nil)

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "user@example.com", Password: "secret", Scope: "superuser"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidScope))
}

func TestAuthService_Login_AdminScopeRequiresEntitlement(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: "hash", EmailVerified: true}

	// No session or builder expectations: a correct password must not buy an
	// admin-scope token for an account without the entitlement.
	f.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	f.hasher.EXPECT().Check("secret", "hash").Return(true)

	_, err := f.service.Login(ctx, usecase.LoginInput{
		Email:    "user@example.com",
		Password: "secret",
		Scope:    "admin",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientPrivileges))
}

func TestAuthService_Login_AdminScopeGrantedWithEntitlement(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	userID := uuid.New()
	sessionID := uuid.New()
	user := &entity.User{ID: userID, Email: "ops@example.com", PasswordHash: "hash", EmailVerified: true, IsAdmin: true}
	session := &entity.Session{ID: sessionID, UserID: userID, IsActive: true}
	payload := testTokenPayload(sessionID, userID, "admin")

	f.userRepo.EXPECT().FindByEmail(ctx, "ops@example.com").Return(user, nil)
	f.hasher.EXPECT().Check("secret", "hash").Return(true)
	f.sessions.EXPECT().GetOrCreate(ctx, (*uuid.UUID)(nil), userID, "10.0.0.1").Return(session, nil)
	f.builder.EXPECT().Build(ctx, session, entity.TokenPayload(nil)).Return(payload, nil)

	accessPayload := payload.Clone()
	accessPayload[entity.PayloadKeyAccessUUID] = uuid.NewString()
	refreshPayload := payload.Clone()
	refreshPayload[entity.PayloadKeyRefreshUUID] = uuid.NewString()
	f.codec.EXPECT().EncodeAccess(payload).Return("access-token", accessPayload, nil)
	f.codec.EXPECT().EncodeRefresh(payload).Return("refresh-token", refreshPayload, nil)
	f.sessions.EXPECT().StoreTokenSnapshot(ctx, session, accessPayload, refreshPayload).Return(nil)

	pair, err := f.service.Login(ctx, usecase.LoginInput{
		Email:    "ops@example.com",
		Password: "secret",
		IP:       "10.0.0.1",
		Scope:    "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, sessionID, pair.SessionID)
}

func TestAuthService_Refresh_Success_StripsOldCorrelationIDs(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	userID := uuid.New()
	sessionID := uuid.New()
	refreshUUID := uuid.NewString()

	presented := testTokenPayload(sessionID, userID, "user")
	presented[entity.PayloadKeyRefreshUUID] = refreshUUID

	session := &entity.Session{
		ID:               sessionID,
		UserID:           userID,
		IsActive:         true,
		RefreshTokenData: entity.TokenPayload{entity.PayloadKeyRefreshUUID: refreshUUID},
	}

	f.codec.EXPECT().DecodeAndVerify("old-refresh").Return(presented, nil)
	f.sessions.EXPECT().GetByID(ctx, sessionID).Return(session, nil)

	rebuilt := testTokenPayload(sessionID, userID, "user")
	f.builder.EXPECT().
		Build(ctx, session, mock.AnythingOfType("entity.TokenPayload")).
		Run(func(_ context.Context, _ *entity.Session, previous entity.TokenPayload) {
			// The reused payload must not leak the rotated-out correlation ids.
			assert.NotContains(t, previous, entity.PayloadKeyAccessUUID)
			assert.NotContains(t, previous, entity.PayloadKeyRefreshUUID)
		}).
		Return(rebuilt, nil)

	accessPayload := rebuilt.Clone()
	accessPayload[entity.PayloadKeyAccessUUID] = uuid.NewString()
	refreshPayload := rebuilt.Clone()
	refreshPayload[entity.PayloadKeyRefreshUUID] = uuid.NewString()
	f.codec.EXPECT().EncodeAccess(rebuilt).Return("new-access", accessPayload, nil)
	f.codec.EXPECT().EncodeRefresh(rebuilt).Return("new-refresh", refreshPayload, nil)
	f.sessions.EXPECT().StoreTokenSnapshot(ctx, session, accessPayload, refreshPayload).Return(nil)

	pair, err := f.service.Refresh(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", pair.AuthToken)
	assert.Equal(t, "new-refresh", pair.RefreshToken)
}

func TestAuthService_Refresh_BadToken(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	f.codec.EXPECT().DecodeAndVerify("garbage").Return(nil, service.ErrMalformedToken)

	_, err := f.service.Refresh(ctx, "garbage")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefreshToken))
}

func TestAuthService_Refresh_SessionMissing(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	sessionID := uuid.New()
	presented := testTokenPayload(sessionID, uuid.New(), "user")

	f.codec.EXPECT().DecodeAndVerify("refresh").Return(presented, nil)
	f.sessions.EXPECT().GetByID(ctx, sessionID).Return(nil, domainerrors.ErrSessionNotFound)

	_, err := f.service.Refresh(ctx, "refresh")

	assert.True(t, errors.Is(err, domainerrors.ErrSessionDoesNotExist))
}

func TestAuthService_Refresh_InactiveSession(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	sessionID := uuid.New()
	userID := uuid.New()
	presented := testTokenPayload(sessionID, userID, "user")

	f.codec.EXPECT().DecodeAndVerify("refresh").Return(presented, nil)
	f.sessions.EXPECT().GetByID(ctx, sessionID).Return(&entity.Session{ID: sessionID, UserID: userID}, nil)

	_, err := f.service.Refresh(ctx, "refresh")

	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotActive))
}

func TestAuthService_Refresh_SupersededCorrelationID(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	sessionID := uuid.New()
	userID := uuid.New()
	presented := testTokenPayload(sessionID, userID, "user")
	presented[entity.PayloadKeyRefreshUUID] = uuid.NewString()

	// The session stores the id of a newer pair.
	session := &entity.Session{
		ID:               sessionID,
		UserID:           userID,
		IsActive:         true,
		RefreshTokenData: entity.TokenPayload{entity.PayloadKeyRefreshUUID: uuid.NewString()},
	}

	f.codec.EXPECT().DecodeAndVerify("stale-refresh").Return(presented, nil)
	f.sessions.EXPECT().GetByID(ctx, sessionID).Return(session, nil)

	_, err := f.service.Refresh(ctx, "stale-refresh")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefreshToken))
}

func TestAuthService_Logout_DelegatesToSessionClose(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	sessionID := uuid.New()
	f.sessions.EXPECT().Close(ctx, sessionID).Return(nil)

	require.NoError(t, f.service.Logout(ctx, sessionID))
}

func TestAuthService_ChangePassword_MismatchRejectedBeforeAnyMutation(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	// No transaction expectation: nothing may be touched on mismatch.
	err := f.service.ChangePassword(ctx, usecase.ChangePasswordInput{
		UserID:         uuid.New(),
		OldPassword:    "old",
		NewPassword:    "new-password",
		RepeatPassword: "different",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "old-hash", EmailVerified: true}

	f.hasher.EXPECT().Check("old", "old-hash").Return(true)
	f.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, user).Return(nil)
			mockSessionRepo.EXPECT().DeactivateAll(ctx, userID, "").Return(int64(3), nil)

			return fn(mockFactory)
		})

	err := f.service.ChangePassword(ctx, usecase.ChangePasswordInput{
		UserID:         userID,
		OldPassword:    "old",
		NewPassword:    "new-password",
		RepeatPassword: "new-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-hash", user.PasswordHash)
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "old-hash", EmailVerified: true}

	f.hasher.EXPECT().Check("wrong", "old-hash").Return(false)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			return fn(mockFactory)
		})

	err := f.service.ChangePassword(ctx, usecase.ChangePasswordInput{
		UserID:         userID,
		OldPassword:    "wrong",
		NewPassword:    "new-password",
		RepeatPassword: "new-password",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrIncorrectPassword))
}
