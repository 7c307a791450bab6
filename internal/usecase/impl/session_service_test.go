package impl

import (
	"context"
	"testing"

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

func newSessionServiceFixture(t *testing.T) (usecase.SessionUsecase, *mockRepo.MockSessionRepository) {
	t.Helper()

	sessionRepo := mockRepo.NewMockSessionRepository(t)
	service := NewSessionService(SessionServiceParams{
		SessionRepo: sessionRepo,
		Logger:      newDiscardLogger(),
	})

	return service, sessionRepo
}

func TestSessionService_Create(t *testing.T) {
	service, sessionRepo := newSessionServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) {
			assert.Equal(t, userID, session.UserID)
			assert.Equal(t, "203.0.113.7", session.IP)
			assert.True(t, session.IsActive)
			assert.False(t, session.IsClosed)
			session.ID = uuid.New()
		}).
		Return(nil)

	session, err := service.Create(ctx, userID, "203.0.113.7")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, session.ID)
}

func TestSessionService_GetOrCreate_NilIDCreatesFresh(t *testing.T) {
	service, sessionRepo := newSessionServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	sessionRepo.EXPECT().FindActive(ctx, userID, "203.0.113.7").Return(nil, repository.ErrSessionNotFound)
	sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)

	session, err := service.GetOrCreate(ctx, nil, userID, "203.0.113.7")

	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)
}

func TestSessionService_GetOrCreate_NilIDReusesActiveSession(t *testing.T) {
	service, sessionRepo := newSessionServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	existing := &entity.Session{ID: uuid.New(), UserID: userID, IP: "203.0.113.7", IsActive: true}

	// No Create expectation: the existing row is reused.
	sessionRepo.EXPECT().FindActive(ctx, userID, "203.0.113.7").Return(existing, nil)

	session, err := service.GetOrCreate(ctx, nil, userID, "203.0.113.7")

	require.NoError(t, err)
	assert.Equal(t, existing, session)
}

func TestSessionService_GetOrCreate_ClosedSessionRefused(t *testing.T) {
	service, sessionRepo := newSessionServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(&entity.Session{
		ID:       sessionID,
		UserID:   userID,
		IsClosed: true,
	}, nil)

	_, err := service.GetOrCreate(ctx, &sessionID, userID, "203.0.113.7")

	assert.True(t, errors.Is(err, domainerrors.ErrSessionClosed))
}

func TestSessionService_GetOrCreate_OwnershipMismatch(t *testing.T) {
	service, sessionRepo := newSessionServiceFixture(t)
	ctx := context.Background()
	sessionID := uuid.New()

	sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(&entity.Session{
		ID:     sessionID,
		UserID: uuid.New(),
	}, nil)

	_, err := service.GetOrCreate(ctx, &sessionID, uuid.New(), "203.0.113.7")

	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestSessionService_GetByID_NotFound(t *testing.T) {
	service, sessionRepo := newSessionServiceFixture(t)
	ctx := context.Background()
	sessionID := uuid.New()

	sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(nil, repository.ErrSessionNotFound)

	_, err := service.GetByID(ctx, sessionID)

	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestSessionService_Revive_FailureSurfaced(t *testing.T) {
	service, sessionRepo := newSessionServiceFixture(t)
	ctx := context.Background()
	sessionID := uuid.New()

	sessionRepo.EXPECT().Revive(ctx, sessionID).Return(errors.New("db down"))

	err := service.Revive(ctx, sessionID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionRevive))
}

func TestSessionService_IsUsable(t *testing.T) {
	service, _ := newSessionServiceFixture(t)

	tests := []struct {
		name    string
		session *entity.Session
		want    bool
	}{
		{name: "nil", session: nil, want: false},
		{name: "active open", session: &entity.Session{IsActive: true}, want: true},
		{name: "inactive", session: &entity.Session{IsActive: false}, want: false},
		{name: "closed", session: &entity.Session{IsActive: true, IsClosed: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.IsUsable(tt.session))
		})
	}
}

func TestSessionService_Close_NotFound(t *testing.T) {
	service, sessionRepo := newSessionServiceFixture(t)
	ctx := context.Background()
	sessionID := uuid.New()

	sessionRepo.EXPECT().Deactivate(ctx, sessionID).Return(repository.ErrSessionNotFound)

	err := service.Close(ctx, sessionID)

	assert.True(t, errors.Is(err, domainerrors.ErrSessionMissing))
}

func TestSessionService_CloseAll(t *testing.T) {
	service, sessionRepo := newSessionServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	sessionRepo.EXPECT().DeactivateAll(ctx, userID, "203.0.113.7").Return(int64(3), nil)

	count, err := service.CloseAll(ctx, userID, "203.0.113.7")

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestSessionService_Terminate_Success(t *testing.T) {
	service, sessionRepo := newSessionServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(&entity.Session{
		ID:     sessionID,
		UserID: userID,
	}, nil)
	sessionRepo.EXPECT().MarkClosed(ctx, sessionID).Return(nil)

	require.NoError(t, service.Terminate(ctx, userID, sessionID))
}

func TestSessionService_Terminate_OtherUsersSessionHidden(t *testing.T) {
	service, sessionRepo := newSessionServiceFixture(t)
	ctx := context.Background()
	sessionID := uuid.New()

	// No MarkClosed expectation: ownership failure must not mutate the row.
	sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(&entity.Session{
		ID:     sessionID,
		UserID: uuid.New(),
	}, nil)

	err := service.Terminate(ctx, uuid.New(), sessionID)

	assert.True(t, errors.Is(err, domainerrors.ErrSessionMissing))
}

func TestSessionService_Terminate_NotFound(t *testing.T) {
	service, sessionRepo := newSessionServiceFixture(t)
	ctx := context.Background()
	sessionID := uuid.New()

	sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(nil, repository.ErrSessionNotFound)

	err := service.Terminate(ctx, uuid.New(), sessionID)

	assert.True(t, errors.Is(err, domainerrors.ErrSessionMissing))
}

func TestSessionService_List(t *testing.T) {
	service, sessionRepo := newSessionServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	stored := []*entity.Session{{ID: uuid.New()}, {ID: uuid.New()}}
	sessionRepo.EXPECT().ListByUser(ctx, userID).Return(stored, nil)

	sessions, err := service.List(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, stored, sessions)
}

func TestSessionService_StoreTokenSnapshot_MirrorsPayloads(t *testing.T) {
	service, sessionRepo := newSessionServiceFixture(t)
	ctx := context.Background()

	session := &entity.Session{ID: uuid.New(), IsActive: true}
	access := entity.TokenPayload{entity.PayloadKeyAccessUUID: "a-1"}
	refresh := entity.TokenPayload{entity.PayloadKeyRefreshUUID: "r-1"}

	sessionRepo.EXPECT().UpdateSnapshots(ctx, session.ID, access, refresh).Return(nil)

	require.NoError(t, service.StoreTokenSnapshot(ctx, session, access, refresh))
	assert.Equal(t, access, session.AuthTokenData)
	assert.Equal(t, refresh, session.RefreshTokenData)
}

func TestSessionService_StoreTokenSnapshot_TerminalSession(t *testing.T) {
	service, sessionRepo := newSessionServiceFixture(t)
	ctx := context.Background()

	session := &entity.Session{ID: uuid.New()}

	sessionRepo.EXPECT().
		UpdateSnapshots(ctx, session.ID, mock.Anything, mock.Anything).
		Return(repository.ErrSessionTerminal)

	err := service.StoreTokenSnapshot(ctx, session, entity.TokenPayload{}, entity.TokenPayload{})

	assert.True(t, errors.Is(err, domainerrors.ErrSessionClosed))
	assert.Nil(t, session.AuthTokenData)
}
