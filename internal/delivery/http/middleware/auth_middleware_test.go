package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"linkvault/config"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/service"
	"linkvault/internal/infra/auth"
	mockUsecase "linkvault/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserProperty = "user_info"

func newTestCodec(t *testing.T) service.TokenCodec {
	t.Helper()

	codec, err := auth.NewJWTCodec(&config.Config{
		JWT: &config.JWTConfig{
			SecretKey:    "gate-test-secret",
			AccessTTL:    time.Hour,
			RefreshTTL:   time.Hour,
			UserProperty: testUserProperty,
		},
	})
	require.NoError(t, err)

	return codec
}

func newTestGate(t *testing.T) (*AuthGate, *mockUsecase.MockSessionUsecase, service.TokenCodec) {
	t.Helper()

	codec := newTestCodec(t)
	sessions := mockUsecase.NewMockSessionUsecase(t)
	gate := NewAuthGate(AuthGateParams{
		Config: &config.Config{
			JWT: &config.JWTConfig{UserProperty: testUserProperty},
		},
		Codec:    codec,
		Sessions: sessions,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return gate, sessions, codec
}

// mintAccessToken signs an access token for the session and returns the wire
// string plus the enriched payload that would be stored as the snapshot.
func mintAccessToken(t *testing.T, codec service.TokenCodec, sessionID, userID uuid.UUID, scope string, extra map[string]any) (string, entity.TokenPayload) {
	t.Helper()

	payload := entity.TokenPayload{
		testUserProperty: map[string]any{
			entity.FieldSessionID: sessionID.String(),
			entity.FieldUserID:    userID.String(),
			entity.FieldEmail:     "user@example.com",
		},
		entity.PayloadKeyScope: scope,
	}
	for k, v := range extra {
		payload[k] = v
	}

	token, enriched, err := codec.EncodeAccess(payload)
	require.NoError(t, err)

	return token, enriched
}

func runGate(t *testing.T, middleware echo.MiddlewareFunc, authorization string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := middleware(func(c echo.Context) error {
		c.Set("handled", true)

		return c.NoContent(http.StatusOK)
	})

	return c, handler(c)
}

func TestAuthGate_AdmitsValidToken(t *testing.T) {
	gate, sessions, codec := newTestGate(t)

	sessionID := uuid.New()
	userID := uuid.New()
	token, enriched := mintAccessToken(t, codec, sessionID, userID, "user", nil)

	sessions.EXPECT().GetByID(mock.Anything, sessionID).Return(&entity.Session{
		ID:            sessionID,
		UserID:        userID,
		IsActive:      true,
		AuthTokenData: enriched,
	}, nil)

	c, err := runGate(t, gate.Require("user"), "Bearer "+token)

	require.NoError(t, err)
	assert.Equal(t, true, c.Get("handled"))
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
	assert.Equal(t, sessionID, c.Get(ContextKeySessionID))
	assert.NotNil(t, c.Get(ContextKeyPayload))
}

func TestAuthGate_MissingCredentialRejected(t *testing.T) {
	gate, _, _ := newTestGate(t)

	_, err := runGate(t, gate.Require("user"), "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrWrongCredentials))
}

func TestAuthGate_MissingCredentialAllowedWhenOptional(t *testing.T) {
	gate, _, _ := newTestGate(t)

	c, err := runGate(t, gate.Optional("user"), "")

	require.NoError(t, err)
	assert.Equal(t, true, c.Get("handled"))
	assert.Nil(t, c.Get(ContextKeyUserID))
}

func TestAuthGate_WrongSchemeRejected(t *testing.T) {
	gate, _, codec := newTestGate(t)

	token, _ := mintAccessToken(t, codec, uuid.New(), uuid.New(), "user", nil)

	_, err := runGate(t, gate.Require("user"), "Basic "+token)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrWrongCredentials))
}

func TestAuthGate_UnverifiableTokenRejected(t *testing.T) {
	gate, _, _ := newTestGate(t)

	_, err := runGate(t, gate.Require("user"), "Bearer not.a.token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthGate_ScopeMismatchRejected(t *testing.T) {
	gate, _, codec := newTestGate(t)

	token, _ := mintAccessToken(t, codec, uuid.New(), uuid.New(), "user", nil)

	_, err := runGate(t, gate.Require("admin"), "Bearer "+token)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidScope))
}

func TestAuthGate_RoleNotInAllowedSetRejected(t *testing.T) {
	gate, _, codec := newTestGate(t)

	token, _ := mintAccessToken(t, codec, uuid.New(), uuid.New(), "user", map[string]any{"role": "viewer"})

	_, err := runGate(t, gate.Require("user", "editor", "owner"), "Bearer "+token)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientPrivileges))
}

func TestAuthGate_RoleMemberAdmitted(t *testing.T) {
	gate, sessions, codec := newTestGate(t)

	sessionID := uuid.New()
	userID := uuid.New()
	token, enriched := mintAccessToken(t, codec, sessionID, userID, "user", map[string]any{"role": "editor"})

	sessions.EXPECT().GetByID(mock.Anything, sessionID).Return(&entity.Session{
		ID:            sessionID,
		UserID:        userID,
		IsActive:      true,
		AuthTokenData: enriched,
	}, nil)

	c, err := runGate(t, gate.Require("user", "editor", "owner"), "Bearer "+token)

	require.NoError(t, err)
	assert.Equal(t, true, c.Get("handled"))
}

func TestAuthGate_SessionNotFoundRejected(t *testing.T) {
	gate, sessions, codec := newTestGate(t)

	sessionID := uuid.New()
	token, _ := mintAccessToken(t, codec, sessionID, uuid.New(), "user", nil)

	sessions.EXPECT().GetByID(mock.Anything, sessionID).Return(nil, domainerrors.ErrSessionNotFound)

	_, err := runGate(t, gate.Require("user"), "Bearer "+token)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestAuthGate_LoggedOutSessionFailsAtInactiveStep(t *testing.T) {
	gate, sessions, codec := newTestGate(t)

	sessionID := uuid.New()
	userID := uuid.New()
	token, enriched := mintAccessToken(t, codec, sessionID, userID, "user", nil)

	// Logout flips is_active; the stored snapshot still matches, so the
	// rejection must come from the liveness check, not the correlation check.
	sessions.EXPECT().GetByID(mock.Anything, sessionID).Return(&entity.Session{
		ID:            sessionID,
		UserID:        userID,
		IsActive:      false,
		AuthTokenData: enriched,
	}, nil)

	_, err := runGate(t, gate.Require("user"), "Bearer "+token)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInactive))
}

func TestAuthGate_RotatedOutTokenFailsAtCorrelationStep(t *testing.T) {
	gate, sessions, codec := newTestGate(t)

	sessionID := uuid.New()
	userID := uuid.New()
	oldToken, _ := mintAccessToken(t, codec, sessionID, userID, "user", nil)
	_, newSnapshot := mintAccessToken(t, codec, sessionID, userID, "user", nil)

	// A refresh stored the new pair's snapshot; the old token's correlation
	// id no longer matches.
	sessions.EXPECT().GetByID(mock.Anything, sessionID).Return(&entity.Session{
		ID:            sessionID,
		UserID:        userID,
		IsActive:      true,
		AuthTokenData: newSnapshot,
	}, nil)

	_, err := runGate(t, gate.Require("user"), "Bearer "+oldToken)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenSuperseded))
}

func TestAuthGate_EmptyStoredSnapshotRejected(t *testing.T) {
	gate, sessions, codec := newTestGate(t)

	sessionID := uuid.New()
	userID := uuid.New()
	token, _ := mintAccessToken(t, codec, sessionID, userID, "user", nil)

	sessions.EXPECT().GetByID(mock.Anything, sessionID).Return(&entity.Session{
		ID:       sessionID,
		UserID:   userID,
		IsActive: true,
	}, nil)

	_, err := runGate(t, gate.Require("user"), "Bearer "+token)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenSuperseded))
}

func TestAuthGate_ClosedSessionRejected(t *testing.T) {
	gate, sessions, codec := newTestGate(t)

	sessionID := uuid.New()
	userID := uuid.New()
	token, enriched := mintAccessToken(t, codec, sessionID, userID, "user", nil)

	sessions.EXPECT().GetByID(mock.Anything, sessionID).Return(&entity.Session{
		ID:            sessionID,
		UserID:        userID,
		IsActive:      true,
		IsClosed:      true,
		AuthTokenData: enriched,
	}, nil)

	_, err := runGate(t, gate.Require("user"), "Bearer "+token)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionClosed))
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "lowercase scheme", header: "bearer abc", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "empty token", header: "Bearer   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := extractBearerToken(tt.header)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrWrongCredentials))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
