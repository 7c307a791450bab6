// Package middleware provides the HTTP request gate: bearer extraction, token
// verification and the session cross-checks that make rotation revoke old
// tokens.
package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"linkvault/config"
	deliverycontext "linkvault/internal/delivery/context"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/service"
	"linkvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Context keys under which the gate stores the admitted identity.
const (
	ContextKeyUserID    = "userID"
	ContextKeySessionID = "sessionID"
	ContextKeyPayload   = "tokenPayload"
)

const bearerScheme = "Bearer"

// AuthGate authenticates requests against issued access tokens. Every check
// runs in a fixed order and short-circuits on failure: scheme, signature,
// scope, role, session existence, session liveness, correlation id, terminal
// closure. The correlation-id comparison against the session's stored access
// snapshot is what actually revokes a rotated-out token.
type AuthGate struct {
	codec        service.TokenCodec
	sessions     usecase.SessionUsecase
	userProperty string
	logger       *slog.Logger
}

// AuthGateParams holds dependencies for AuthGate, injected by Fx.
type AuthGateParams struct {
	fx.In

	Config   *config.Config
	Codec    service.TokenCodec
	Sessions usecase.SessionUsecase
	Logger   *slog.Logger
}

// NewAuthGate creates the authentication gate middleware.
func NewAuthGate(params AuthGateParams) *AuthGate {
	return &AuthGate{
		codec:        params.Codec,
		sessions:     params.Sessions,
		userProperty: params.Config.JWT.UserProperty,
		logger:       params.Logger,
	}
}

// Require returns middleware that admits only requests carrying a valid access
// token of the given scope. When roles are supplied, the token's role claim
// must be a member of the set.
func (g *AuthGate) Require(scope string, roles ...string) echo.MiddlewareFunc {
	return g.middleware(scope, roles, false)
}

// Optional returns middleware that lets credential-less requests through as
// anonymous. A presented credential still runs the full check chain.
func (g *AuthGate) Optional(scope string, roles ...string) echo.MiddlewareFunc {
	return g.middleware(scope, roles, true)
}

func (g *AuthGate) middleware(scope string, roles []string, optional bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				if optional {
					return next(c)
				}

				return domainerrors.ErrWrongCredentials
			}

			if err := g.authenticate(c, header, scope, roles); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// authenticate runs the ordered check chain for one presented credential and,
// on success, stores the admitted identity on the request context.
func (g *AuthGate) authenticate(c echo.Context, header, scope string, roles []string) error {
	token, err := extractBearerToken(header)
	if err != nil {
		return err
	}

	payload, err := g.codec.DecodeAndVerify(token)
	if err != nil {
		g.log(c).Debug("Token verification failed", slog.Any("error", err))

		return domainerrors.ErrInvalidToken
	}

	if payload.Scope() != scope {
		return domainerrors.ErrInvalidScope
	}

	if len(roles) > 0 {
		role, _ := payload[entity.PayloadKeyRole].(string)
		if !slices.Contains(roles, role) {
			return domainerrors.ErrInsufficientPrivileges
		}
	}

	session, err := g.lookupSession(c, payload)
	if err != nil {
		return err
	}

	if !session.IsActive {
		return domainerrors.ErrSessionInactive
	}

	// The stored access snapshot names the only live access token. A token
	// minted before the last rotation carries a stale correlation id.
	storedID := session.AuthTokenData.CorrelationID(entity.PayloadKeyAccessUUID)
	presentedID := payload.CorrelationID(entity.PayloadKeyAccessUUID)
	if storedID == "" || storedID != presentedID {
		return domainerrors.ErrTokenSuperseded
	}

	if session.IsClosed {
		return domainerrors.ErrSessionClosed
	}

	return g.admit(c, payload, session)
}

// lookupSession resolves the session named in the token's user-info object.
func (g *AuthGate) lookupSession(c echo.Context, payload entity.TokenPayload) (*entity.Session, error) {
	raw := payload.UserInfoField(g.userProperty, entity.FieldSessionID)
	sessionID, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrSessionNotFound
	}

	session, err := g.sessions.GetByID(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}
		g.log(c).Error("Session lookup failed", slog.Any("sessionID", sessionID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up session")
	}

	return session, nil
}

// admit stores the verified identity for downstream handlers.
func (g *AuthGate) admit(c echo.Context, payload entity.TokenPayload, session *entity.Session) error {
	userID, err := uuid.Parse(payload.UserInfoField(g.userProperty, entity.FieldUserID))
	if err != nil {
		return domainerrors.ErrInvalidToken
	}

	c.Set(ContextKeyUserID, userID)
	c.Set(ContextKeySessionID, session.ID)
	c.Set(ContextKeyPayload, payload)

	return nil
}

func (g *AuthGate) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), g.logger)
}

// extractBearerToken validates the authorization scheme and returns the
// compact token string.
func extractBearerToken(header string) (string, error) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != bearerScheme {
		return "", domainerrors.ErrWrongCredentials
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", domainerrors.ErrWrongCredentials
	}

	return token, nil
}
