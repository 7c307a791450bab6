package auth

import (
	"context"

	"linkvault/config"
	"linkvault/internal/domain/entity"
	apperrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// SessionReviver clears the expired marker on a session row.
// repository.SessionRepository satisfies it.
type SessionReviver interface {
	Revive(ctx context.Context, sessionID uuid.UUID) error
}

// payloadBuilder assembles token payloads for one scope by walking the
// schema's descriptors in declared order.
type payloadBuilder struct {
	schema   *Schema
	users    UserLookup
	sessions SessionReviver
}

// NewPayloadBuilder is the constructor for payloadBuilder.
func NewPayloadBuilder(schema *Schema, users UserLookup, sessions SessionReviver) service.PayloadBuilder {
	return &payloadBuilder{
		schema:   schema,
		users:    users,
		sessions: sessions,
	}
}

// NewPayloadBuilders wires one builder per configured scope. The user and
// admin schemas name the same fields, so downstream extraction stays
// scope-agnostic.
func NewPayloadBuilders(cfg *config.Config, users UserLookup, sessions SessionReviver) service.PayloadBuilders {
	userProperty := cfg.JWT.UserProperty

	return service.PayloadBuilders{
		cfg.JWT.ScopeUser:  NewPayloadBuilder(NewUserSchema(cfg.JWT.ScopeUser, userProperty), users, sessions),
		cfg.JWT.ScopeAdmin: NewPayloadBuilder(NewAdminSchema(cfg.JWT.ScopeAdmin, userProperty), users, sessions),
	}
}

// Build produces the finished payload for the session. When previous carries
// the same field shape it is reused verbatim and no descriptor is
// re-resolved. Building always revives the referenced session; a failed
// revive aborts the build.
func (b *payloadBuilder) Build(ctx context.Context, session *entity.Session, previous entity.TokenPayload) (entity.TokenPayload, error) {
	payload, err := b.assemble(ctx, session, previous)
	if err != nil {
		return nil, err
	}

	if err := b.reviveFromPayload(ctx, payload); err != nil {
		return nil, err
	}

	return payload, nil
}

func (b *payloadBuilder) assemble(ctx context.Context, session *entity.Session, previous entity.TokenPayload) (entity.TokenPayload, error) {
	if b.matchesShape(previous) {
		return previous.Clone(), nil
	}

	userInfo := make(map[string]any, len(b.schema.Fields))
	for _, field := range b.schema.Fields {
		value, err := field.Descriptor.Resolve(ctx, session, b.users)
		if err != nil {
			return nil, errors.Wrapf(err, "resolve payload field %q", field.Name)
		}
		userInfo[field.Name] = value
	}

	payload := entity.TokenPayload{
		b.schema.UserProperty:  userInfo,
		entity.PayloadKeyScope: b.schema.Scope,
	}
	for _, claim := range b.schema.Claims {
		value, err := claim.Descriptor.Resolve(ctx, session, b.users)
		if err != nil {
			return nil, errors.Wrapf(err, "resolve payload claim %q", claim.Name)
		}
		payload[claim.Name] = value
	}

	return payload, nil
}

// matchesShape reports whether a previously issued payload carries the same
// scope, every schema field and every top-level claim, making it safe to
// reuse without re-resolving.
func (b *payloadBuilder) matchesShape(previous entity.TokenPayload) bool {
	if previous == nil {
		return false
	}
	if previous.Scope() != b.schema.Scope {
		return false
	}

	userInfo := previous.UserInfo(b.schema.UserProperty)
	if userInfo == nil {
		return false
	}
	for _, field := range b.schema.Fields {
		if _, ok := userInfo[field.Name]; !ok {
			return false
		}
	}
	for _, claim := range b.schema.Claims {
		if _, ok := previous[claim.Name]; !ok {
			return false
		}
	}

	return true
}

func (b *payloadBuilder) reviveFromPayload(ctx context.Context, payload entity.TokenPayload) error {
	raw := payload.UserInfoField(b.schema.UserProperty, entity.FieldSessionID)
	sessionID, err := uuid.Parse(raw)
	if err != nil {
		return apperrors.ErrSessionRevive.WithDetails("payload carries no parseable session id")
	}

	if err := b.sessions.Revive(ctx, sessionID); err != nil {
		return apperrors.ErrSessionRevive.WithDetails(err.Error())
	}

	return nil
}
