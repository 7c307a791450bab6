package auth

import (
	"context"
	"testing"

	"linkvault/internal/domain/entity"
	apperrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserLookup struct {
	user  *entity.User
	err   error
	calls int
}

func (f *fakeUserLookup) FindByID(_ context.Context, _ uuid.UUID) (*entity.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	return f.user, nil
}

type fakeReviver struct {
	err     error
	revived []uuid.UUID
}

func (f *fakeReviver) Revive(_ context.Context, sessionID uuid.UUID) error {
	f.revived = append(f.revived, sessionID)

	return f.err
}

func testSession(t *testing.T) *entity.Session {
	t.Helper()

	return &entity.Session{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		IP:       "10.0.0.1",
		IsActive: true,
	}
}

func TestPayloadBuilder_Build_ResolvesDescriptors(t *testing.T) {
	session := testSession(t)
	users := &fakeUserLookup{user: &entity.User{ID: session.UserID, Email: "reader@example.com"}}
	reviver := &fakeReviver{}
	builder := NewPayloadBuilder(NewUserSchema("user", "user_info"), users, reviver)

	payload, err := builder.Build(context.Background(), session, nil)
	require.NoError(t, err)

	assert.Equal(t, "user", payload.Scope())
	assert.Equal(t, session.ID.String(), payload.UserInfoField("user_info", entity.FieldSessionID))
	assert.Equal(t, session.UserID.String(), payload.UserInfoField("user_info", entity.FieldUserID))
	assert.Equal(t, "reader@example.com", payload.UserInfoField("user_info", entity.FieldEmail))
	assert.Equal(t, entity.RoleUser, payload[entity.PayloadKeyRole])

	// Building always revives the referenced session.
	require.Len(t, reviver.revived, 1)
	assert.Equal(t, session.ID, reviver.revived[0])
}

func TestPayloadBuilder_Build_ReusesPreviousPayload(t *testing.T) {
	session := testSession(t)
	users := &fakeUserLookup{user: &entity.User{ID: session.UserID, Email: "stale@example.com"}}
	reviver := &fakeReviver{}
	builder := NewPayloadBuilder(NewUserSchema("user", "user_info"), users, reviver)

	previous := entity.TokenPayload{
		"user_info": map[string]any{
			entity.FieldSessionID: session.ID.String(),
			entity.FieldUserID:    session.UserID.String(),
			entity.FieldEmail:     "original@example.com",
		},
		entity.PayloadKeyScope: "user",
		entity.PayloadKeyRole:  entity.RoleUser,
	}

	payload, err := builder.Build(context.Background(), session, previous)
	require.NoError(t, err)

	// Rotation trusts the last-known snapshot: no descriptor is re-resolved.
	assert.Equal(t, 0, users.calls)
	assert.Equal(t, "original@example.com", payload.UserInfoField("user_info", entity.FieldEmail))

	// The reused payload is a copy, not an alias of the previous one.
	payload.UserInfo("user_info")[entity.FieldEmail] = "mutated@example.com"
	assert.Equal(t, "original@example.com", previous.UserInfoField("user_info", entity.FieldEmail))

	require.Len(t, reviver.revived, 1)
	assert.Equal(t, session.ID, reviver.revived[0])
}

func TestPayloadBuilder_Build_ScopeMismatchRebuilds(t *testing.T) {
	session := testSession(t)
	users := &fakeUserLookup{user: &entity.User{ID: session.UserID, Email: "reader@example.com"}}
	builder := NewPayloadBuilder(NewUserSchema("user", "user_info"), users, &fakeReviver{})

	previous := entity.TokenPayload{
		"user_info": map[string]any{
			entity.FieldSessionID: session.ID.String(),
			entity.FieldUserID:    session.UserID.String(),
			entity.FieldEmail:     "admin@example.com",
		},
		entity.PayloadKeyScope: "admin",
		entity.PayloadKeyRole:  entity.RoleAdmin,
	}

	payload, err := builder.Build(context.Background(), session, previous)
	require.NoError(t, err)

	// The email field and the role claim each follow the user relation.
	assert.Equal(t, 2, users.calls)
	assert.Equal(t, "user", payload.Scope())
	assert.Equal(t, "reader@example.com", payload.UserInfoField("user_info", entity.FieldEmail))
}

func TestPayloadBuilder_Build_MissingFieldRebuilds(t *testing.T) {
	session := testSession(t)
	users := &fakeUserLookup{user: &entity.User{ID: session.UserID, Email: "reader@example.com"}}
	builder := NewPayloadBuilder(NewUserSchema("user", "user_info"), users, &fakeReviver{})

	previous := entity.TokenPayload{
		"user_info": map[string]any{
			entity.FieldSessionID: session.ID.String(),
		},
		entity.PayloadKeyScope: "user",
		entity.PayloadKeyRole:  entity.RoleUser,
	}

	_, err := builder.Build(context.Background(), session, previous)
	require.NoError(t, err)
	assert.Equal(t, 2, users.calls)
}

func TestPayloadBuilder_Build_MintsRoleClaim(t *testing.T) {
	session := testSession(t)
	reviver := &fakeReviver{}

	admin := &fakeUserLookup{user: &entity.User{ID: session.UserID, Email: "ops@example.com", IsAdmin: true}}
	payload, err := NewPayloadBuilder(NewAdminSchema("admin", "user_info"), admin, reviver).
		Build(context.Background(), session, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, payload[entity.PayloadKeyRole])

	plain := &fakeUserLookup{user: &entity.User{ID: session.UserID, Email: "reader@example.com"}}
	payload, err = NewPayloadBuilder(NewUserSchema("user", "user_info"), plain, reviver).
		Build(context.Background(), session, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, payload[entity.PayloadKeyRole])
}

func TestPayloadBuilder_Build_MissingRoleClaimRebuilds(t *testing.T) {
	session := testSession(t)
	users := &fakeUserLookup{user: &entity.User{ID: session.UserID, Email: "reader@example.com"}}
	builder := NewPayloadBuilder(NewUserSchema("user", "user_info"), users, &fakeReviver{})

	// A snapshot minted before the role claim existed must not be reused.
	previous := entity.TokenPayload{
		"user_info": map[string]any{
			entity.FieldSessionID: session.ID.String(),
			entity.FieldUserID:    session.UserID.String(),
			entity.FieldEmail:     "original@example.com",
		},
		entity.PayloadKeyScope: "user",
	}

	payload, err := builder.Build(context.Background(), session, previous)
	require.NoError(t, err)
	assert.Positive(t, users.calls)
	assert.Equal(t, entity.RoleUser, payload[entity.PayloadKeyRole])
	assert.Equal(t, "reader@example.com", payload.UserInfoField("user_info", entity.FieldEmail))
}

func TestPayloadBuilder_Build_ReviveFailureAborts(t *testing.T) {
	session := testSession(t)
	users := &fakeUserLookup{user: &entity.User{ID: session.UserID, Email: "reader@example.com"}}
	reviver := &fakeReviver{err: errors.New("row gone")}
	builder := NewPayloadBuilder(NewUserSchema("user", "user_info"), users, reviver)

	payload, err := builder.Build(context.Background(), session, nil)
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, apperrors.ErrSessionRevive)
}

func TestPayloadBuilder_Build_UserLookupFailure(t *testing.T) {
	session := testSession(t)
	users := &fakeUserLookup{err: repository.ErrUserNotFound}
	builder := NewPayloadBuilder(NewUserSchema("user", "user_info"), users, &fakeReviver{})

	_, err := builder.Build(context.Background(), session, nil)
	assert.ErrorIs(t, err, ErrLookupFailure)
}

func TestSchema_EditableFields(t *testing.T) {
	schema := NewUserSchema("user", "user_info")
	assert.Equal(t, []string{entity.FieldEmail}, schema.EditableFields())

	// Admin schema binds the same field names without editable tags.
	admin := NewAdminSchema("admin", "user_info")
	assert.Empty(t, admin.EditableFields())
}

func TestRelatedField_OptionalMissingUser(t *testing.T) {
	session := testSession(t)
	users := &fakeUserLookup{err: repository.ErrUserNotFound}

	value, err := RelatedField{Field: UserFieldEmail, Optional: true}.Resolve(context.Background(), session, users)
	require.NoError(t, err)
	assert.Nil(t, value)
}
