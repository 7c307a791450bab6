// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"

	"linkvault/internal/domain/entity"
	"linkvault/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrLookupFailure is returned when a related-record descriptor finds no row
// and the field is not optional.
var ErrLookupFailure = errors.New("payload field lookup returned no rows")

// SessionAttr names an attribute readable directly off the session row.
type SessionAttr string

const (
	AttrSessionID SessionAttr = "id"
	AttrUserID    SessionAttr = "user_id"
	AttrIP        SessionAttr = "ip"
)

// UserField names an attribute readable off the related user row.
type UserField string

const (
	UserFieldEmail UserField = "email"
	UserFieldID    UserField = "id"
	UserFieldRole  UserField = "role"
)

// UserLookup is the narrow read surface descriptors need to follow the
// session -> user relation. repository.UserRepository satisfies it.
type UserLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// FieldDescriptor computes one payload field from a session. Resolve must be
// idempotent given unchanged backing data. Editable fields are eligible for
// live refresh when a previously issued payload is reused.
type FieldDescriptor interface {
	Resolve(ctx context.Context, session *entity.Session, users UserLookup) (any, error)
	Editable() bool
}

// SessionField reads an attribute directly off the session row. UUID values
// are rendered as canonical strings so the payload survives a JSON round trip
// unchanged.
type SessionField struct {
	Attr SessionAttr
}

func (f SessionField) Resolve(_ context.Context, session *entity.Session, _ UserLookup) (any, error) {
	switch f.Attr {
	case AttrSessionID:
		return session.ID.String(), nil
	case AttrUserID:
		return session.UserID.String(), nil
	case AttrIP:
		return session.IP, nil
	default:
		return nil, errors.Errorf("unknown session attribute %q", f.Attr)
	}
}

func (f SessionField) Editable() bool { return false }

// RelatedField looks up the session's user by equality on its id and extracts
// one field. When Optional is set, a missing row yields nil instead of
// ErrLookupFailure.
type RelatedField struct {
	Field    UserField
	Optional bool
}

func (f RelatedField) Resolve(ctx context.Context, session *entity.Session, users UserLookup) (any, error) {
	user, err := users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			if f.Optional {
				return nil, nil
			}

			return nil, errors.Wrapf(ErrLookupFailure, "user %s", session.UserID)
		}

		return nil, errors.Wrap(err, "resolve related field")
	}

	switch f.Field {
	case UserFieldEmail:
		return user.Email, nil
	case UserFieldID:
		return user.ID.String(), nil
	case UserFieldRole:
		return user.Role(), nil
	default:
		return nil, errors.Errorf("unknown user field %q", f.Field)
	}
}

func (f RelatedField) Editable() bool { return false }

// EditableSessionField is SessionField tagged editable.
type EditableSessionField struct {
	SessionField
}

func (f EditableSessionField) Editable() bool { return true }

// EditableRelatedField is RelatedField tagged editable.
type EditableRelatedField struct {
	RelatedField
}

func (f EditableRelatedField) Editable() bool { return true }

// FuncField computes its value by invoking the bound function at resolve
// time. Always re-derived, never treated as editable.
type FuncField struct {
	Fn func(ctx context.Context, session *entity.Session) (any, error)
}

func (f FuncField) Resolve(ctx context.Context, session *entity.Session, _ UserLookup) (any, error) {
	return f.Fn(ctx, session)
}

func (f FuncField) Editable() bool { return false }

// SchemaField binds one payload field name to its descriptor.
type SchemaField struct {
	Name       string
	Descriptor FieldDescriptor
}

// Schema is the per-scope token payload layout: an ordered list of field
// descriptors nested under the user property, plus top-level claim
// descriptors and the scope name stamped on every payload. Schemas are
// constructed once at startup and never mutated.
type Schema struct {
	Scope        string
	UserProperty string
	Fields       []SchemaField
	Claims       []SchemaField
}

// EditableFields lists the names of fields tagged editable, in declared order.
func (s *Schema) EditableFields() []string {
	var names []string
	for _, field := range s.Fields {
		if field.Descriptor.Editable() {
			names = append(names, field.Name)
		}
	}

	return names
}

// NewUserSchema builds the payload schema for user-scope tokens. The role
// claim is resolved from the user row so role-restricted routes can match it.
func NewUserSchema(scope, userProperty string) *Schema {
	return &Schema{
		Scope:        scope,
		UserProperty: userProperty,
		Fields: []SchemaField{
			{Name: entity.FieldSessionID, Descriptor: SessionField{Attr: AttrSessionID}},
			{Name: entity.FieldUserID, Descriptor: SessionField{Attr: AttrUserID}},
			{Name: entity.FieldEmail, Descriptor: EditableRelatedField{RelatedField{Field: UserFieldEmail}}},
		},
		Claims: []SchemaField{
			{Name: entity.PayloadKeyRole, Descriptor: RelatedField{Field: UserFieldRole}},
		},
	}
}

// NewAdminSchema builds the payload schema for admin-scope tokens. It names
// the same fields as the user schema so downstream extraction stays
// scope-agnostic.
func NewAdminSchema(scope, userProperty string) *Schema {
	return &Schema{
		Scope:        scope,
		UserProperty: userProperty,
		Fields: []SchemaField{
			{Name: entity.FieldSessionID, Descriptor: SessionField{Attr: AttrSessionID}},
			{Name: entity.FieldUserID, Descriptor: SessionField{Attr: AttrUserID}},
			{Name: entity.FieldEmail, Descriptor: RelatedField{Field: UserFieldEmail}},
		},
		Claims: []SchemaField{
			{Name: entity.PayloadKeyRole, Descriptor: RelatedField{Field: UserFieldRole}},
		},
	}
}
