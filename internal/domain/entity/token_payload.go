package entity

// Reserved top-level token payload keys. The nested user-info object lives
// under the configurable user-property key next to these.
const (
	PayloadKeyScope       = "scope"
	PayloadKeyRole        = "role"
	PayloadKeyAccessUUID  = "token_uuid"
	PayloadKeyRefreshUUID = "refresh_uuid"
)

// User-info field names shared by every scope's payload schema.
const (
	FieldSessionID = "session_id"
	FieldUserID    = "user_id"
	FieldEmail     = "email"
)

// TokenPayload is the claim set carried by an issued token. It is transient:
// it is never persisted as its own entity, only embedded in a Session row as
// the JSON snapshot of the last-issued pair.
//
// Shape: a nested user-info object under the configured user-property key
// (session_id, user_id, email as strings), top-level scope and role strings
// and, once enriched by the codec, a top-level correlation id (token_uuid
// for access tokens, refresh_uuid for refresh tokens).
type TokenPayload map[string]any

// Clone returns a shallow copy with the nested user-info objects copied one
// level deep, so enriching a clone never mutates the original.
func (p TokenPayload) Clone() TokenPayload {
	if p == nil {
		return nil
	}
	out := make(TokenPayload, len(p))
	for k, v := range p {
		if nested, ok := v.(map[string]any); ok {
			inner := make(map[string]any, len(nested))
			for nk, nv := range nested {
				inner[nk] = nv
			}
			out[k] = inner

			continue
		}
		out[k] = v
	}

	return out
}

// Scope returns the top-level scope claim, empty when absent.
func (p TokenPayload) Scope() string {
	s, _ := p[PayloadKeyScope].(string)

	return s
}

// CorrelationID returns the named correlation id claim, empty when absent.
func (p TokenPayload) CorrelationID(key string) string {
	id, _ := p[key].(string)

	return id
}

// UserInfo returns the nested user-info object stored under the given
// user-property key, nil when absent or of the wrong shape.
func (p TokenPayload) UserInfo(userProperty string) map[string]any {
	nested, _ := p[userProperty].(map[string]any)

	return nested
}

// UserInfoField returns one string field from the nested user-info object,
// empty when absent.
func (p TokenPayload) UserInfoField(userProperty, field string) string {
	nested := p.UserInfo(userProperty)
	if nested == nil {
		return ""
	}
	v, _ := nested[field].(string)

	return v
}
