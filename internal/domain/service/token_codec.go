// Package service defines domain service interfaces implemented by the
// infrastructure layer.
package service

import (
	"context"

	"linkvault/internal/domain/entity"

	"github.com/pkg/errors"
)

// Decode failure modes. BadSignature covers signature and algorithm
// mismatches; Malformed covers tokens whose structure cannot be parsed.
var (
	ErrBadSignature   = errors.New("token signature verification failed")
	ErrMalformedToken = errors.New("token is malformed")
)

// TokenCodec turns a payload into a signed compact credential string and
// back. Every encode stamps a fresh random correlation id; the enriched
// payload it returns is what gets persisted as the session snapshot.
type TokenCodec interface {
	// EncodeAccess clones the payload, stamps a fresh token_uuid, signs it
	// with the access TTL and returns the wire string plus the enriched payload.
	EncodeAccess(payload entity.TokenPayload) (string, entity.TokenPayload, error)

	// EncodeRefresh is EncodeAccess with refresh_uuid and the refresh TTL.
	EncodeRefresh(payload entity.TokenPayload) (string, entity.TokenPayload, error)

	// DecodeAndVerify parses a token and checks signature and algorithm.
	// Fails with ErrBadSignature or ErrMalformedToken.
	DecodeAndVerify(token string) (entity.TokenPayload, error)

	// DecodeUnverified parses structure without checking the signature. It
	// only ever feeds a later authoritative verification step, never an
	// access decision on its own.
	DecodeUnverified(token string) (entity.TokenPayload, error)
}

// PayloadBuilder produces one finished token payload for a session within a
// fixed scope. Supplying the previously issued payload reuses it verbatim
// instead of re-resolving descriptors (rotation does not re-derive user
// attributes). Building always revives the referenced session; a failed
// revive aborts the build.
type PayloadBuilder interface {
	Build(ctx context.Context, session *entity.Session, previous entity.TokenPayload) (entity.TokenPayload, error)
}

// PayloadBuilders holds one builder per token scope, constructed once at
// startup and never mutated after.
type PayloadBuilders map[string]PayloadBuilder

// ForScope returns the builder bound to the given scope.
func (b PayloadBuilders) ForScope(scope string) (PayloadBuilder, bool) {
	builder, ok := b[scope]

	return builder, ok
}
