package auth

import (
	"testing"
	"time"

	"linkvault/config"
	"linkvault/internal/domain/entity"
	"linkvault/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T, secret string, accessTTL, refreshTTL time.Duration) service.TokenCodec {
	t.Helper()

	cfg := &config.Config{
		JWT: &config.JWTConfig{
			SecretKey:  secret,
			AccessTTL:  accessTTL,
			RefreshTTL: refreshTTL,
		},
	}
	codec, err := NewJWTCodec(cfg)
	require.NoError(t, err)

	return codec
}

func testPayload() entity.TokenPayload {
	return entity.TokenPayload{
		"user_info": map[string]any{
			entity.FieldSessionID: "3d2f0a46-1111-4a2b-9c3d-0b5e6f7a8b9c",
			entity.FieldUserID:    "7c1e2d3b-2222-4f5a-8b9c-0d1e2f3a4b5c",
			entity.FieldEmail:     "reader@example.com",
		},
		entity.PayloadKeyScope: "user",
	}
}

func TestJWTCodec_AccessRoundTrip(t *testing.T) {
	codec := newTestCodec(t, "test-secret", time.Hour, 7*24*time.Hour)
	payload := testPayload()

	token, enriched, err := codec.EncodeAccess(payload)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The enriched payload carries a correlation id absent from the input.
	assert.Empty(t, payload.CorrelationID(entity.PayloadKeyAccessUUID))
	assert.NotEmpty(t, enriched.CorrelationID(entity.PayloadKeyAccessUUID))

	decoded, err := codec.DecodeAndVerify(token)
	require.NoError(t, err)
	assert.Equal(t, map[string]any(enriched), map[string]any(decoded))
}

func TestJWTCodec_EncodeDoesNotMutateInput(t *testing.T) {
	codec := newTestCodec(t, "test-secret", time.Hour, 7*24*time.Hour)
	payload := testPayload()

	_, _, err := codec.EncodeAccess(payload)
	require.NoError(t, err)

	_, hasUUID := payload[entity.PayloadKeyAccessUUID]
	assert.False(t, hasUUID)
}

func TestJWTCodec_FreshCorrelationIDPerMint(t *testing.T) {
	codec := newTestCodec(t, "test-secret", time.Hour, 7*24*time.Hour)

	_, first, err := codec.EncodeAccess(testPayload())
	require.NoError(t, err)
	_, second, err := codec.EncodeAccess(testPayload())
	require.NoError(t, err)

	assert.NotEqual(t,
		first.CorrelationID(entity.PayloadKeyAccessUUID),
		second.CorrelationID(entity.PayloadKeyAccessUUID))
}

func TestJWTCodec_RefreshStampsRefreshUUID(t *testing.T) {
	codec := newTestCodec(t, "test-secret", time.Hour, 7*24*time.Hour)

	_, enriched, err := codec.EncodeRefresh(testPayload())
	require.NoError(t, err)

	assert.NotEmpty(t, enriched.CorrelationID(entity.PayloadKeyRefreshUUID))
	assert.Empty(t, enriched.CorrelationID(entity.PayloadKeyAccessUUID))
}

func TestJWTCodec_DecodeAndVerify_WrongSecret(t *testing.T) {
	codec := newTestCodec(t, "test-secret", time.Hour, 7*24*time.Hour)
	other := newTestCodec(t, "other-secret", time.Hour, 7*24*time.Hour)

	token, _, err := codec.EncodeAccess(testPayload())
	require.NoError(t, err)

	_, err = other.DecodeAndVerify(token)
	assert.ErrorIs(t, err, service.ErrBadSignature)
}

func TestJWTCodec_DecodeAndVerify_Expired(t *testing.T) {
	codec := newTestCodec(t, "test-secret", -time.Minute, 7*24*time.Hour)

	token, _, err := codec.EncodeAccess(testPayload())
	require.NoError(t, err)

	_, err = codec.DecodeAndVerify(token)
	assert.ErrorIs(t, err, service.ErrBadSignature)
}

func TestJWTCodec_DecodeAndVerify_Malformed(t *testing.T) {
	codec := newTestCodec(t, "test-secret", time.Hour, 7*24*time.Hour)

	_, err := codec.DecodeAndVerify("not-a-token")
	assert.ErrorIs(t, err, service.ErrMalformedToken)
}

func TestJWTCodec_DecodeUnverified_SkipsSignatureCheck(t *testing.T) {
	codec := newTestCodec(t, "test-secret", time.Hour, 7*24*time.Hour)
	other := newTestCodec(t, "other-secret", time.Hour, 7*24*time.Hour)

	token, _, err := codec.EncodeAccess(testPayload())
	require.NoError(t, err)

	payload, err := other.DecodeUnverified(token)
	require.NoError(t, err)
	assert.Equal(t, "user", payload.Scope())
}
