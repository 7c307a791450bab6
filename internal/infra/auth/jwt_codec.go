package auth

import (
	"time"

	"linkvault/config"
	"linkvault/internal/domain/entity"
	"linkvault/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Registered claims carried on the wire but stripped from decoded payloads so
// snapshot comparison sees only the payload fields that were minted.
const (
	claimIssuedAt = "iat"
	claimExpires  = "exp"
)

// jwtCodec is a concrete implementation of the TokenCodec interface using the JWT standard.
type jwtCodec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTCodec is the constructor for jwtCodec.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.JWT == nil || cfg.JWT.SecretKey == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtCodec{
		secret:     []byte(cfg.JWT.SecretKey),
		accessTTL:  cfg.JWT.AccessTTL,
		refreshTTL: cfg.JWT.RefreshTTL,
	}, nil
}

// EncodeAccess stamps a fresh token_uuid and signs the payload with the
// access TTL. The enriched payload it returns is what the caller persists as
// the session's access snapshot.
func (c *jwtCodec) EncodeAccess(payload entity.TokenPayload) (string, entity.TokenPayload, error) {
	return c.encode(payload, entity.PayloadKeyAccessUUID, c.accessTTL)
}

// EncodeRefresh stamps a fresh refresh_uuid and signs the payload with the
// refresh TTL.
func (c *jwtCodec) EncodeRefresh(payload entity.TokenPayload) (string, entity.TokenPayload, error) {
	return c.encode(payload, entity.PayloadKeyRefreshUUID, c.refreshTTL)
}

func (c *jwtCodec) encode(payload entity.TokenPayload, correlationKey string, ttl time.Duration) (string, entity.TokenPayload, error) {
	enriched := payload.Clone()
	enriched[correlationKey] = uuid.NewString()

	now := time.Now()
	claims := make(jwt.MapClaims, len(enriched)+2)
	for key, value := range enriched {
		claims[key] = value
	}
	claims[claimIssuedAt] = now.Unix()
	claims[claimExpires] = now.Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "sign token")
	}

	return signed, enriched, nil
}

// DecodeAndVerify parses a token, pinning the signing algorithm and checking
// the signature and expiry.
func (c *jwtCodec) DecodeAndVerify(tokenString string) (entity.TokenPayload, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}

		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, errors.Wrap(service.ErrMalformedToken, err.Error())
		}

		return nil, errors.Wrap(service.ErrBadSignature, err.Error())
	}

	return payloadFromClaims(claims), nil
}

// DecodeUnverified parses structure without checking the signature. Callers
// use it only to read the embedded scope before an authoritative verify.
func (c *jwtCodec) DecodeUnverified(tokenString string) (entity.TokenPayload, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Wrap(service.ErrMalformedToken, err.Error())
	}

	return payloadFromClaims(claims), nil
}

func payloadFromClaims(claims jwt.MapClaims) entity.TokenPayload {
	payload := make(entity.TokenPayload, len(claims))
	for key, value := range claims {
		if key == claimIssuedAt || key == claimExpires {
			continue
		}
		payload[key] = value
	}

	return payload
}
