package auth

import (
	"testing"

	"linkvault/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4, Pepper: "pepper"},
	})

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, hasher.Check("s3cret", hash))
	assert.False(t, hasher.Check("wrong", hash))
}

func TestBcryptHasher_PepperBindsHashToProcessSecret(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4, Pepper: "pepper-a"},
	})
	other := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4, Pepper: "pepper-b"},
	})

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	assert.True(t, hasher.Check("s3cret", hash))
	assert.False(t, other.Check("s3cret", hash))
}
