package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("password124", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestCheckPasswordHashRejectsGarbageHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("password123", "not-a-bcrypt-hash"))
}
