package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_VerifyMatches(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("Password123!")
	require.NoError(t, err)
	require.NotEqual(t, "Password123!", hash)

	assert.True(t, h.Verify("Password123!", hash))
	assert.False(t, h.Verify("password123!", hash))
	assert.False(t, h.Verify("", hash))
}

func TestPasswordHasher_UniqueSalts(t *testing.T) {
	h := NewPasswordHasher()

	first, err := h.Hash("Password123!")
	require.NoError(t, err)
	second, err := h.Hash("Password123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
