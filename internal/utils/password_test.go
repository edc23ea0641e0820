package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2", 10)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash, "hash must never equal the plaintext")

	assert.True(t, VerifyPassword(hash, "hunter2"))
	assert.True(t, VerifyPassword(hash, "hunter2"), "verification is stable for the same digest")
	assert.False(t, VerifyPassword(hash, "hunter3"))
}

func TestHashPasswordDefaultCost(t *testing.T) {
	hash, err := HashPassword("pw", 0)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "pw"))
}
