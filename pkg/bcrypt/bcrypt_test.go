package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("sup3r-secret")
	require.NoError(t, err)
	require.NotEqual(t, "sup3r-secret", hash)

	assert.NoError(t, ComparePassword(hash, "sup3r-secret"))
	assert.Error(t, ComparePassword(hash, "wrong-password"))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("same-input")
	require.NoError(t, err)
	second, err := HashPassword("same-input")
	require.NoError(t, err)

	// Salts differ per call.
	assert.NotEqual(t, first, second)
}
