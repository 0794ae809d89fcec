package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Str0ng!pwd")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, VerifyPassword("Str0ng!pwd", hash))
	assert.False(t, VerifyPassword("wrong-password", hash))
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("Str0ng!pwd")
	require.NoError(t, err)
	second, err := HashPassword("Str0ng!pwd")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("Str0ng!pwd", first))
	assert.True(t, VerifyPassword("Str0ng!pwd", second))
}

func TestVerifyMalformedHash(t *testing.T) {
	t.Parallel()

	assert.False(t, VerifyPassword("Str0ng!pwd", "not-a-bcrypt-hash"))
	assert.False(t, VerifyPassword("Str0ng!pwd", ""))
}
