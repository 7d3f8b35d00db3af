package crypto

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Password123!")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.True(t, CheckPassword("Password123!", hash))
	assert.False(t, CheckPassword("WrongPass", hash))
}

func TestGenerateRandomToken(t *testing.T) {
	token, err := GenerateRandomToken(16)
	assert.NoError(t, err)
	assert.Len(t, token, 32) // hex encoded

	sessionID, err := GenerateSessionID()
	assert.NoError(t, err)
	assert.Len(t, sessionID, 32)
}

func TestGenerateTemporaryPassword_Policy(t *testing.T) {
	const samples = 10000

	for i := 0; i < samples; i++ {
		pw, err := GenerateTemporaryPassword()
		require.NoError(t, err)
		require.Len(t, pw, TemporaryPasswordLength)

		require.True(t, strings.ContainsAny(pw, upperChars), "missing uppercase: %s", pw)
		require.True(t, strings.ContainsAny(pw, lowerChars), "missing lowercase: %s", pw)
		require.True(t, strings.ContainsAny(pw, digitChars), "missing digit: %s", pw)
		require.True(t, strings.ContainsAny(pw, symbolChars), "missing symbol: %s", pw)

		require.False(t, strings.ContainsAny(pw, "0O1lI"), "ambiguous character in %s", pw)
	}
}

func TestGenerateTemporaryPassword_NotConstant(t *testing.T) {
	a, err := GenerateTemporaryPassword()
	require.NoError(t, err)
	b, err := GenerateTemporaryPassword()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashPasswordAndGenerateRandomToken_ErrorBranches(t *testing.T) {
	origBcrypt := bcryptGenerateFromPassword
	origRandRead := randomRead
	t.Cleanup(func() {
		bcryptGenerateFromPassword = origBcrypt
		randomRead = origRandRead
	})

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("bcrypt failed")
	}
	_, err := HashPassword("Password123!")
	assert.Error(t, err)

	bcryptGenerateFromPassword = origBcrypt
	randomRead = func([]byte) (int, error) {
		return 0, errors.New("rand failed")
	}
	_, err = GenerateRandomToken(16)
	assert.Error(t, err)
}
