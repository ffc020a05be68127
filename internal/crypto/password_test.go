package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Format(t *testing.T) {
	encoded, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))
	assert.Len(t, strings.Split(encoded, "$"), 6)
}

func TestHashPassword_EmptyRejected(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	encoded, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword("correct horse battery staple", encoded))
	assert.Error(t, VerifyPassword("wrong password", encoded))
	assert.Error(t, VerifyPassword("", encoded))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []string{
		"",
		"not a hash",
		"$bcrypt$whatever",
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5",
	}

	for _, encoded := range tests {
		assert.Error(t, VerifyPassword("password", encoded), "hash=%q", encoded)
	}
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	first, err := HashPassword("same password")
	require.NoError(t, err)
	second, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
