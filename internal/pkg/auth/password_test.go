package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, CheckPassword("correct horse battery staple", hashed))
	assert.False(t, CheckPassword("wrong password", hashed))
}

func TestHashPasswordFormat(t *testing.T) {
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)

	digest, salt, found := strings.Cut(hashed, ".")
	require.True(t, found, "expected digest.salt format")
	assert.Len(t, digest, 128, "64-byte digest hex encoded")
	assert.Len(t, salt, 32, "16-byte salt hex encoded")
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same password must hash differently")
	assert.True(t, CheckPassword("secret123", first))
	assert.True(t, CheckPassword("secret123", second))
}

func TestCheckPasswordMalformedStored(t *testing.T) {
	cases := []struct {
		name   string
		stored string
	}{
		{"empty", ""},
		{"no separator", "deadbeef"},
		{"non-hex digest", "zzzz.00112233445566778899aabbccddeeff"},
		{"non-hex salt", "00ff.zz"},
		{"wrong digest length", "00ff.00112233445566778899aabbccddeeff"},
		{"trailing separator", "00ff."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, CheckPassword("anything", tc.stored))
		})
	}
}
